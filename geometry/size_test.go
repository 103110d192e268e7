package geometry

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestSize_IntoAbsolute(t *testing.T) {
	if got := Pixels(400).IntoAbsolute(1000); got != 400 {
		t.Fatalf("expected 400, got %d", got)
	}
	if got := Ratio(0.6).IntoAbsolute(400); got != 240 {
		t.Fatalf("expected 240, got %d", got)
	}
	// ratios are floored
	if got := Ratio(0.5).IntoAbsolute(401); got != 200 {
		t.Fatalf("expected 200, got %d", got)
	}
}

func TestSize_AddPixelsClampsToBounds(t *testing.T) {
	// 60px + 50px against an upper bound of 80px saturates at the bound
	if got := Pixels(60).Add(50, 80); got != Pixels(80) {
		t.Fatalf("expected 80px, got %s", got)
	}
	if got := Pixels(60).Add(-100, 80); got != Pixels(0) {
		t.Fatalf("expected 0px, got %s", got)
	}
	if got := Pixels(60).Add(10, 80); got != Pixels(70) {
		t.Fatalf("expected 70px, got %s", got)
	}
}

func TestSize_AddRatioTreatsDeltaAsPercentagePoints(t *testing.T) {
	if got := Ratio(0.5).Add(10, 0); got != Ratio(0.6) {
		t.Fatalf("expected 60%%, got %s", got)
	}
	if got := Ratio(0.9).Add(20, 0); got != Ratio(1) {
		t.Fatalf("expected 100%%, got %s", got)
	}
	if got := Ratio(0.1).Add(-20, 0); got != Ratio(0) {
		t.Fatalf("expected 0%%, got %s", got)
	}
}

func TestSize_String(t *testing.T) {
	if got := Ratio(0.6).String(); got != "60%" {
		t.Fatalf("expected 60%%, got %s", got)
	}
	if got := Pixels(400).String(); got != "400px" {
		t.Fatalf("expected 400px, got %s", got)
	}
}

func TestSize_UnmarshalYAML(t *testing.T) {
	cases := []struct {
		in   string
		want Size
	}{
		{"400", Pixels(400)},
		{"400px", Pixels(400)},
		{"0.6", Ratio(0.6)},
		{"60%", Ratio(0.6)},
		{`"35%"`, Ratio(0.35)},
	}
	for _, tc := range cases {
		var got Size
		if err := yaml.Unmarshal([]byte(tc.in), &got); err != nil {
			t.Fatalf("unmarshal %q: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("unmarshal %q: expected %s, got %s", tc.in, tc.want, got)
		}
	}
}

func TestSize_UnmarshalYAMLRejectsGarbage(t *testing.T) {
	var got Size
	if err := yaml.Unmarshal([]byte(`"wide"`), &got); err == nil {
		t.Fatalf("expected error for invalid size")
	}
}

func TestSize_MarshalRoundTrip(t *testing.T) {
	for _, size := range []Size{Pixels(400), Ratio(0.6)} {
		data, err := yaml.Marshal(size)
		if err != nil {
			t.Fatalf("marshal %s: %v", size, err)
		}
		var got Size
		if err := yaml.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal %q: %v", data, err)
		}
		if got != size {
			t.Fatalf("round trip %s: got %s", size, got)
		}
	}
}
