package geometry

import "testing"

func TestRotation_ClockwiseCycle(t *testing.T) {
	order := []Rotation{RotationNorth, RotationEast, RotationSouth, RotationWest}
	for i, r := range order {
		next := order[(i+1)%len(order)]
		if got := r.Clockwise(); got != next {
			t.Fatalf("%q clockwise: expected %q, got %q", r, next, got)
		}
		if got := next.CounterClockwise(); got != r {
			t.Fatalf("%q counter-clockwise: expected %q, got %q", next, r, got)
		}
	}
}

func TestRotation_AspectRatioChanges(t *testing.T) {
	wide := Rect{Width: 400, Height: 200}
	square := Rect{Width: 200, Height: 200}
	if !RotationEast.AspectRatioChanges(wide) || !RotationWest.AspectRatioChanges(wide) {
		t.Fatalf("expected quarter rotations to change a non-square aspect")
	}
	if RotationNorth.AspectRatioChanges(wide) || RotationSouth.AspectRatioChanges(wide) {
		t.Fatalf("expected half rotations to keep the aspect")
	}
	if RotationEast.AspectRatioChanges(square) {
		t.Fatalf("expected square rects to keep their aspect")
	}
}

func TestRotation_NextAnchor(t *testing.T) {
	rect := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	cases := []struct {
		rotation Rotation
		x, y     int
	}{
		{RotationNorth, 10, 20},
		{RotationEast, 10, 70},
		{RotationSouth, 110, 70},
		{RotationWest, 110, 20},
	}
	for _, tc := range cases {
		x, y := tc.rotation.NextAnchor(rect)
		if x != tc.x || y != tc.y {
			t.Fatalf("%q: expected anchor (%d,%d), got (%d,%d)", tc.rotation, tc.x, tc.y, x, y)
		}
	}
}

func TestFlipped_Toggles(t *testing.T) {
	if got := FlipNone.ToggleHorizontal(); got != FlipHorizontal {
		t.Fatalf("expected horizontal, got %q", got)
	}
	if got := FlipHorizontal.ToggleVertical(); got != FlipBoth {
		t.Fatalf("expected both, got %q", got)
	}
	if got := FlipBoth.ToggleHorizontal(); got != FlipVertical {
		t.Fatalf("expected vertical, got %q", got)
	}
	if got := FlipVertical.ToggleVertical(); got != FlipNone {
		t.Fatalf("expected none, got %q", got)
	}
}

func TestFlipped_AxisPredicates(t *testing.T) {
	if !FlipBoth.IsFlippedHorizontal() || !FlipBoth.IsFlippedVertical() {
		t.Fatalf("expected both to flip across both axes")
	}
	if FlipVertical.IsFlippedHorizontal() || FlipHorizontal.IsFlippedVertical() {
		t.Fatalf("expected single-axis states to leave the other axis alone")
	}
}
