package geometry

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Size expresses the extent of a column either as an absolute amount of
// pixels or as a ratio of the whole available extent.
type Size struct {
	kind   sizeKind
	pixels int
	ratio  float64
}

type sizeKind int

const (
	sizePixel sizeKind = iota
	sizeRatio
)

// Pixels returns an absolute Size of px pixels.
func Pixels(px int) Size {
	return Size{kind: sizePixel, pixels: px}
}

// Ratio returns a relative Size, where 1.0 is the whole available extent.
func Ratio(ratio float64) Size {
	return Size{kind: sizeRatio, ratio: ratio}
}

// IsRatio reports whether the size is expressed as a ratio.
func (s Size) IsRatio() bool {
	return s.kind == sizeRatio
}

// IntoAbsolute resolves the size against the whole available extent and
// returns the resulting amount of pixels. Ratios are floored.
func (s Size) IntoAbsolute(whole int) int {
	if s.kind == sizeRatio {
		return int(float64(whole) * s.ratio)
	}
	return s.pixels
}

// Add returns the size moved by delta, clamped so it can neither vanish
// below zero nor consume more than the given upper bound. For pixel
// sizes delta is an amount of pixels and upperBound an amount of pixels;
// for ratio sizes delta is percentage points and the ratio is clamped to
// [0, 1] regardless of upperBound.
func (s Size) Add(delta, upperBound int) Size {
	if s.kind == sizeRatio {
		ratio := s.ratio + float64(delta)/100.0
		if ratio < 0 {
			ratio = 0
		}
		if ratio > 1 {
			ratio = 1
		}
		return Ratio(ratio)
	}
	px := s.pixels + delta
	if px < 0 {
		px = 0
	}
	if px > upperBound {
		px = upperBound
	}
	return Pixels(px)
}

// String renders the size the way it is written in configuration files:
// ratios as percentages ("60%"), pixel sizes with a px suffix ("400px").
func (s Size) String() string {
	if s.kind == sizeRatio {
		return strconv.FormatFloat(s.ratio*100, 'f', -1, 64) + "%"
	}
	return strconv.Itoa(s.pixels) + "px"
}

// UnmarshalYAML accepts an integer pixel count (`400`), a fractional
// ratio (`0.6`), a percentage string (`"60%"`), or a pixel string
// (`"400px"`).
func (s *Size) UnmarshalYAML(value *yaml.Node) error {
	raw := strings.TrimSpace(value.Value)
	switch {
	case strings.HasSuffix(raw, "%"):
		pct, err := strconv.ParseFloat(strings.TrimSuffix(raw, "%"), 64)
		if err != nil {
			return fmt.Errorf("invalid size %q: %w", raw, err)
		}
		*s = Ratio(pct / 100)
	case strings.HasSuffix(raw, "px"):
		px, err := strconv.Atoi(strings.TrimSuffix(raw, "px"))
		if err != nil {
			return fmt.Errorf("invalid size %q: %w", raw, err)
		}
		*s = Pixels(px)
	case strings.Contains(raw, "."):
		ratio, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("invalid size %q: %w", raw, err)
		}
		*s = Ratio(ratio)
	default:
		px, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid size %q: %w", raw, err)
		}
		*s = Pixels(px)
	}
	return nil
}

// MarshalYAML renders the size in the same notation UnmarshalYAML accepts.
func (s Size) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}
