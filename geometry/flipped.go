package geometry

// Flipped represents the four states an object can be in when it can be
// mirrored across the horizontal and vertical axis.
//
//	none           horizontal     vertical       both
//	+---------+    +---------+    +---------+    +---------+
//	|A       B|    |C       D|    |B       A|    |D       C|
//	|         |    |         |    |         |    |         |
//	|C       D|    |A       B|    |D       C|    |B       A|
//	+---------+    +---------+    +---------+    +---------+
type Flipped string

const (
	FlipNone       Flipped = "none"
	FlipHorizontal Flipped = "horizontal"
	FlipVertical   Flipped = "vertical"
	FlipBoth       Flipped = "both"
)

// Valid reports whether the flip state is one of the known variants.
func (f Flipped) Valid() bool {
	switch f {
	case FlipNone, FlipHorizontal, FlipVertical, FlipBoth:
		return true
	}
	return false
}

// IsFlippedHorizontal reports whether the state mirrors across the
// horizontal axis, independent of the vertical axis.
func (f Flipped) IsFlippedHorizontal() bool {
	return f == FlipHorizontal || f == FlipBoth
}

// IsFlippedVertical reports whether the state mirrors across the
// vertical axis, independent of the horizontal axis.
func (f Flipped) IsFlippedVertical() bool {
	return f == FlipVertical || f == FlipBoth
}

// ToggleHorizontal returns the state after an additional horizontal flip.
func (f Flipped) ToggleHorizontal() Flipped {
	switch f {
	case FlipNone:
		return FlipHorizontal
	case FlipHorizontal:
		return FlipNone
	case FlipVertical:
		return FlipBoth
	default:
		return FlipVertical
	}
}

// ToggleVertical returns the state after an additional vertical flip.
func (f Flipped) ToggleVertical() Flipped {
	switch f {
	case FlipNone:
		return FlipVertical
	case FlipVertical:
		return FlipNone
	case FlipHorizontal:
		return FlipBoth
	default:
		return FlipHorizontal
	}
}
