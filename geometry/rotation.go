package geometry

// Rotation represents the four quarter rotations a layout can be in.
// RotationNorth is the unrotated default.
type Rotation string

const (
	RotationNorth Rotation = "north" // 0°
	RotationEast  Rotation = "east"  // 90° clockwise
	RotationSouth Rotation = "south" // 180°
	RotationWest  Rotation = "west"  // 270° clockwise
)

// Valid reports whether the rotation is one of the known variants.
func (r Rotation) Valid() bool {
	switch r {
	case RotationNorth, RotationEast, RotationSouth, RotationWest:
		return true
	}
	return false
}

// AspectRatioChanges reports whether rotating the given rect by this
// rotation changes its aspect ratio. Only quarter rotations of
// non-square rects do.
func (r Rotation) AspectRatioChanges(rect Rect) bool {
	return rect.Width != rect.Height && (r == RotationEast || r == RotationWest)
}

// NextAnchor returns the coordinate of the corner which becomes the
// rect's top-left anchor after the rotation is applied. The anchor of an
// unrotated rect is its top-left corner; a quarter rotation moves a
// different corner into that position.
func (r Rotation) NextAnchor(rect Rect) (x, y int) {
	switch r {
	case RotationEast:
		return rect.X, rect.Y + rect.Height // bottom-left
	case RotationSouth:
		return rect.X + rect.Width, rect.Y + rect.Height // bottom-right
	case RotationWest:
		return rect.X + rect.Width, rect.Y // top-right
	default:
		return rect.X, rect.Y // top-left
	}
}

// Clockwise returns the next rotation when rotating clockwise.
func (r Rotation) Clockwise() Rotation {
	switch r {
	case RotationNorth:
		return RotationEast
	case RotationEast:
		return RotationSouth
	case RotationSouth:
		return RotationWest
	default:
		return RotationNorth
	}
}

// CounterClockwise returns the next rotation when rotating
// counter-clockwise.
func (r Rotation) CounterClockwise() Rotation {
	switch r {
	case RotationNorth:
		return RotationWest
	case RotationWest:
		return RotationSouth
	case RotationSouth:
		return RotationEast
	default:
		return RotationNorth
	}
}
