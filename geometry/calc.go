package geometry

// DivRem divides a by b and returns both the result of the integer
// division and the remainder.
func DivRem(a, b int) (div, rem int) {
	return a / b, a % b
}

// EvenDivision divides a into b parts that sum to a exactly, distributing
// the remainder across the earliest entries so no part differs from
// another by more than one. The result is deterministic for identical
// inputs.
//
//	EvenDivision(11, 3) // [4 4 3]
func EvenDivision(a, b int) []int {
	if b <= 0 {
		return nil
	}
	parts := make([]int, 0, b)
	div, rem := DivRem(a, b)
	for i := 0; i < b; i++ {
		if rem > 0 {
			rem--
			parts = append(parts, div+1)
		} else {
			parts = append(parts, div)
		}
	}
	return parts
}

// Split subdivides the rect into exactly count rectangles according to
// the given axis. A count of zero yields an empty result. SplitNone gives
// every window the full rect, which is how monocle and deck columns
// stack their windows on top of each other.
//
// When the rect cannot be divided evenly, the earlier rectangles are up
// to one pixel larger so the originals always tile the rect exactly.
func Split(rect Rect, count int, axis SplitAxis) []Rect {
	if count == 0 {
		return nil
	}
	switch axis {
	case SplitVertical:
		return vertical(rect, count)
	case SplitHorizontal:
		return horizontal(rect, count)
	case SplitGrid:
		return grid(rect, count)
	case SplitFibonacci:
		return fibonacci(rect, count)
	case SplitDwindle:
		return dwindle(rect, count)
	default:
		// SplitNone: every window occupies the whole rect.
		rects := make([]Rect, count)
		for i := range rects {
			rects[i] = rect
		}
		return rects
	}
}

// Flip mirrors the rects in place inside the container, according to the
// provided flip state. Window-count assignment is unaffected; only the
// geometry moves.
func Flip(rects []Rect, flipped Flipped, container Rect) {
	if flipped == FlipNone {
		return
	}
	for i := range rects {
		if flipped.IsFlippedHorizontal() {
			// new top edge sits as far from the container top as the old
			// bottom edge sat from the container bottom
			bottomWindowEdge := rects[i].Y + rects[i].Height
			bottomContainerEdge := container.Y + container.Height
			rects[i].Y = bottomContainerEdge - bottomWindowEdge
		}
		if flipped.IsFlippedVertical() {
			rightWindowEdge := rects[i].X + rects[i].Width
			rightContainerEdge := container.X + container.Width
			rects[i].X = rightContainerEdge - rightWindowEdge
		}
	}
}

// Rotate rotates the rects in place inside the container.
//
// Provided the input has no gaps or overlaps within the container, the
// result won't have any either: after the integer rescaling a repair pass
// widens rects that fall one pixel short of their neighbor or the
// container edge.
func Rotate(rects []Rect, rotation Rotation, container Rect) {
	if rotation == RotationNorth {
		return
	}
	for i := range rects {
		rotateSingle(&rects[i], rotation, container)
	}

	for i := range rects {
		wideEnough := true
		highEnough := true

		// check whether the rect "almost bounds" another rect
		for j := range rects {
			if i == j {
				continue
			}
			other := rects[j]
			rightEdge := rects[i].X + rects[i].Width
			bottomEdge := rects[i].Y + rects[i].Height
			if !other.ContainsPoint(rightEdge, rects[i].Y+1) &&
				other.ContainsPoint(rightEdge+1, rects[i].Y+1) {
				wideEnough = false
			}
			if !other.ContainsPoint(rects[i].X+1, bottomEdge) &&
				other.ContainsPoint(rects[i].X+1, bottomEdge+1) {
				highEnough = false
			}
		}

		// check whether the rect "almost bounds" the container
		if rects[i].X+rects[i].Width+1 == container.X+container.Width {
			wideEnough = false
		}
		if rects[i].Y+rects[i].Height+1 == container.Y+container.Height {
			highEnough = false
		}

		if !wideEnough && container.ContainsPoint(rects[i].X+rects[i].Width+1, rects[i].Y) {
			rects[i].Width++
		}
		if !highEnough && container.ContainsPoint(rects[i].X, rects[i].Y+rects[i].Height+1) {
			rects[i].Height++
		}
	}
}

func rotateSingle(rect *Rect, rotation Rotation, container Rect) {
	// normalize so the container is anchored at (0,0)
	rect.X -= container.X
	rect.Y -= container.Y

	anchorX, anchorY := rotation.NextAnchor(*rect)
	switch rotation {
	case RotationNorth:
	case RotationEast:
		rect.X = container.Height - anchorY
		rect.Y = anchorX
		rect.Width, rect.Height = rect.Height, rect.Width
	case RotationSouth:
		rect.X = container.Width - anchorX
		rect.Y = container.Height - anchorY
	case RotationWest:
		rect.X = anchorY
		rect.Y = container.Width - anchorX
		rect.Width, rect.Height = rect.Height, rect.Width
	}

	// rescale to the container's aspect ratio for quarter rotations
	if rotation == RotationEast || rotation == RotationWest {
		if container.Width == 0 || container.Height == 0 {
			// a zero-area container has no aspect to rescale into
			rect.X, rect.Y, rect.Width, rect.Height = 0, 0, 0, 0
		} else {
			rect.X = rect.X * container.Width / container.Height
			rect.Y = rect.Y * container.Height / container.Width
			rect.Width = rect.Width * container.Width / container.Height
			rect.Height = rect.Height * container.Height / container.Width
		}
	}

	rect.X += container.X
	rect.Y += container.Y
}
