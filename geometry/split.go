package geometry

import "math"

// SplitAxis describes how a Rect is subdivided among the windows of a
// column.
//
// The terms horizontal/vertical refer to the cuts, not the orientation of
// the resulting stack: SplitHorizontal cuts horizontally and therefore
// produces a vertical stack of rows, SplitVertical produces side-by-side
// columns.
type SplitAxis string

const (
	// SplitNone performs no subdivision; every window is given the full
	// rectangle. Used by monocle and deck style columns.
	SplitNone SplitAxis = "none"

	// SplitHorizontal splits by horizontal cuts into even-height rows.
	SplitHorizontal SplitAxis = "horizontal"

	// SplitVertical splits by vertical cuts into even-width columns.
	SplitVertical SplitAxis = "vertical"

	// SplitGrid splits into a near-square grid that still accounts for
	// all of the available space, so some cells may be larger.
	SplitGrid SplitAxis = "grid"

	// SplitFibonacci halves the remaining space for each window in turn,
	// spiraling towards the center.
	SplitFibonacci SplitAxis = "fibonacci"

	// SplitDwindle halves the remaining space like SplitFibonacci, but
	// cascades into the bottom-right corner instead of spiraling.
	SplitDwindle SplitAxis = "dwindle"
)

// Valid reports whether the axis is one of the known variants.
func (s SplitAxis) Valid() bool {
	switch s {
	case SplitNone, SplitHorizontal, SplitVertical, SplitGrid, SplitFibonacci, SplitDwindle:
		return true
	}
	return false
}

// vertical splits the rect into count even-width columns spanning the
// full height. Remainder pixels go to the earliest columns.
func vertical(rect Rect, count int) []Rect {
	rects := make([]Rect, 0, count)
	fromLeft := rect.X
	for _, width := range EvenDivision(rect.Width, count) {
		rects = append(rects, Rect{X: fromLeft, Y: rect.Y, Width: width, Height: rect.Height})
		fromLeft += width
	}
	return rects
}

// horizontal splits the rect into count even-height rows spanning the
// full width. Remainder pixels go to the earliest rows.
func horizontal(rect Rect, count int) []Rect {
	rects := make([]Rect, 0, count)
	fromTop := rect.Y
	for _, height := range EvenDivision(rect.Height, count) {
		rects = append(rects, Rect{X: rect.X, Y: fromTop, Width: rect.Width, Height: height})
		fromTop += height
	}
	return rects
}

// grid splits the rect into a near-square tiling. It prioritizes creating
// a new column over a new row: the number of columns is the ceiling of the
// square root of count, and the trailing columns carry the extra row when
// the division is uneven.
func grid(rect Rect, count int) []Rect {
	cols := int(math.Ceil(math.Sqrt(float64(count))))
	colRects := vertical(rect, cols)

	minRows := count / cols
	_, rem := DivRem(count, cols)
	// number of leading columns that hold only minRows windows
	minRowCols := len(colRects) - rem

	rects := make([]Rect, 0, count)
	for i, colRect := range colRects {
		rows := minRows
		if i >= minRowCols {
			rows++
		}
		rects = append(rects, horizontal(colRect, rows)...)
	}
	return rects
}

// fibonacci splits the rect by halving the remaining space once per
// window, walking the cut direction clockwise so the windows spiral
// inward. The last window takes whatever space remains.
func fibonacci(rect Rect, count int) []Rect {
	rects := make([]Rect, 0, count)
	remaining := rect
	direction := RotationEast
	for i := 0; i < count; i++ {
		direction = direction.Clockwise()
		if i == count-1 {
			rects = append(rects, remaining)
			break
		}
		axis := SplitVertical
		if direction == RotationNorth || direction == RotationSouth {
			axis = SplitHorizontal
		}
		halves := Split(remaining, 2, axis)
		if direction == RotationWest || direction == RotationNorth {
			rects = append(rects, halves[1])
			remaining = halves[0]
		} else {
			rects = append(rects, halves[0])
			remaining = halves[1]
		}
	}
	return rects
}

// dwindle splits the rect by halving the remaining space once per window
// on a strictly alternating axis, always keeping the second half for the
// windows still to come, so the layout cascades into the bottom-right.
func dwindle(rect Rect, count int) []Rect {
	rects := make([]Rect, 0, count)
	remaining := rect
	axis := SplitVertical
	for i := 0; i < count; i++ {
		if axis == SplitVertical {
			axis = SplitHorizontal
		} else {
			axis = SplitVertical
		}
		if i == count-1 {
			rects = append(rects, remaining)
			break
		}
		halves := Split(remaining, 2, axis)
		rects = append(rects, halves[0])
		remaining = halves[1]
	}
	return rects
}
