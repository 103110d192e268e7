// Package layouts computes screen-space rectangles for an ordered list
// of windows inside a workspace, given a layout definition. It is the
// tiling arithmetic of a dynamic tiling window manager with the window
// manager left out: no window identity, no display server, no input —
// pure geometry plus a set of composable splitting strategies.
package layouts

import (
	"fmt"

	"github.com/1broseidon/stacktile/geometry"
)

// Apply computes one rectangle per window for the given definition and
// workspace. The result always holds exactly windowCount rectangles, in
// canonical window order: main-column windows first, then the first
// stack's windows, then the second stack's, all before the flip and
// rotation transforms are applied. Callers must index their window list
// in the same order.
//
// Apply is a pure function: it never mutates the definition, performs no
// I/O, and returns identical output for identical input. It is safe to
// call concurrently, including with shared definitions, as long as no
// mutating accessor runs at the same time.
//
// A window count of zero yields an empty result and no error. A
// workspace with zero width or height degenerates all rectangles to
// zero size without error; negative dimensions are rejected.
func Apply(def *Definition, windowCount int, workspace geometry.Rect) ([]geometry.Rect, error) {
	if _, err := geometry.NewRect(workspace.X, workspace.Y, workspace.Width, workspace.Height); err != nil {
		return nil, fmt.Errorf("invalid workspace: %w", err)
	}
	if windowCount < 0 {
		return nil, fmt.Errorf("window count must be >= 0, got %d", windowCount)
	}

	var rects []geometry.Rect
	switch def.ColumnType {
	case ColumnTypeStack:
		rects = stackOnly(windowCount, workspace, def)
	case ColumnTypeMainAndStack:
		rects = mainAndStack(windowCount, workspace, def)
	case ColumnTypeCenterMain:
		rects = stackMainStack(windowCount, workspace, def)
	default:
		return nil, fmt.Errorf("unsupported column type %q", def.ColumnType)
	}

	geometry.Flip(rects, def.Flipped, workspace)
	geometry.Rotate(rects, def.Rotation, workspace)
	return rects, nil
}

// stackOnly lays out a single stack column covering the whole workspace.
// Main-column modifiers do not apply.
func stackOnly(windowCount int, container geometry.Rect, def *Definition) []geometry.Rect {
	return geometry.Split(container, windowCount, def.StackSplit)
}

// mainAndStack lays out a main column on the left and a stack column on
// the right. Main being left and stack being right is not configurable;
// a different arrangement is achieved through the Flipped and Rotation
// modifiers.
func mainAndStack(windowCount int, container geometry.Rect, def *Definition) []geometry.Rect {
	if windowCount == 0 {
		return nil
	}

	mainWindowCount := def.MainWindowCount
	if mainWindowCount > windowCount {
		mainWindowCount = windowCount
	}

	main, stack := twoColumn(windowCount, container, mainWindowCount, def.MainSize, def.ReserveColumnSpace)

	rects := make([]geometry.Rect, 0, windowCount)
	if main != nil {
		rects = append(rects, geometry.Split(*main, mainWindowCount, def.MainSplit)...)
	}
	if stack != nil {
		rects = append(rects, geometry.Split(*stack, windowCount-mainWindowCount, def.StackSplit)...)
	}
	return rects
}

// stackMainStack lays out three columns: a first stack on the left, the
// main column in the center, and a second stack on the right. Windows
// fill the main column first, then the first stack, then the second.
func stackMainStack(windowCount int, container geometry.Rect, def *Definition) []geometry.Rect {
	if windowCount == 0 {
		return nil
	}

	mainWindowCount := def.MainWindowCount
	if mainWindowCount > windowCount {
		mainWindowCount = windowCount
	}
	stackWindowCount := windowCount - mainWindowCount
	leftWindowCount, rightWindowCount := splitStackCounts(stackWindowCount, def.BalanceStacks)

	left, main, right := threeColumn(
		windowCount,
		container,
		mainWindowCount,
		def.MainSize,
		def.ReserveColumnSpace,
		def.BalanceStacks,
	)

	rects := make([]geometry.Rect, 0, windowCount)
	if main != nil {
		rects = append(rects, geometry.Split(*main, mainWindowCount, def.MainSplit)...)
	}
	if left != nil {
		rects = append(rects, geometry.Split(*left, leftWindowCount, def.StackSplit)...)
	}
	if right != nil {
		rects = append(rects, geometry.Split(*right, rightWindowCount, def.StackSplit)...)
	}
	return rects
}
