package layouts

import (
	"github.com/1broseidon/stacktile/geometry"
)

// twoColumn partitions the container into a main and a stack column for
// the given window distribution. Either return value may be nil when the
// corresponding column holds no windows; its space is then reclaimed or
// kept blank according to the reserve policy.
func twoColumn(
	windowCount int,
	container geometry.Rect,
	mainWindowCount int,
	mainSize geometry.Size,
	reserve geometry.ReserveColumnSpace,
) (main, stack *geometry.Rect) {
	if mainWindowCount > windowCount {
		mainWindowCount = windowCount
	}
	stackWindowCount := windowCount - mainWindowCount

	mainHasWindows := mainWindowCount > 0
	stackHasWindows := stackWindowCount > 0

	mainReserve := mainHasWindows || reserve.IsReserved()
	stackReserve := stackHasWindows || reserve.IsReserved()

	mainEmpty := !mainHasWindows && reserve.IsReserved()
	stackEmpty := !stackHasWindows && reserve.IsReserved()

	var mainWidth int
	switch {
	case mainReserve && stackReserve:
		mainWidth = mainSize.IntoAbsolute(container.Width)
	case mainReserve:
		mainWidth = container.Width
	}
	stackWidth := container.Width - mainWidth

	mainOffset := 0
	if reserve == geometry.ReserveAndCenter && stackEmpty {
		mainOffset = stackWidth / 2
	}
	stackOffset := mainWidth
	if reserve == geometry.ReserveAndCenter && mainEmpty {
		stackOffset = mainWidth / 2
	}

	if mainHasWindows {
		main = &geometry.Rect{
			X:      container.X + mainOffset,
			Y:      container.Y,
			Width:  mainWidth,
			Height: container.Height,
		}
	}
	if stackHasWindows {
		stack = &geometry.Rect{
			X:      container.X + stackOffset,
			Y:      container.Y,
			Width:  stackWidth,
			Height: container.Height,
		}
	}
	return main, stack
}

// threeColumn partitions the container into a first stack, a centered
// main, and a second stack column. Any return value may be nil when the
// corresponding column holds no windows.
//
// The second stack can only be reserved if the first one is too, and is
// considered empty whenever the first one is: windows are assigned in
// main -> first stack -> second stack order, so the second stack never
// holds windows while the first is empty.
func threeColumn(
	windowCount int,
	container geometry.Rect,
	mainWindowCount int,
	mainSize geometry.Size,
	reserve geometry.ReserveColumnSpace,
	balanceStacks bool,
) (left, main, right *geometry.Rect) {
	if mainWindowCount > windowCount {
		mainWindowCount = windowCount
	}
	stackWindowCount := windowCount - mainWindowCount
	leftWindowCount, rightWindowCount := splitStackCounts(stackWindowCount, balanceStacks)

	mainHasWindows := mainWindowCount > 0
	leftHasWindows := leftWindowCount > 0
	rightHasWindows := rightWindowCount > 0

	mainReserve := mainHasWindows || reserve.IsReserved()
	leftReserve := leftHasWindows || reserve.IsReserved()
	rightReserve := (leftReserve && rightHasWindows) || reserve.IsReserved()

	mainEmpty := !mainHasWindows && reserve.IsReserved()
	leftEmpty := !leftHasWindows && reserve.IsReserved()
	rightEmpty := leftEmpty || (!rightHasWindows && reserve.IsReserved())

	var mainWidth int
	switch {
	case mainReserve && leftReserve:
		mainWidth = mainSize.IntoAbsolute(container.Width)
	case mainReserve:
		mainWidth = container.Width
	}
	stackWidth := container.Width - mainWidth

	var leftWidth int
	switch {
	case leftReserve && !rightReserve:
		leftWidth = stackWidth
	case leftReserve && rightReserve:
		leftWidth = stackWidth / 2
	}
	rightWidth := 0
	if rightReserve {
		rightWidth = stackWidth - leftWidth
	}

	mainOffset := leftWidth
	if reserve == geometry.ReserveAndCenter {
		switch {
		case !leftEmpty && rightEmpty:
			mainOffset = leftWidth + rightWidth/2
		case leftEmpty:
			mainOffset = stackWidth / 2
		}
	}
	leftOffset := 0
	if reserve == geometry.ReserveAndCenter {
		switch {
		case !mainEmpty && rightEmpty:
			leftOffset = rightWidth / 2
		case mainEmpty && !rightEmpty:
			leftOffset = mainWidth / 2
		case mainEmpty && rightEmpty:
			leftOffset = (mainWidth + rightWidth) / 2
		}
	}
	rightOffset := leftWidth + mainWidth
	if reserve == geometry.ReserveAndCenter && mainEmpty {
		rightOffset = mainWidth/2 + leftWidth
	}

	if mainHasWindows {
		main = &geometry.Rect{
			X:      container.X + mainOffset,
			Y:      container.Y,
			Width:  mainWidth,
			Height: container.Height,
		}
	}
	if leftHasWindows {
		left = &geometry.Rect{
			X:      container.X + leftOffset,
			Y:      container.Y,
			Width:  leftWidth,
			Height: container.Height,
		}
	}
	if rightHasWindows {
		right = &geometry.Rect{
			X:      container.X + rightOffset,
			Y:      container.Y,
			Width:  rightWidth,
			Height: container.Height,
		}
	}
	return left, main, right
}

// splitStackCounts distributes the stack windows of a center-main layout
// between the first and second stack. Balanced stacks split as evenly as
// possible with the first stack taking the extra window on odd counts;
// unbalanced stacks put every window on the first stack and leave the
// second empty.
func splitStackCounts(stackWindowCount int, balanceStacks bool) (first, second int) {
	if stackWindowCount <= 0 {
		return 0, 0
	}
	if !balanceStacks {
		return stackWindowCount, 0
	}
	counts := geometry.EvenDivision(stackWindowCount, 2)
	return counts[0], counts[1]
}
