// Package render draws computed layouts as ASCII art for the preview
// command and the interactive demo.
package render

import (
	"fmt"
	"strings"

	"github.com/1broseidon/stacktile/geometry"
	"github.com/1broseidon/stacktile/layouts"
)

// Preview renders the layout for the given window count onto a
// width x height character canvas. Each line of the result is exactly
// width characters wide. The outer frame represents the workspace;
// every window is drawn as a numbered box, in canonical window order.
func Preview(def *layouts.Definition, windowCount, width, height int) ([]string, error) {
	if width < 5 || height < 3 {
		return emptyCanvas(width, height), nil
	}

	// Simulate a workspace at double the canvas resolution so thin
	// columns survive the integer downscale.
	workspace := geometry.Rect{Width: width * 2, Height: height * 2}
	rects, err := layouts.Apply(def, windowCount, workspace)
	if err != nil {
		return nil, err
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	// Draw back to front so the first window ends up on top when boxes
	// overlap, as they do in monocle and deck layouts.
	for i := len(rects) - 1; i >= 0; i-- {
		drawWindow(canvas, rects[i], i+1, workspace, width, height)
	}
	drawFrame(canvas, width, height)

	lines := make([]string, height)
	for i, row := range canvas {
		lines[i] = string(row)
	}
	return lines, nil
}

func drawWindow(canvas [][]rune, rect geometry.Rect, num int, workspace geometry.Rect, canvasW, canvasH int) {
	x1 := rect.X * canvasW / workspace.Width
	y1 := rect.Y * canvasH / workspace.Height
	x2 := (rect.X + rect.Width) * canvasW / workspace.Width
	y2 := (rect.Y + rect.Height) * canvasH / workspace.Height

	if x1 < 1 {
		x1 = 1
	}
	if y1 < 1 {
		y1 = 1
	}
	if x2 >= canvasW-1 {
		x2 = canvasW - 2
	}
	if y2 >= canvasH-1 {
		y2 = canvasH - 2
	}
	if x2 <= x1 || y2 <= y1 {
		return
	}

	for x := x1; x <= x2; x++ {
		canvas[y1][x] = '─'
		canvas[y2][x] = '─'
	}
	for y := y1; y <= y2; y++ {
		canvas[y][x1] = '│'
		canvas[y][x2] = '│'
	}
	canvas[y1][x1] = '┌'
	canvas[y1][x2] = '┐'
	canvas[y2][x1] = '└'
	canvas[y2][x2] = '┘'

	// Clear the interior so windows underneath don't bleed through.
	for y := y1 + 1; y < y2; y++ {
		for x := x1 + 1; x < x2; x++ {
			canvas[y][x] = ' '
		}
	}

	centerY := (y1 + y2) / 2
	centerX := (x1 + x2) / 2
	if centerY > y1 && centerY < y2 && centerX > x1 && centerX < x2 {
		label := fmt.Sprintf("%d", num)
		startX := centerX - len(label)/2
		for i, r := range label {
			if startX+i > x1 && startX+i < x2 {
				canvas[centerY][startX+i] = r
			}
		}
	}
}

func drawFrame(canvas [][]rune, width, height int) {
	for x := 0; x < width; x++ {
		canvas[0][x] = '═'
		canvas[height-1][x] = '═'
	}
	for y := 0; y < height; y++ {
		canvas[y][0] = '║'
		canvas[y][width-1] = '║'
	}
	canvas[0][0] = '╔'
	canvas[0][width-1] = '╗'
	canvas[height-1][0] = '╚'
	canvas[height-1][width-1] = '╝'
}

func emptyCanvas(width, height int) []string {
	lines := make([]string, height)
	empty := strings.Repeat(" ", width)
	for i := range lines {
		lines[i] = empty
	}
	return lines
}
