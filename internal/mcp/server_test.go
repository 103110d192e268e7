package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/1broseidon/stacktile/layouts"
)

func testServer() *Server {
	return NewServer(layouts.DefaultRegistry())
}

func TestHandleListLayouts(t *testing.T) {
	s := testServer()
	_, out, err := s.handleListLayouts(context.Background(), nil, ListLayoutsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Layouts) != s.registry.Len() {
		t.Fatalf("expected %d layouts, got %d", s.registry.Len(), len(out.Layouts))
	}
	first := out.Layouts[0]
	if first.Name != layouts.EvenHorizontal || first.StackSplit != "vertical" {
		t.Fatalf("unexpected first layout %+v", first)
	}
}

func TestHandleListLayouts_QueryFilters(t *testing.T) {
	s := testServer()
	_, out, err := s.handleListLayouts(context.Background(), nil, ListLayoutsInput{Query: "fib"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Layouts) != 1 || out.Layouts[0].Name != layouts.Fibonacci {
		t.Fatalf("expected only %s, got %+v", layouts.Fibonacci, out.Layouts)
	}
}

func TestHandleApplyLayout(t *testing.T) {
	s := testServer()
	_, out, err := s.handleApplyLayout(context.Background(), nil, ApplyLayoutInput{
		Layout:      layouts.MainAndVertStack,
		WindowCount: 2,
		Workspace:   &WorkspaceInput{Width: 400, Height: 200},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Rects) != 2 {
		t.Fatalf("expected 2 rects, got %d", len(out.Rects))
	}
	if out.Rects[0] != (RectOutput{X: 0, Y: 0, Width: 200, Height: 200}) {
		t.Fatalf("unexpected main rect %+v", out.Rects[0])
	}
	if out.Rects[1] != (RectOutput{X: 200, Y: 0, Width: 200, Height: 200}) {
		t.Fatalf("unexpected stack rect %+v", out.Rects[1])
	}
}

func TestHandleApplyLayout_DefaultWorkspace(t *testing.T) {
	s := testServer()
	_, out, err := s.handleApplyLayout(context.Background(), nil, ApplyLayoutInput{
		Layout:      layouts.Monocle,
		WindowCount: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Rects[0] != (RectOutput{Width: 1920, Height: 1080}) {
		t.Fatalf("expected the default workspace, got %+v", out.Rects[0])
	}
}

func TestHandleApplyLayout_UnknownLayout(t *testing.T) {
	s := testServer()
	_, _, err := s.handleApplyLayout(context.Background(), nil, ApplyLayoutInput{
		Layout:      "NoSuchLayout",
		WindowCount: 1,
	})
	if err == nil {
		t.Fatalf("expected error for unknown layout")
	}
	if !strings.Contains(err.Error(), "NoSuchLayout") {
		t.Fatalf("expected the unknown name in the error, got %v", err)
	}
}

func TestHandleApplyLayout_InvalidWindowCount(t *testing.T) {
	s := testServer()
	_, _, err := s.handleApplyLayout(context.Background(), nil, ApplyLayoutInput{
		Layout:      layouts.Monocle,
		WindowCount: -1,
	})
	if err == nil {
		t.Fatalf("expected error for negative window count")
	}
}

func TestHandlePreviewLayout(t *testing.T) {
	s := testServer()
	_, out, err := s.handlePreviewLayout(context.Background(), nil, PreviewLayoutInput{
		Layout:      layouts.Grid,
		WindowCount: 4,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(out.Preview, "\n")
	if len(lines) != defaultPreviewHeight {
		t.Fatalf("expected %d preview lines, got %d", defaultPreviewHeight, len(lines))
	}
	if !strings.Contains(out.Preview, "4") {
		t.Fatalf("expected window 4 in the preview:\n%s", out.Preview)
	}
}
