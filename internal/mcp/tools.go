package mcp

import (
	"context"
	"fmt"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/stacktile/geometry"
	"github.com/1broseidon/stacktile/internal/render"
	"github.com/1broseidon/stacktile/layouts"
)

const (
	defaultWorkspaceWidth  = 1920
	defaultWorkspaceHeight = 1080
	defaultPreviewWidth    = 60
	defaultPreviewHeight   = 18
)

func layoutInfo(def *layouts.Definition) LayoutInfo {
	return LayoutInfo{
		Name:               def.Name,
		ColumnType:         string(def.ColumnType),
		Flipped:            string(def.Flipped),
		Rotation:           string(def.Rotation),
		MainWindowCount:    def.MainWindowCount,
		MainSize:           def.MainSize.String(),
		MainSplit:          string(def.MainSplit),
		StackSplit:         string(def.StackSplit),
		ReserveColumnSpace: string(def.ReserveColumnSpace),
		BalanceStacks:      def.BalanceStacks,
	}
}

func (s *Server) lookup(name string) (*layouts.Definition, error) {
	def, ok := s.registry.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown layout %q; available: %v", name, s.registry.Names())
	}
	return def, nil
}

func (s *Server) handleListLayouts(_ context.Context, _ *mcpsdk.CallToolRequest, args ListLayoutsInput) (*mcpsdk.CallToolResult, ListLayoutsOutput, error) {
	names := s.registry.Search(args.Query)
	out := ListLayoutsOutput{Layouts: make([]LayoutInfo, 0, len(names))}
	for _, name := range names {
		def, ok := s.registry.Get(name)
		if !ok {
			continue
		}
		out.Layouts = append(out.Layouts, layoutInfo(def))
	}
	return nil, out, nil
}

func (s *Server) handleApplyLayout(_ context.Context, _ *mcpsdk.CallToolRequest, args ApplyLayoutInput) (*mcpsdk.CallToolResult, ApplyLayoutOutput, error) {
	def, err := s.lookup(args.Layout)
	if err != nil {
		return nil, ApplyLayoutOutput{}, err
	}

	workspace := geometry.Rect{Width: defaultWorkspaceWidth, Height: defaultWorkspaceHeight}
	if args.Workspace != nil {
		workspace = geometry.Rect{
			X:      args.Workspace.X,
			Y:      args.Workspace.Y,
			Width:  args.Workspace.Width,
			Height: args.Workspace.Height,
		}
	}

	rects, err := layouts.Apply(def, args.WindowCount, workspace)
	if err != nil {
		return nil, ApplyLayoutOutput{}, err
	}

	out := ApplyLayoutOutput{
		Layout: def.Name,
		Rects:  make([]RectOutput, len(rects)),
	}
	for i, r := range rects {
		out.Rects[i] = RectOutput{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
	}
	return nil, out, nil
}

func (s *Server) handlePreviewLayout(_ context.Context, _ *mcpsdk.CallToolRequest, args PreviewLayoutInput) (*mcpsdk.CallToolResult, PreviewLayoutOutput, error) {
	def, err := s.lookup(args.Layout)
	if err != nil {
		return nil, PreviewLayoutOutput{}, err
	}

	width := args.Width
	if width <= 0 {
		width = defaultPreviewWidth
	}
	height := args.Height
	if height <= 0 {
		height = defaultPreviewHeight
	}

	lines, err := render.Preview(def, args.WindowCount, width, height)
	if err != nil {
		return nil, PreviewLayoutOutput{}, err
	}
	return nil, PreviewLayoutOutput{
		Layout:  def.Name,
		Preview: strings.Join(lines, "\n"),
	}, nil
}
