package mcp

// ListLayoutsInput is the input for the list_layouts tool.
type ListLayoutsInput struct {
	Query string `json:"query,omitempty" jsonschema:"Optional fuzzy filter on layout names (e.g. fib matches Fibonacci)"`
}

// LayoutInfo describes a single layout definition.
type LayoutInfo struct {
	Name               string `json:"name"`
	ColumnType         string `json:"column_type"`
	Flipped            string `json:"flipped"`
	Rotation           string `json:"rotation"`
	MainWindowCount    int    `json:"main_window_count"`
	MainSize           string `json:"main_size"`
	MainSplit          string `json:"main_split"`
	StackSplit         string `json:"stack_split"`
	ReserveColumnSpace string `json:"reserve_column_space"`
	BalanceStacks      bool   `json:"balance_stacks"`
}

// ListLayoutsOutput is the output for the list_layouts tool.
type ListLayoutsOutput struct {
	Layouts []LayoutInfo `json:"layouts"`
}

// WorkspaceInput describes the workspace rectangle a layout is computed
// for.
type WorkspaceInput struct {
	X      int `json:"x,omitempty" jsonschema:"Left edge of the workspace in pixels (default: 0)"`
	Y      int `json:"y,omitempty" jsonschema:"Top edge of the workspace in pixels (default: 0)"`
	Width  int `json:"width" jsonschema:"required,Workspace width in pixels"`
	Height int `json:"height" jsonschema:"required,Workspace height in pixels"`
}

// ApplyLayoutInput is the input for the apply_layout tool.
type ApplyLayoutInput struct {
	Layout      string          `json:"layout" jsonschema:"required,Name of the layout to apply (see list_layouts)"`
	WindowCount int             `json:"window_count" jsonschema:"required,Number of windows to lay out"`
	Workspace   *WorkspaceInput `json:"workspace,omitempty" jsonschema:"Workspace rectangle (default: 1920x1080 at the origin)"`
}

// RectOutput is one computed window rectangle.
type RectOutput struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ApplyLayoutOutput is the output for the apply_layout tool. Rects are
// in canonical window order: main windows first, then the stacks.
type ApplyLayoutOutput struct {
	Layout string       `json:"layout"`
	Rects  []RectOutput `json:"rects"`
}

// PreviewLayoutInput is the input for the preview_layout tool.
type PreviewLayoutInput struct {
	Layout      string `json:"layout" jsonschema:"required,Name of the layout to preview (see list_layouts)"`
	WindowCount int    `json:"window_count" jsonschema:"required,Number of windows to lay out"`
	Width       int    `json:"width,omitempty" jsonschema:"Canvas width in characters (default: 60)"`
	Height      int    `json:"height,omitempty" jsonschema:"Canvas height in characters (default: 18)"`
}

// PreviewLayoutOutput is the output for the preview_layout tool.
type PreviewLayoutOutput struct {
	Layout  string `json:"layout"`
	Preview string `json:"preview"`
}
