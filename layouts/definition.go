package layouts

import (
	"fmt"

	"github.com/1broseidon/stacktile/geometry"
)

// ColumnType defines the top-level arrangement of main and stack columns.
type ColumnType string

const (
	// ColumnTypeStack is a single stack column without a main column.
	ColumnTypeStack ColumnType = "stack"

	// ColumnTypeMainAndStack is a main column on the left with one stack
	// column on the right.
	ColumnTypeMainAndStack ColumnType = "main-and-stack"

	// ColumnTypeCenterMain is a centered main column flanked by up to two
	// stack columns, the first on the left and the second on the right.
	ColumnTypeCenterMain ColumnType = "center-main"
)

// Valid reports whether the column type is one of the known variants.
func (c ColumnType) Valid() bool {
	switch c {
	case ColumnTypeStack, ColumnTypeMainAndStack, ColumnTypeCenterMain:
		return true
	}
	return false
}

// Definition is the fully-resolved parameter set a layout is computed
// from. Apply treats it as an immutable input; the mutating accessors
// operate on the caller's held Definition between calls and are not
// internally synchronized.
type Definition struct {
	// Name identifies the layout. No two definitions in a registry may
	// share a name.
	Name string `yaml:"name"`

	// ColumnType selects the column arrangement.
	ColumnType ColumnType `yaml:"column_type"`

	// Flipped mirrors the entire result as a final transform.
	Flipped geometry.Flipped `yaml:"flipped,omitempty"`

	// Rotation rotates the entire result as a final transform.
	Rotation geometry.Rotation `yaml:"rotation,omitempty"`

	// MainWindowCount is the target number of windows in the main
	// column. Zero disables the main column even when the column type
	// implies one. Ignored for ColumnTypeStack.
	MainWindowCount int `yaml:"main_window_count"`

	// MainSize is the share of the workspace extent occupied by the
	// main column, as a ratio or pixel amount.
	MainSize geometry.Size `yaml:"main_size"`

	// MainSplit is how windows inside the main column are split when
	// there is more than one. SplitNone stacks them on top of each
	// other (deck behavior) and caps the main column at one rectangle's
	// worth of geometry.
	MainSplit geometry.SplitAxis `yaml:"main_split"`

	// StackSplit is how windows inside the stack column(s) are split.
	StackSplit geometry.SplitAxis `yaml:"stack_split"`

	// ReserveColumnSpace decides what happens to the space of an empty
	// column.
	ReserveColumnSpace geometry.ReserveColumnSpace `yaml:"reserve_column_space,omitempty"`

	// BalanceStacks distributes stack windows as evenly as possible
	// between the two stacks of a center-main layout. When false all
	// stack windows go to the first stack. Ignored by single-stack
	// layouts.
	BalanceStacks bool `yaml:"balance_stacks"`
}

// Fallback returns the definition used when nothing else is configured:
// a classic main-and-stack split at 50%.
func Fallback() Definition {
	return Definition{
		Name:               "MainAndStack",
		ColumnType:         ColumnTypeMainAndStack,
		Flipped:            geometry.FlipNone,
		Rotation:           geometry.RotationNorth,
		MainWindowCount:    1,
		MainSize:           geometry.Ratio(0.5),
		MainSplit:          geometry.SplitVertical,
		StackSplit:         geometry.SplitHorizontal,
		ReserveColumnSpace: geometry.ReserveNone,
		BalanceStacks:      true,
	}
}

// HasMainColumn reports whether the column type features a main column
// at all. A definition without a main column has no main size or main
// window count to speak of.
func (d *Definition) HasMainColumn() bool {
	return d.ColumnType == ColumnTypeMainAndStack || d.ColumnType == ColumnTypeCenterMain
}

// MainWindows returns the target main window count, or false when the
// definition has no main column concept.
func (d *Definition) MainWindows() (int, bool) {
	if !d.HasMainColumn() {
		return 0, false
	}
	return d.MainWindowCount, true
}

// MainColumnSize returns the configured main size, or false when the
// definition has no main column concept.
func (d *Definition) MainColumnSize() (geometry.Size, bool) {
	if !d.HasMainColumn() {
		return geometry.Size{}, false
	}
	return d.MainSize, true
}

// SetMainSize replaces the main size with an explicit value, clamped so
// it can neither vanish nor exceed the whole extent (ratios are clamped
// to [0, 1]; pixel sizes to >= 0).
func (d *Definition) SetMainSize(size geometry.Size) {
	if !d.HasMainColumn() {
		return
	}
	if size.IsRatio() {
		// Add with a zero delta only applies the [0, 1] clamp.
		d.MainSize = size.Add(0, 0)
		return
	}
	if size.IntoAbsolute(0) < 0 {
		size = geometry.Pixels(0)
	}
	d.MainSize = size
}

// ChangeMainSize adds delta to the current main size, clamped to
// [0, upperBound] for pixel sizes and [0%, 100%] for ratios. Intended
// for incremental interactive resizing.
func (d *Definition) ChangeMainSize(delta, upperBound int) {
	if !d.HasMainColumn() {
		return
	}
	d.MainSize = d.MainSize.Add(delta, upperBound)
}

// IncreaseMainWindowCount raises the target main window count by one.
func (d *Definition) IncreaseMainWindowCount() {
	if !d.HasMainColumn() {
		return
	}
	d.MainWindowCount++
}

// DecreaseMainWindowCount lowers the target main window count by one,
// bottoming out at zero.
func (d *Definition) DecreaseMainWindowCount() {
	if !d.HasMainColumn() || d.MainWindowCount == 0 {
		return
	}
	d.MainWindowCount--
}

// Rotate advances the definition's rotation by a quarter turn.
func (d *Definition) Rotate(clockwise bool) {
	if clockwise {
		d.Rotation = d.Rotation.Clockwise()
	} else {
		d.Rotation = d.Rotation.CounterClockwise()
	}
}

// Validate checks the definition for values outside the supported
// variants.
func (d *Definition) Validate() error {
	if d.Name == "" {
		return &ValidationError{Path: "name", Err: fmt.Errorf("name is required")}
	}
	if !d.ColumnType.Valid() {
		return &ValidationError{Path: "column_type", Err: fmt.Errorf("invalid column type %q", d.ColumnType)}
	}
	if !d.MainSplit.Valid() {
		return &ValidationError{Path: "main_split", Err: fmt.Errorf("invalid split axis %q", d.MainSplit)}
	}
	if !d.StackSplit.Valid() {
		return &ValidationError{Path: "stack_split", Err: fmt.Errorf("invalid split axis %q", d.StackSplit)}
	}
	if !d.Flipped.Valid() {
		return &ValidationError{Path: "flipped", Err: fmt.Errorf("invalid flip state %q", d.Flipped)}
	}
	if !d.Rotation.Valid() {
		return &ValidationError{Path: "rotation", Err: fmt.Errorf("invalid rotation %q", d.Rotation)}
	}
	if !d.ReserveColumnSpace.Valid() {
		return &ValidationError{Path: "reserve_column_space", Err: fmt.Errorf("invalid reserve policy %q", d.ReserveColumnSpace)}
	}
	if d.MainWindowCount < 0 {
		return &ValidationError{Path: "main_window_count", Err: fmt.Errorf("main_window_count must be >= 0")}
	}
	return nil
}

// ValidationError describes an invalid configuration value and the path
// it was found at.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
