package layouts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/1broseidon/stacktile/geometry"
)

func TestParse_FillsUnsetFieldsFromTheFallback(t *testing.T) {
	defs, err := Parse([]byte(`
layouts:
  - name: Wide
    stack_split: grid
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(defs) != 1 {
		t.Fatalf("expected 1 layout, got %d", len(defs))
	}
	def := defs[0]
	if def.StackSplit != geometry.SplitGrid {
		t.Fatalf("expected the grid stack split, got %q", def.StackSplit)
	}
	if def.ColumnType != ColumnTypeMainAndStack {
		t.Fatalf("expected the fallback column type, got %q", def.ColumnType)
	}
	if def.MainWindowCount != 1 {
		t.Fatalf("expected the fallback main window count, got %d", def.MainWindowCount)
	}
}

func TestParse_SizeNotations(t *testing.T) {
	defs, err := Parse([]byte(`
layouts:
  - name: Percent
    main_size: 65%
  - name: Pixels
    main_size: 400px
  - name: Ratio
    main_size: 0.65
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := defs[0].MainSize.IntoAbsolute(400); got != 260 {
		t.Fatalf("expected 260, got %d", got)
	}
	if got := defs[1].MainSize.IntoAbsolute(1000); got != 400 {
		t.Fatalf("expected 400, got %d", got)
	}
	if got := defs[2].MainSize.IntoAbsolute(400); got != 260 {
		t.Fatalf("expected 260, got %d", got)
	}
}

func TestParse_RejectsInvalidValues(t *testing.T) {
	_, err := Parse([]byte(`
layouts:
  - name: Broken
    column_type: diagonal
`))
	if err == nil {
		t.Fatalf("expected error for invalid column type")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected a ValidationError, got %T", err)
	}
	if verr.Path != "column_type" {
		t.Fatalf("expected path column_type, got %q", verr.Path)
	}
}

func TestParse_RejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("layouts: [")); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}

func TestLoadFromPath_MissingFileYieldsBuiltins(t *testing.T) {
	reg, err := LoadFromPath(filepath.Join(t.TempDir(), "layouts.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reg.Len() != len(BuiltinDefinitions()) {
		t.Fatalf("expected the built-in layouts, got %d", reg.Len())
	}
}

func TestLoadFromPath_MergesOverBuiltins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layouts.yaml")
	err := os.WriteFile(path, []byte(`
layouts:
  - name: Wide
    main_size: 65%
  - name: Monocle
    stack_split: horizontal
`), 0o644)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reg.Len() != len(BuiltinDefinitions())+1 {
		t.Fatalf("expected one new layout, got %d total", reg.Len())
	}
	if i, _ := reg.Index("Wide"); i != 0 {
		t.Fatalf("expected the new layout first, got position %d", i)
	}
	monocle, ok := reg.Get(Monocle)
	if !ok {
		t.Fatalf("expected %q to survive the merge", Monocle)
	}
	if monocle.StackSplit != geometry.SplitHorizontal {
		t.Fatalf("expected the override to replace the built-in, got %q", monocle.StackSplit)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "layouts.yaml")

	wide := Fallback()
	wide.Name = "Wide"
	wide.MainSize = geometry.Pixels(400)
	wide.StackSplit = geometry.SplitDwindle
	if err := Save(path, []Definition{wide}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := reg.Get("Wide")
	if !ok {
		t.Fatalf("expected the saved layout to load")
	}
	if *got != wide {
		t.Fatalf("expected %+v, got %+v", wide, *got)
	}
}
