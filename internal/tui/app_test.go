package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/1broseidon/stacktile/geometry"
	"github.com/1broseidon/stacktile/layouts"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sized(m model) model {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(model)
}

func TestModel_WindowCountKeys(t *testing.T) {
	m := sized(newModel(layouts.DefaultRegistry()))

	updated, _ := m.Update(key("+"))
	m = updated.(model)
	if m.windowCount != defaultWindowCount+1 {
		t.Fatalf("expected %d windows, got %d", defaultWindowCount+1, m.windowCount)
	}

	for i := 0; i < maxWindowCount+5; i++ {
		updated, _ = m.Update(key("+"))
		m = updated.(model)
	}
	if m.windowCount != maxWindowCount {
		t.Fatalf("expected the count capped at %d, got %d", maxWindowCount, m.windowCount)
	}

	for i := 0; i < maxWindowCount+5; i++ {
		updated, _ = m.Update(key("-"))
		m = updated.(model)
	}
	if m.windowCount != 0 {
		t.Fatalf("expected the count floored at 0, got %d", m.windowCount)
	}
}

func TestModel_ModifierKeysMutateTheSelectedLayout(t *testing.T) {
	reg := layouts.DefaultRegistry()
	m := sized(newModel(reg))

	updated, _ := m.Update(key("r"))
	m = updated.(model)
	updated, _ = m.Update(key("f"))
	m = updated.(model)
	updated, _ = m.Update(key("m"))
	m = updated.(model)

	def, _ := reg.Get(layouts.EvenHorizontal)
	if def.Rotation != geometry.RotationEast {
		t.Fatalf("expected east rotation, got %q", def.Rotation)
	}
	if def.Flipped != geometry.FlipHorizontal {
		t.Fatalf("expected a horizontal flip, got %q", def.Flipped)
	}
	if def.MainWindowCount != 1 {
		t.Fatalf("expected stack layouts to ignore main modifiers, got %d", def.MainWindowCount)
	}
}

func TestModel_QuitKeys(t *testing.T) {
	m := sized(newModel(layouts.DefaultRegistry()))
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatalf("expected a quit command")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Fatalf("expected tea.QuitMsg, got %T", msg)
	}
}

func TestModel_ViewContainsPreviewAndStatus(t *testing.T) {
	m := sized(newModel(layouts.DefaultRegistry()))
	view := m.View()
	if !strings.Contains(view, "stacktile demo") {
		t.Fatalf("expected the title in the view")
	}
	if !strings.Contains(view, "windows: 4") {
		t.Fatalf("expected the window count in the status bar:\n%s", view)
	}
	if !strings.Contains(view, "╔") {
		t.Fatalf("expected the preview frame in the view")
	}
}
