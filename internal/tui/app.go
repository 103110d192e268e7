// Package tui is the interactive layout explorer: a layout picker on
// the left, a live ASCII preview on the right, and keybindings for the
// layout modifiers.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/stacktile/internal/render"
	"github.com/1broseidon/stacktile/layouts"
)

const (
	defaultWindowCount = 4
	maxWindowCount     = 16

	listWidth   = 28
	chromeLines = 4 // title + divider + divider + help bar
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 2)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	dividerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("236"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

// layoutItem implements list.Item for the layout picker.
type layoutItem struct {
	name string
}

func (i layoutItem) Title() string       { return i.name }
func (i layoutItem) Description() string { return "" }
func (i layoutItem) FilterValue() string { return i.name }

type model struct {
	registry *layouts.Registry
	list     list.Model

	windowCount int

	width  int
	height int
	ready  bool
}

func newModel(registry *layouts.Registry) model {
	items := make([]list.Item, 0, registry.Len())
	for _, name := range registry.Names() {
		items = append(items, layoutItem{name: name})
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := list.New(items, delegate, listWidth, 0)
	l.Title = "Layouts"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()

	return model{
		registry:    registry,
		list:        l,
		windowCount: defaultWindowCount,
	}
}

// selected returns the registry's definition for the highlighted item.
func (m model) selected() *layouts.Definition {
	item, ok := m.list.SelectedItem().(layoutItem)
	if !ok {
		return nil
	}
	def, ok := m.registry.Get(item.name)
	if !ok {
		return nil
	}
	return def
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(listWidth, m.contentHeight())
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		// While the list filter is open it owns the keyboard.
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit

		case "+", "=":
			if m.windowCount < maxWindowCount {
				m.windowCount++
			}
			return m, nil
		case "-", "_":
			if m.windowCount > 0 {
				m.windowCount--
			}
			return m, nil

		case "h":
			if def := m.selected(); def != nil {
				def.ChangeMainSize(-5, m.workspaceWidth())
			}
			return m, nil
		case "l":
			if def := m.selected(); def != nil {
				def.ChangeMainSize(5, m.workspaceWidth())
			}
			return m, nil

		case "m":
			if def := m.selected(); def != nil {
				def.IncreaseMainWindowCount()
			}
			return m, nil
		case "n":
			if def := m.selected(); def != nil {
				def.DecreaseMainWindowCount()
			}
			return m, nil

		case "f":
			if def := m.selected(); def != nil {
				def.Flipped = def.Flipped.ToggleHorizontal()
			}
			return m, nil
		case "v":
			if def := m.selected(); def != nil {
				def.Flipped = def.Flipped.ToggleVertical()
			}
			return m, nil

		case "r":
			if def := m.selected(); def != nil {
				def.Rotate(true)
			}
			return m, nil
		case "R":
			if def := m.selected(); def != nil {
				def.Rotate(false)
			}
			return m, nil

		case "b":
			if def := m.selected(); def != nil {
				def.BalanceStacks = !def.BalanceStacks
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) contentHeight() int {
	h := m.height - chromeLines
	if h < 1 {
		h = 1
	}
	return h
}

func (m model) previewWidth() int {
	w := m.width - listWidth - 3
	if w < 5 {
		w = 5
	}
	return w
}

// workspaceWidth is the pixel width of the simulated workspace the
// preview renders, used as the bound for pixel-sized main columns.
func (m model) workspaceWidth() int {
	return m.previewWidth() * 2
}

// View implements tea.Model.
func (m model) View() string {
	if !m.ready {
		return "loading..."
	}

	title := titleStyle.Render("stacktile demo")
	divider := dividerStyle.Render(strings.Repeat("─", m.width))

	contentHeight := m.contentHeight()
	listView := strings.Split(m.list.View(), "\n")

	var previewLines []string
	def := m.selected()
	if def == nil {
		previewLines = []string{errorStyle.Render("no layout selected")}
	} else {
		lines, err := render.Preview(def, m.windowCount, m.previewWidth(), contentHeight)
		if err != nil {
			previewLines = []string{errorStyle.Render(err.Error())}
		} else {
			previewLines = lines
		}
	}

	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(divider)
	sb.WriteString("\n")
	for i := 0; i < contentHeight; i++ {
		if i < len(listView) {
			sb.WriteString(lipgloss.NewStyle().Width(listWidth).Render(listView[i]))
		} else {
			sb.WriteString(strings.Repeat(" ", listWidth))
		}
		sb.WriteString(" │ ")
		if i < len(previewLines) {
			sb.WriteString(previewLines[i])
		}
		sb.WriteString("\n")
	}
	sb.WriteString(divider)
	sb.WriteString("\n")
	sb.WriteString(m.statusBar(def))
	return sb.String()
}

func (m model) statusBar(def *layouts.Definition) string {
	status := fmt.Sprintf("windows: %d", m.windowCount)
	if def != nil {
		status = fmt.Sprintf(
			"windows: %d  main: %d @ %s  flip: %s  rotation: %s",
			m.windowCount, def.MainWindowCount, def.MainSize, def.Flipped, def.Rotation,
		)
	}
	help := "+/- windows · h/l main size · m/n main count · f/v flip · r/R rotate · b balance · q quit"
	return statusStyle.Render(status) + "  " + helpStyle.Render(help)
}

// Run starts the interactive demo and blocks until the user quits.
func Run(registry *layouts.Registry) error {
	p := tea.NewProgram(newModel(registry), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
