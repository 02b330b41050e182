// Package dropdown is a single-choice selection widget for the terminal UI.
// It is an explicit two-state machine: Closed until the trigger is
// activated, Open until an item is chosen or a pointer event lands outside.
package dropdown

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Item is one selectable entry.
type Item struct {
	Value string
	Label string
}

// Rect is a screen region in cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

type Model struct {
	placeholder string
	items       []Item
	selected    string
	cursor      int
	state       State
	origin      struct{ x, y int }

	// OnSelect is called with the chosen value after the widget closes.
	OnSelect func(value string)

	Width int
}

// New builds a closed dropdown. An empty or "all" selection renders the
// placeholder on the trigger.
func New(placeholder string, items []Item, selected string) *Model {
	m := &Model{placeholder: placeholder, Width: 28}
	m.SetItems(items)
	if selected != "" {
		m.SetSelected(selected)
	}
	return m
}

func (m *Model) State() State { return m.state }

func (m *Model) IsOpen() bool { return m.state == Open }

func (m *Model) Selected() string { return m.selected }

func (m *Model) Items() []Item { return m.items }

func (m *Model) Cursor() int { return m.cursor }

// SetItems replaces the entries. The selection survives when still present,
// otherwise it falls back to the first item.
func (m *Model) SetItems(items []Item) {
	m.items = items
	if i := m.indexOf(m.selected); i >= 0 {
		m.cursor = i
		return
	}
	m.cursor = 0
	if len(items) > 0 {
		m.selected = items[0].Value
	} else {
		m.selected = ""
	}
}

// SetSelected changes the selection without invoking OnSelect.
func (m *Model) SetSelected(value string) {
	m.selected = value
	if i := m.indexOf(value); i >= 0 {
		m.cursor = i
	}
}

func (m *Model) indexOf(value string) int {
	for i, it := range m.items {
		if it.Value == value {
			return i
		}
	}
	return -1
}

func (m *Model) Open() {
	if len(m.items) == 0 {
		return
	}
	m.state = Open
	if i := m.indexOf(m.selected); i >= 0 {
		m.cursor = i
	}
}

func (m *Model) Close() {
	m.state = Closed
}

// Toggle is the trigger activation.
func (m *Model) Toggle() {
	if m.state == Open {
		m.Close()
		return
	}
	m.Open()
}

func (m *Model) Next() {
	if m.state == Open && m.cursor < len(m.items)-1 {
		m.cursor++
	}
}

func (m *Model) Prev() {
	if m.state == Open && m.cursor > 0 {
		m.cursor--
	}
}

// Select picks value, closes the list and reports the choice.
func (m *Model) Select(value string) {
	m.selected = value
	if i := m.indexOf(value); i >= 0 {
		m.cursor = i
	}
	m.Close()
	if m.OnSelect != nil {
		m.OnSelect(value)
	}
}

// Confirm selects the item under the cursor. Ignored while closed.
func (m *Model) Confirm() {
	if m.state != Open || m.cursor >= len(m.items) {
		return
	}
	m.Select(m.items[m.cursor].Value)
}

// SetOrigin records where the trigger was drawn so pointer events can be
// hit-tested.
func (m *Model) SetOrigin(x, y int) {
	m.origin.x = x
	m.origin.y = y
}

// Bounds covers the trigger and, while open, the item list below it.
func (m *Model) Bounds() Rect {
	h := 1
	if m.state == Open {
		h += len(m.items)
	}
	return Rect{X: m.origin.x, Y: m.origin.y, Width: m.Width, Height: h}
}

// HandlePointer reacts to a press at (x, y). A press on the trigger
// toggles, a press on an item selects it, and a press anywhere else closes
// the list. Returns true when the press landed on the widget.
func (m *Model) HandlePointer(x, y int) bool {
	b := m.Bounds()
	if !b.Contains(x, y) {
		m.Close()
		return false
	}
	row := y - b.Y
	if row == 0 {
		m.Toggle()
		return true
	}
	if idx := row - 1; idx < len(m.items) {
		m.Select(m.items[idx].Value)
	}
	return true
}

// Label is the text shown on the trigger.
func (m *Model) Label() string {
	if m.selected == "" || m.selected == "all" {
		return m.placeholder
	}
	if i := m.indexOf(m.selected); i >= 0 {
		return m.items[i].Label
	}
	return m.selected
}

var (
	triggerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}).
			Background(lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#2A2A3E"})

	triggerOpenStyle = triggerStyle.
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#43A047"})

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}).
			Background(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"})

	itemCursorStyle = itemStyle.
			Foreground(lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#66BB6A"}).
			Bold(true)
)

// View renders the trigger and, while open, one line per item.
func (m *Model) View() string {
	arrow := "▾"
	style := triggerStyle
	if m.state == Open {
		arrow = "▴"
		style = triggerOpenStyle
	}
	inner := m.Width - 4
	if inner < 1 {
		inner = 1
	}
	lines := []string{style.Width(m.Width).Render(" " + fit(m.Label(), inner) + " " + arrow)}
	if m.state == Open {
		for i, it := range m.items {
			mark := "  "
			if it.Value == m.selected {
				mark = "✓ "
			}
			s := itemStyle
			if i == m.cursor {
				s = itemCursorStyle
			}
			lines = append(lines, s.Width(m.Width).Render(mark+fit(it.Label, m.Width-2)))
		}
	}
	return strings.Join(lines, "\n")
}

func fit(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}
