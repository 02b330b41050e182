package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mushroomsink/mushrooms/internal/dropdown"
	"github.com/mushroomsink/mushrooms/internal/viewmodel"
)

// Screen geometry of the control row, shared by rendering and pointer
// hit-testing.
const (
	controlsRow = 2
	searchWidth = 34
	menuWidth   = 30
)

// controls is the search box plus the filter and sort menus of one page.
type controls struct {
	filter *dropdown.Model
	sort   *dropdown.Model
}

func newControls(filterPlaceholder string, sortItems []dropdown.Item, sort string) controls {
	c := controls{
		filter: dropdown.New(filterPlaceholder, nil, viewmodel.AllCategories),
		sort:   dropdown.New("Sort by", sortItems, sort),
	}
	c.filter.Width = menuWidth
	c.sort.Width = menuWidth
	c.filter.SetOrigin(searchWidth+1, controlsRow)
	c.sort.SetOrigin(searchWidth+1+menuWidth+1, controlsRow)
	return c
}

func (c controls) menus() []*dropdown.Model {
	return []*dropdown.Model{c.filter, c.sort}
}

// active returns the open menu, if any.
func (c controls) active() *dropdown.Model {
	for _, m := range c.menus() {
		if m.IsOpen() {
			return m
		}
	}
	return nil
}

func (c controls) closeAll() {
	for _, m := range c.menus() {
		m.Close()
	}
}

// reset puts both menus back on their first entry without notifying.
func (c controls) reset(sort string) {
	c.closeAll()
	c.filter.SetSelected(viewmodel.AllCategories)
	c.sort.SetSelected(sort)
}

// render returns the control row followed by the open menu's entries,
// indented to sit under its trigger.
func (c controls) render(search string) string {
	row := padRight(search, searchWidth) + " " +
		firstLine(c.filter.View()) + " " + firstLine(c.sort.View())

	lines := []string{row}
	if m := c.active(); m != nil {
		indent := strings.Repeat(" ", m.Bounds().X)
		for _, l := range strings.Split(m.View(), "\n")[1:] {
			lines = append(lines, indent+l)
		}
	}
	return strings.Join(lines, "\n")
}

func industryItems(v viewmodel.CompanyState) []dropdown.Item {
	return countItems("All Industries", v.Industries)
}

func categoryItems(v viewmodel.ArticleState) []dropdown.Item {
	return countItems("All Categories", v.Categories)
}

func countItems(allLabel string, counts viewmodel.Counts) []dropdown.Item {
	items := make([]dropdown.Item, 0, counts.Len()+1)
	items = append(items, dropdown.Item{
		Value: viewmodel.AllCategories,
		Label: fmt.Sprintf("%s (%d)", allLabel, counts.Total()),
	})
	for _, k := range counts.Keys {
		items = append(items, dropdown.Item{Value: k, Label: fmt.Sprintf("%s (%d)", k, counts.Get(k))})
	}
	return items
}

func companySortItems() []dropdown.Item {
	var items []dropdown.Item
	for _, s := range viewmodel.CompanySorts() {
		items = append(items, dropdown.Item{Value: string(s), Label: s.Label()})
	}
	return items
}

func articleSortItems() []dropdown.Item {
	var items []dropdown.Item
	for _, s := range viewmodel.ArticleSorts() {
		items = append(items, dropdown.Item{Value: string(s), Label: s.Label()})
	}
	return items
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// padRight cuts or pads s to exactly n cells.
func padRight(s string, n int) string {
	s = lipgloss.NewStyle().Inline(true).MaxWidth(n).Render(s)
	if w := lipgloss.Width(s); w < n {
		s += strings.Repeat(" ", n-w)
	}
	return s
}
