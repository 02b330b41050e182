package tui

import (
	"fmt"
	"strings"

	"github.com/mushroomsink/mushrooms/internal/catalog"
)

type listItem struct {
	title string
	meta  string
}

func companyItems(companies []catalog.Company) []listItem {
	items := make([]listItem, len(companies))
	for i, c := range companies {
		meta := c.Industry + " · " + c.Country
		if c.Founded > 0 {
			meta += fmt.Sprintf(" · est. %d", c.Founded)
		}
		items[i] = listItem{title: c.Name, meta: meta}
	}
	return items
}

func articleItems(articles []catalog.Article) []listItem {
	items := make([]listItem, len(articles))
	for i, a := range articles {
		meta := a.Category
		if a.Journal != "" {
			meta += " · " + a.Journal
		}
		if a.Year > 0 {
			meta += fmt.Sprintf(" · %d", a.Year)
		}
		items[i] = listItem{title: a.Title, meta: meta}
	}
	return items
}

func renderListItem(it listItem, selected bool, width int) string {
	if width < 10 {
		width = 30
	}

	var title string
	if selected {
		title = itemSelectedStyle.Render("> " + truncateStr(it.title, width-4))
	} else {
		title = itemTitleStyle.Render("  " + truncateStr(it.title, width-4))
	}

	meta := "  " + itemMetaStyle.Render(truncateStr(it.meta, width-4))

	return title + "\n" + meta
}

func truncateStr(s string, n int) string {
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

// renderList draws the window of items around cursor. empty is shown, with
// a hint to clear filters, when there is nothing to list.
func renderList(items []listItem, cursor int, height int, width int, empty string) string {
	if len(items) == 0 {
		return lipglossCenter(empty, width, height) + "\n\n" +
			lipglossCenter("press c to clear filters", width, 0)
	}

	// Each item is 2 lines + 1 blank line = 3 lines
	itemHeight := 3
	visible := height / itemHeight
	if visible < 1 {
		visible = 1
	}

	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(items) {
		end = len(items)
		start = end - visible
		if start < 0 {
			start = 0
		}
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(renderListItem(items[i], i == cursor, width))
		if i < end-1 {
			b.WriteString("\n\n")
		}
	}

	return b.String()
}

func lipglossCenter(s string, width, height int) string {
	pad := (width - len([]rune(s))) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat("\n", height/3) + strings.Repeat(" ", pad) + s
}
