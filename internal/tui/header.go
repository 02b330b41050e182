package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mushroomsink/mushrooms/internal/viewmodel"
	"golang.org/x/text/message"
)

var pageTitles = [...]string{
	pageCompanies: "Companies",
	pageResearch:  "Research",
	pageReports:   "Industry Reports",
}

func (p page) String() string {
	if int(p) < len(pageTitles) {
		return pageTitles[p]
	}
	return "unknown"
}

// renderHeader draws the brand on the left and the page tabs on the right.
func renderHeader(current page, width int) string {
	left := headerStyle.Render("mushrooms.ink")

	var tabs []string
	for i, title := range pageTitles {
		label := fmt.Sprintf("%d %s", i+1, title)
		if page(i) == current {
			tabs = append(tabs, tabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, tabInactiveStyle.Render(label))
		}
	}
	right := strings.Join(tabs, " ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

func stat(p *message.Printer, value int, suffix, label string) string {
	return statsValueStyle.Render(p.Sprintf("%d", value)+suffix) + " " + statsLabelStyle.Render(label)
}

// renderCompanyStats mirrors the stats cards of the directory page. Totals
// cover the whole dataset, not the current filter.
func renderCompanyStats(p *message.Printer, s viewmodel.Stats) string {
	sep := statsLabelStyle.Render("  ·  ")
	return " " + strings.Join([]string{
		stat(p, s.Companies, "", "Companies"),
		stat(p, s.Industries, "", "Industries"),
		stat(p, s.Countries, "", "Countries"),
		stat(p, s.Employees, "+", "Total Employees"),
	}, sep)
}

func renderArticleStats(p *message.Printer, total, categories int) string {
	sep := statsLabelStyle.Render("  ·  ")
	return " " + stat(p, total, "", "Articles") + sep + stat(p, categories, "", "Categories")
}

// showingLine is the "Showing N of M" summary under the controls.
func showingLine(p *message.Printer, shown, total int, noun string) string {
	return itemDimStyle.Render(p.Sprintf(" Showing %d of %d %s", shown, total, noun))
}
