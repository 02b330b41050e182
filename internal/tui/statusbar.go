package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(left, hints string, width int) string {
	right := " " + hints + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}

func (a *App) statusLeft() string {
	if a.err != nil {
		return errorStyle.Render(a.err.Error())
	}
	if a.notice != "" {
		return a.notice
	}
	switch a.page {
	case pageCompanies:
		return fmt.Sprintf("%s · %s", a.companyControls.filter.Label(), a.companyControls.sort.Label())
	case pageResearch:
		return fmt.Sprintf("%s · %s", a.articleControls.filter.Label(), a.articleControls.sort.Label())
	default:
		return fmt.Sprintf("%d reports", len(a.reports))
	}
}

func (a *App) statusHints() string {
	switch a.mode {
	case modeSearch:
		return "esc clear  enter done"
	case modeMenu:
		return "↑/↓ move  enter select  esc close"
	}
	if a.page == pageReports {
		return "1-3 page  j/k move  o open  ? help  q quit"
	}
	return "/ search  f filter  s sort  c clear  o open  ? help  q quit"
}
