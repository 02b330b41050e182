package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mushroomsink/mushrooms/internal/config"
)

// renderReports lays the report cards out in two columns when the terminal
// is wide enough, one otherwise.
func renderReports(reports []config.Report, cursor, width, height int) string {
	title := previewTitleStyle.Render(" Industry Reports")
	if len(reports) == 0 {
		return title + "\n" + lipglossCenter("No reports configured", width, height)
	}

	cols := 1
	if width >= 100 {
		cols = 2
	}
	cardWidth := width/cols - 4
	if cardWidth < 30 {
		cardWidth = 30
	}

	var rows []string
	for i := 0; i < len(reports); i += cols {
		var cards []string
		for j := i; j < i+cols && j < len(reports); j++ {
			cards = append(cards, renderReportCard(reports[j], j == cursor, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	content := title + "\n" + strings.Join(rows, "\n")
	return scrollToCursor(content, height, cursor/cols, len(rows))
}

func renderReportCard(r config.Report, selected bool, width int) string {
	var body []string
	body = append(body, itemTitleStyle.Render(r.Title))
	if r.Description != "" {
		body = append(body, itemMetaStyle.Render(r.Description))
	}
	body = append(body, "")
	for _, b := range r.Bullets {
		body = append(body, previewBodyStyle.Render("• "+b))
	}
	link := "Download report"
	if selected {
		link += " (o)"
	}
	body = append(body, "", previewLabelStyle.Render(link))

	style := reportCardStyle
	if selected {
		style = reportCardActiveStyle
	}
	return " " + style.Width(width).Render(strings.Join(body, "\n"))
}

// scrollToCursor keeps the selected card row on screen by dropping whole
// rows from the top.
func scrollToCursor(content string, height, row, rows int) string {
	lines := strings.Split(content, "\n")
	if len(lines) <= height || rows == 0 {
		return strings.Join(lines, "\n")
	}
	per := (len(lines) - 1) / rows
	skip := 0
	if per > 0 && (row+1)*per+1 > height {
		skip = (row+1)*per + 1 - height
	}
	lines = lines[skip:]
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
