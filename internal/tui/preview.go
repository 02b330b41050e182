package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mushroomsink/mushrooms/internal/catalog"
)

func renderCompanyPreview(c *catalog.Company, width, height, scroll int) string {
	if c == nil {
		return lipglossCenter("Select a company", width, height)
	}

	contentWidth := width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	title := previewTitleStyle.Width(contentWidth).Render(c.Name)
	meta := previewMetaStyle.Render(c.Industry + " • " + c.Country)

	var facts []string
	if c.Founded > 0 {
		facts = append(facts, fact("Founded", fmt.Sprint(c.Founded)))
	}
	if c.Employees != "" {
		facts = append(facts, fact("Employees", c.Employees))
	}
	if c.BusinessModel != "" {
		facts = append(facts, fact("Model", c.BusinessModel))
	}
	if c.Stage != "" {
		facts = append(facts, fact("Stage", c.Stage))
	}
	facts = append(facts, fact("Innovation", string(c.Innovation)))
	if c.Target != "" {
		facts = append(facts, fact("Target", c.Target))
	}

	parts := []string{title, meta, strings.Join(facts, "\n"), ""}
	if c.Products != "" {
		parts = append(parts, previewBodyStyle.Width(contentWidth).Render(wrapText(c.Products, contentWidth)), "")
	}
	if c.Description != "" {
		parts = append(parts, previewBodyStyle.Width(contentWidth).Render(wrapText(c.Description, contentWidth)))
	}
	if c.Technologies != "" {
		parts = append(parts, "", fact("Technologies", c.Technologies))
	}
	if c.HasDiscount() {
		offer := badgeStyle.Render("Partner") + " " +
			previewBodyStyle.Render(fmt.Sprintf("Use code %s for %s off", c.DiscountCode, c.Discount))
		parts = append(parts, "", offer)
	}
	if url := c.WebsiteURL(); url != "" {
		parts = append(parts, previewLinkStyle.Width(contentWidth).Render("Visit website (o): "+url))
	}

	return scrollFit(lipgloss.JoinVertical(lipgloss.Left, parts...), height, scroll)
}

func renderArticlePreview(a *catalog.Article, width, height, scroll int) string {
	if a == nil {
		return lipglossCenter("Select an article", width, height)
	}

	contentWidth := width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	title := previewTitleStyle.Width(contentWidth).Render(a.Title)

	metaParts := []string{a.Category}
	if a.Subcategory != "" {
		metaParts = append(metaParts, a.Subcategory)
	}
	if a.Type != "" {
		metaParts = append(metaParts, a.Type)
	}
	meta := previewMetaStyle.Render(strings.Join(metaParts, " · "))

	var facts []string
	if a.Authors != "" {
		facts = append(facts, fact("Authors", a.Authors))
	}
	if a.Journal != "" {
		facts = append(facts, fact("Journal", a.Journal))
	}
	if a.Year > 0 {
		facts = append(facts, fact("Year", fmt.Sprint(a.Year)))
	}

	summary := a.Summary
	if summary == "" {
		summary = "(No summary available)"
	}

	parts := []string{title, meta, strings.Join(facts, "\n"), "",
		previewBodyStyle.Width(contentWidth).Render(wrapText(summary, contentWidth))}
	if len(a.Keywords) > 0 {
		parts = append(parts, "", fact("Keywords", strings.Join(a.Keywords, ", ")))
	}
	if a.URL != "" {
		parts = append(parts, previewLinkStyle.Width(contentWidth).Render("Read more (o): "+a.URL))
	}

	return scrollFit(lipgloss.JoinVertical(lipgloss.Left, parts...), height, scroll)
}

func fact(label, value string) string {
	return previewLabelStyle.Render(fmt.Sprintf("%-12s", label)) + previewBodyStyle.Render(value)
}

// scrollFit drops the first scroll lines and pads or cuts to height.
func scrollFit(content string, height, scroll int) string {
	lines := strings.Split(content, "\n")
	if scroll > 0 && scroll < len(lines) {
		lines = lines[scroll:]
	}

	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if lipgloss.Width(line)+1+lipgloss.Width(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
