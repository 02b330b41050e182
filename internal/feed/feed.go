// Package feed turns a saved journal Atom/RSS export into research
// articles. It only parses local files.
package feed

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"
	"github.com/mushroomsink/mushrooms/internal/catalog"
	"github.com/mushroomsink/mushrooms/internal/classify"
	"go.uber.org/zap"
)

// articleNamespace scopes the name-based IDs derived from item links.
var articleNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://mushrooms.ink/research"))

type Parser struct {
	parser *gofeed.Parser
	log    *zap.Logger
}

func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{parser: gofeed.NewParser(), log: log}
}

// ParseFile reads articles from an Atom or RSS file on disk.
func (p *Parser) ParseFile(path string) ([]catalog.Article, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening feed: %w", err)
	}
	defer f.Close()
	return p.Parse(f)
}

// Parse converts feed items to articles. Items without a link or title are
// skipped with a warning; duplicate links keep the first item.
func (p *Parser) Parse(r io.Reader) ([]catalog.Article, error) {
	feed, err := p.parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}

	journal := strings.TrimSpace(feed.Title)
	seen := make(map[string]bool, len(feed.Items))
	articles := make([]catalog.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		title := strings.TrimSpace(item.Title)
		if item.Link == "" || title == "" {
			p.log.Warn("skipping feed item without link or title", zap.String("title", title))
			continue
		}
		id := articleID(item.Link)
		if seen[id] {
			p.log.Debug("skipping duplicate feed item", zap.String("link", item.Link))
			continue
		}
		seen[id] = true

		summary := item.Description
		if summary == "" {
			summary = item.Content
		}
		summary = truncate(stripHTML(summary), 400)

		year := 0
		if item.PublishedParsed != nil {
			year = item.PublishedParsed.Year()
		} else if item.UpdatedParsed != nil {
			year = item.UpdatedParsed.Year()
		}

		category := ""
		var keywords []string
		for _, c := range item.Categories {
			if c = strings.TrimSpace(c); c != "" {
				keywords = append(keywords, c)
			}
		}
		if len(keywords) > 0 {
			category = keywords[0]
			keywords = keywords[1:]
		}
		if category == "" {
			category = string(classify.Classify(title, summary))
		}

		articles = append(articles, catalog.Article{
			ID:       id,
			Title:    title,
			Authors:  authors(item),
			Journal:  journal,
			Year:     year,
			Category: category,
			Type:     "Article",
			Summary:  summary,
			Keywords: keywords,
			URL:      item.Link,
		})
	}
	return articles, nil
}

func articleID(link string) string {
	return uuid.NewSHA1(articleNamespace, []byte(link)).String()
}

func authors(item *gofeed.Item) string {
	var names []string
	for _, a := range item.Authors {
		if a != nil && a.Name != "" {
			names = append(names, a.Name)
		}
	}
	return strings.Join(names, ", ")
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func stripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
