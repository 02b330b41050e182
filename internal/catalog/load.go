package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed data/companies.json data/articles.json
var defaultDataFS embed.FS

// DecodeCompanies reads a JSON array of companies and validates it.
func DecodeCompanies(r io.Reader) ([]Company, error) {
	var companies []Company
	if err := json.NewDecoder(r).Decode(&companies); err != nil {
		return nil, fmt.Errorf("parsing companies: %w", err)
	}
	if err := ValidateCompanies(companies); err != nil {
		return nil, err
	}
	return companies, nil
}

// DecodeArticles reads a JSON array of research articles and validates it.
func DecodeArticles(r io.Reader) ([]Article, error) {
	var articles []Article
	if err := json.NewDecoder(r).Decode(&articles); err != nil {
		return nil, fmt.Errorf("parsing articles: %w", err)
	}
	if err := ValidateArticles(articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// LoadCompanies reads companies from a JSON file. An empty path loads the
// bundled dataset.
func LoadCompanies(path string) ([]Company, error) {
	f, err := open(path, "data/companies.json")
	if err != nil {
		return nil, fmt.Errorf("opening companies: %w", err)
	}
	defer f.Close()
	return DecodeCompanies(f)
}

// LoadArticles reads research articles from a JSON file. An empty path
// loads the bundled dataset.
func LoadArticles(path string) ([]Article, error) {
	f, err := open(path, "data/articles.json")
	if err != nil {
		return nil, fmt.Errorf("opening articles: %w", err)
	}
	defer f.Close()
	return DecodeArticles(f)
}

// Default returns the bundled dataset.
func Default() (*Dataset, error) {
	companies, err := LoadCompanies("")
	if err != nil {
		return nil, err
	}
	articles, err := LoadArticles("")
	if err != nil {
		return nil, err
	}
	return &Dataset{Companies: companies, Articles: articles}, nil
}

func open(path, embedded string) (io.ReadCloser, error) {
	if path == "" {
		return defaultDataFS.Open(embedded)
	}
	return os.Open(path)
}

// ValidateCompanies checks the record invariants: unique IDs, non-empty
// industry and a known innovation level.
func ValidateCompanies(companies []Company) error {
	seen := make(map[int]bool, len(companies))
	for i, c := range companies {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		if seen[c.ID] {
			return fmt.Errorf("company %q: duplicate id %d", name, c.ID)
		}
		seen[c.ID] = true
		if strings.TrimSpace(c.Industry) == "" {
			return fmt.Errorf("company %q: industry is required", name)
		}
		if !c.Innovation.Valid() {
			return fmt.Errorf("company %q: unknown innovation level %q (valid: Low, Medium, High)", name, c.Innovation)
		}
	}
	return nil
}

// ValidateArticles checks that article IDs are unique. Placeholder rows are
// accepted here; views drop them.
func ValidateArticles(articles []Article) error {
	seen := make(map[string]bool, len(articles))
	for i, a := range articles {
		if a.ID == "" {
			return fmt.Errorf("article %d (%q): id is required", i, a.Title)
		}
		if seen[a.ID] {
			return fmt.Errorf("article %q: duplicate id %q", a.Title, a.ID)
		}
		seen[a.ID] = true
	}
	return nil
}
