package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/mushroomsink/mushrooms/internal/viewmodel"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// Pages the TUI can start on.
const (
	PageCompanies = "companies"
	PageResearch  = "research"
	PageReports   = "reports"
)

// Pages returns the page names in navigation order.
func Pages() []string {
	return []string{PageCompanies, PageResearch, PageReports}
}

type Report struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Bullets     []string `yaml:"bullets,omitempty"`
	URL         string   `yaml:"url"`
}

type DefaultSort struct {
	Companies string `yaml:"companies,omitempty"`
	Articles  string `yaml:"articles,omitempty"`
}

type Config struct {
	Companies   string      `yaml:"companies,omitempty"`
	Articles    string      `yaml:"articles,omitempty"`
	Database    string      `yaml:"database,omitempty"`
	Locale      string      `yaml:"locale,omitempty"`
	DefaultSort DefaultSort `yaml:"default_sort"`
	StartPage   string      `yaml:"start_page,omitempty"`
	Reports     []Report    `yaml:"reports"`
}

// Language returns the configured locale, defaulting to English.
func (c *Config) Language() language.Tag {
	if c.Locale == "" {
		return language.English
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

// CompanySort returns the configured company order. Unknown keys pass
// through and leave the list in dataset order.
func (c *Config) CompanySort() viewmodel.CompanySort {
	if c.DefaultSort.Companies == "" {
		return viewmodel.SortName
	}
	return viewmodel.ParseCompanySort(c.DefaultSort.Companies)
}

func (c *Config) ArticleSort() viewmodel.ArticleSort {
	if c.DefaultSort.Articles == "" {
		return viewmodel.SortYear
	}
	return viewmodel.ParseArticleSort(c.DefaultSort.Articles)
}

// Page returns the start page, defaulting to companies.
func (c *Config) Page() string {
	if c.StartPage == "" {
		return PageCompanies
	}
	return strings.ToLower(c.StartPage)
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "mushrooms", "config.yaml")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads the config at path, or the XDG default when path is empty.
// A missing file is created from the embedded defaults. Relative dataset
// paths resolve against the config file's directory.
func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Non-fatal: the embedded defaults still work.
			_ = writeDefaults(path)
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if len(cfg.Reports) == 0 {
		cfg.Reports = defaults.Reports
	}
	cfg.resolvePaths(filepath.Dir(path))

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) resolvePaths(dir string) {
	for _, p := range []*string{&c.Companies, &c.Articles, &c.Database} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	if cfg.Locale != "" {
		if _, err := language.Parse(cfg.Locale); err != nil {
			return fmt.Errorf("locale %q: %w", cfg.Locale, err)
		}
	}
	if cfg.StartPage != "" && !validPage(cfg.Page()) {
		return fmt.Errorf("unknown start_page %q (valid: %s)", cfg.StartPage, strings.Join(Pages(), ", "))
	}
	for i, r := range cfg.Reports {
		if r.Title == "" {
			return fmt.Errorf("report %d: title is required", i)
		}
		if r.URL == "" {
			return fmt.Errorf("report %q: url is required", r.Title)
		}
		u, err := url.Parse(r.URL)
		if err != nil {
			return fmt.Errorf("report %q: invalid url: %w", r.Title, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("report %q: url scheme must be http or https, got %q", r.Title, u.Scheme)
		}
	}
	return nil
}

func validPage(p string) bool {
	for _, page := range Pages() {
		if p == page {
			return true
		}
	}
	return false
}
