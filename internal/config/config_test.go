package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mushroomsink/mushrooms/internal/catalog"
	"github.com/mushroomsink/mushrooms/internal/store"
	"github.com/mushroomsink/mushrooms/internal/viewmodel"
	"golang.org/x/text/language"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	if len(cfg.Reports) != 4 {
		t.Errorf("expected 4 default reports, got %d", len(cfg.Reports))
	}
	if err := validate(cfg); err != nil {
		t.Errorf("embedded defaults should validate: %v", err)
	}
	if cfg.Page() != PageCompanies {
		t.Errorf("expected companies start page, got %q", cfg.Page())
	}
}

func TestLanguage(t *testing.T) {
	tests := []struct {
		locale string
		want   language.Tag
	}{
		{"", language.English},
		{"fr", language.French},
		{"not a tag!", language.English},
	}
	for _, tt := range tests {
		cfg := &Config{Locale: tt.locale}
		if got := cfg.Language(); got != tt.want {
			t.Errorf("Language(%q) = %v, want %v", tt.locale, got, tt.want)
		}
	}
}

func TestSortDefaults(t *testing.T) {
	cfg := &Config{}
	if got := cfg.CompanySort(); got != viewmodel.SortName {
		t.Errorf("CompanySort() = %q, want name", got)
	}
	if got := cfg.ArticleSort(); got != viewmodel.SortYear {
		t.Errorf("ArticleSort() = %q, want year", got)
	}

	cfg.DefaultSort = DefaultSort{Companies: "Innovation", Articles: "journal"}
	if got := cfg.CompanySort(); got != viewmodel.SortInnovation {
		t.Errorf("CompanySort() = %q, want innovation", got)
	}
	if got := cfg.ArticleSort(); got != viewmodel.SortJournal {
		t.Errorf("ArticleSort() = %q, want journal", got)
	}
}

func TestLoadWritesDefaultsOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Reports) == 0 {
		t.Error("expected default reports")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected default config to be written: %v", err)
	}
}

func TestLoadMergesReportsAndResolvesPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "companies: data/companies.json\nlocale: de\nstart_page: Research\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want := filepath.Join(dir, "data", "companies.json"); cfg.Companies != want {
		t.Errorf("Companies = %q, want %q", cfg.Companies, want)
	}
	if len(cfg.Reports) != 4 {
		t.Errorf("expected default reports to fill in, got %d", len(cfg.Reports))
	}
	if cfg.Page() != PageResearch {
		t.Errorf("Page() = %q, want research", cfg.Page())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"empty", Config{}, ""},
		{"bad locale", Config{Locale: "!!"}, "locale"},
		{"bad page", Config{StartPage: "home"}, "start_page"},
		{"missing title", Config{Reports: []Report{{URL: "https://x"}}}, "title is required"},
		{"missing url", Config{Reports: []Report{{Title: "R"}}}, "url is required"},
		{"file url", Config{Reports: []Report{{Title: "R", URL: "file:///etc/passwd"}}}, "scheme"},
		{"ok", Config{Locale: "en-GB", StartPage: "reports", Reports: []Report{{Title: "R", URL: "https://example.com/r.pdf"}}}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestDatasetBundled(t *testing.T) {
	ds, err := (&Config{}).Dataset(nil)
	if err != nil {
		t.Fatalf("Dataset: %v", err)
	}
	if len(ds.Companies) == 0 || len(ds.Articles) == 0 {
		t.Errorf("expected bundled data, got %d companies, %d articles", len(ds.Companies), len(ds.Articles))
	}
}

func TestDatasetFromFeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.rss")
	rss := `<?xml version="1.0"?>
<rss version="2.0"><channel><title>Mycologia</title>
<item><title>Spore dispersal in Agaricus</title><link>https://example.org/a</link>
<description>Fungal spore release.</description></item>
</channel></rss>`
	if err := os.WriteFile(path, []byte(rss), 0o644); err != nil {
		t.Fatal(err)
	}

	ds, err := (&Config{Articles: path}).Dataset(nil)
	if err != nil {
		t.Fatalf("Dataset: %v", err)
	}
	if len(ds.Articles) != 1 {
		t.Fatalf("expected 1 article, got %d", len(ds.Articles))
	}
	if got := ds.Articles[0]; got.Journal != "Mycologia" || got.Category != "Mycology" {
		t.Errorf("unexpected article: %+v", got)
	}
}

func TestDatasetFromDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	st, err := store.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	want := &catalog.Dataset{
		Companies: []catalog.Company{{ID: 1, Name: "Biohm", Industry: "Construction", Innovation: catalog.InnovationHigh}},
		Articles:  []catalog.Article{{ID: "a", Title: "Mycelium insulation", Category: "Biomaterials"}},
	}
	if err := st.Import(want); err != nil {
		t.Fatal(err)
	}
	st.Close()

	ds, err := (&Config{Database: path}).Dataset(nil)
	if err != nil {
		t.Fatalf("Dataset: %v", err)
	}
	if len(ds.Companies) != 1 || ds.Companies[0].Name != "Biohm" {
		t.Errorf("unexpected companies: %+v", ds.Companies)
	}

	articles, err := loadArticles(path, nil)
	if err != nil {
		t.Fatalf("loadArticles: %v", err)
	}
	if len(articles) != 1 {
		t.Errorf("expected 1 article from .db, got %d", len(articles))
	}
}

func TestDatasetMissingDatabase(t *testing.T) {
	_, err := (&Config{Database: filepath.Join(t.TempDir(), "nope.db")}).Dataset(nil)
	if err == nil {
		t.Error("expected error for missing database")
	}
}
