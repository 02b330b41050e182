package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mushroomsink/mushrooms/internal/catalog"
	"github.com/mushroomsink/mushrooms/internal/viewmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestValidatePage(t *testing.T) {
	tests := []struct {
		input string
		err   bool
	}{
		{"", false},
		{"companies", false},
		{"Research", false},
		{"reports", false},
		{"home", true},
	}
	for _, tt := range tests {
		err := validatePage(tt.input)
		if tt.err && err == nil {
			t.Errorf("validatePage(%q): expected error", tt.input)
		}
		if !tt.err && err != nil {
			t.Errorf("validatePage(%q): unexpected error: %v", tt.input, err)
		}
	}
}

func TestResolveCategory(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"bio", "Biomaterials"},
		{"food", "Food & Beverage"},
		{"Cultivation Science", "Cultivation Science"},
	}
	for _, tt := range tests {
		if got := resolveCategory(tt.input); got != tt.want {
			t.Errorf("resolveCategory(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate short = %q", got)
	}
	if got := truncate("a long research title", 10); got != "a long..." {
		t.Errorf("truncate long = %q", got)
	}
}

func TestWriteCompanies(t *testing.T) {
	companies := []catalog.Company{
		{ID: 1, Name: "Quorn", Industry: "Food & Beverage", Country: "UK", Founded: 1985, Innovation: catalog.InnovationMedium},
		{ID: 2, Name: "Biohm", Industry: "Construction", Country: "UK", Innovation: catalog.InnovationHigh},
	}
	q := viewmodel.DefaultCompanyQuery()
	q.Industry = "Construction"
	v := viewmodel.CompanyView(companies, q)

	var buf bytes.Buffer
	require.NoError(t, writeCompanies(&buf, message.NewPrinter(language.English), v))
	out := buf.String()
	assert.Contains(t, out, "Biohm")
	assert.NotContains(t, out, "Quorn")
	assert.Contains(t, out, "Showing 1 of 2 companies")
}

func TestWriteArticlesEmpty(t *testing.T) {
	v := viewmodel.ArticleView(nil, viewmodel.DefaultArticleQuery())
	var buf bytes.Buffer
	require.NoError(t, writeArticles(&buf, message.NewPrinter(language.English), v))
	assert.Contains(t, buf.String(), "No articles found.")
	assert.Contains(t, buf.String(), "Showing 0 of 0 articles")
}

func TestWriteStats(t *testing.T) {
	ds := &catalog.Dataset{
		Companies: []catalog.Company{
			{ID: 1, Industry: "A", Country: "X", Employees: "500+ employees"},
			{ID: 2, Industry: "B", Country: "X", Employees: "100-500"},
			{ID: 3, Industry: "A", Country: "Y", Employees: "unknown"},
			{ID: 4, Industry: "A", Country: "Y", Employees: "10-50 range"},
		},
		Articles: []catalog.Article{
			{ID: "h", Category: catalog.PlaceholderCategory},
			{ID: "a", Category: "Biomaterials"},
		},
	}
	var buf bytes.Buffer
	writeStats(&buf, message.NewPrinter(language.English), ds)
	out := buf.String()
	assert.Contains(t, out, "Total employees:  1,085+")
	assert.Contains(t, out, "Industries:       2")
	assert.Contains(t, out, "Research articles: 1")
	assert.NotContains(t, out, catalog.PlaceholderCategory)
}

// run executes the root command with args and returns its output.
func run(t *testing.T, args ...string) string {
	t.Helper()
	t.Cleanup(func() {
		flagConfig, flagVerbose, flagPage = "", false, ""
		flagSearch, flagCategory, flagSort, flagJSON = "", "", "", false
	})
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestListCommandJSON(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	out := run(t, "list", "companies", "--search", "QUORN", "--json", "--config", cfgPath)

	var companies []catalog.Company
	require.NoError(t, json.Unmarshal([]byte(out), &companies))
	require.Len(t, companies, 1)
	assert.Equal(t, "Quorn", companies[0].Name)
}

func TestListResearchAlias(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	out := run(t, "list", "research", "--category", "bio", "--json", "--config", cfgPath)

	var articles []catalog.Article
	require.NoError(t, json.Unmarshal([]byte(out), &articles))
	require.NotEmpty(t, articles)
	for _, a := range articles {
		assert.Equal(t, "Biomaterials", a.Category)
	}
}

func TestImportThenStats(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "catalog.db")

	out := run(t, "import", dbPath, "--config", filepath.Join(dir, "first.yaml"))
	assert.True(t, strings.HasPrefix(out, "Imported "), out)

	cfgPath := filepath.Join(dir, "db.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("database: catalog.db\n"), 0o644))

	out = run(t, "stats", "--config", cfgPath)
	assert.Contains(t, out, "Total employees:")
	assert.Contains(t, out, "Database: "+dbPath)
	assert.Contains(t, out, "Imported:")
}

func TestVersion(t *testing.T) {
	SetVersionInfo("1.2.3", "abc", "today")
	t.Cleanup(func() { SetVersionInfo("dev", "none", "unknown") })
	out := run(t, "version")
	assert.Equal(t, "mushrooms 1.2.3 (commit: abc, built: today)\n", out)
}
