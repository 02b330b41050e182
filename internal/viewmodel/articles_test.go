package viewmodel

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mushroomsink/mushrooms/internal/catalog"
)

func sampleArticles() []catalog.Article {
	return []catalog.Article{
		{ID: "h", Title: "Title", Authors: "Authors", Journal: "Journal", Category: catalog.PlaceholderCategory, Summary: "Summary", Keywords: []string{"Keywords"}},
		{ID: "a", Title: "The Future of Mycelium Materials", Authors: "Jones M.", Journal: "Materials Today", Year: 2024, Category: "Biomaterials", Summary: "Fashion and packaging", Keywords: []string{"composites", "sustainability"}},
		{ID: "b", Title: "Alternative Protein Market Analysis", Authors: "Souza P.", Journal: "Trends in Food Science", Year: 2023, Category: "Food & Beverage", Summary: "Growth projections", Keywords: []string{"mycoprotein"}},
		{ID: "c", Title: "Functional Mushrooms in Healthcare", Authors: "Wasser S.", Journal: "Medicinal Mushrooms", Year: 2022, Category: "Health & Wellness", Summary: "Therapeutic potential", Keywords: []string{"beta-glucans", "clinical research"}},
		{ID: "d", Title: "Mycelium Insulation Panels", Authors: "Jones M.", Journal: "Construction Materials", Year: 2023, Category: "Biomaterials", Summary: "Thermal conductivity", Keywords: []string{"insulation"}},
	}
}

func articleIDs(articles []catalog.Article) []string {
	out := make([]string, len(articles))
	for i, a := range articles {
		out[i] = a.ID
	}
	return out
}

func TestFilterArticlesSearch(t *testing.T) {
	tests := []struct {
		search string
		want   []string
	}{
		{"", []string{"a", "b", "c", "d"}},
		{"mycelium", []string{"a", "d"}},           // title
		{"jones", []string{"a", "d"}},              // authors
		{"food science", []string{"b"}},            // journal
		{"THERAPEUTIC", []string{"c"}},             // summary
		{"glucan", []string{"c"}},                  // keyword substring
		{"clinical", []string{"c"}},                // multi-word keyword
		{"title", []string{}},                      // placeholder only
		{"keywords", []string{}},                   // placeholder keyword
		{"quantum", []string{}},
	}
	for _, tt := range tests {
		got := FilterArticles(sampleArticles(), ArticleQuery{Search: tt.search, Category: AllCategories})
		if diff := cmp.Diff(tt.want, articleIDs(got)); diff != "" {
			t.Errorf("search %q (-want +got):\n%s", tt.search, diff)
		}
	}
}

func TestFilterArticlesCategory(t *testing.T) {
	got := FilterArticles(sampleArticles(), ArticleQuery{Category: "Biomaterials"})
	if diff := cmp.Diff([]string{"a", "d"}, articleIDs(got)); diff != "" {
		t.Errorf("unexpected result (-want +got):\n%s", diff)
	}
}

func TestPlaceholderNeverAppears(t *testing.T) {
	articles := sampleArticles()
	queries := []ArticleQuery{
		{Category: AllCategories},
		{Category: catalog.PlaceholderCategory},
		{Category: catalog.PlaceholderCategory, Search: "title"},
		{Search: ""},
	}
	for _, q := range queries {
		for _, a := range FilterArticles(articles, q) {
			if a.IsPlaceholder() {
				t.Errorf("query %+v returned placeholder row %q", q, a.ID)
			}
		}
	}

	counts := ArticleCategoryCounts(articles)
	if counts.Get(catalog.PlaceholderCategory) != 0 {
		t.Error("placeholder category counted")
	}
	if slices.Contains(ArticleCategories(articles), catalog.PlaceholderCategory) {
		t.Error("placeholder category listed")
	}
	if got := CountArticles(articles); got != 4 {
		t.Errorf("expected 4 articles, got %d", got)
	}

	view := ArticleView(articles, ArticleQuery{Category: catalog.PlaceholderCategory, Sort: SortYear})
	if len(view.Articles) != 0 || view.Total != 4 {
		t.Errorf("unexpected view for placeholder filter: %d articles, total %d", len(view.Articles), view.Total)
	}
}

func TestSortArticles(t *testing.T) {
	articles := FilterArticles(sampleArticles(), DefaultArticleQuery())
	tests := []struct {
		key  ArticleSort
		want []string
	}{
		{SortYear, []string{"a", "b", "d", "c"}},
		{SortTitle, []string{"b", "c", "d", "a"}},
		{SortCategory, []string{"a", "d", "b", "c"}},
		{SortJournal, []string{"d", "a", "c", "b"}},
		{ArticleSort("citations"), []string{"a", "b", "c", "d"}},
	}
	for _, tt := range tests {
		got := SortArticles(articles, tt.key)
		if diff := cmp.Diff(tt.want, articleIDs(got)); diff != "" {
			t.Errorf("sort %q (-want +got):\n%s", tt.key, diff)
		}
	}
}

func TestArticleCategoryCountsOrder(t *testing.T) {
	got := ArticleCategoryCounts(sampleArticles())
	want := Counts{
		Keys:   []string{"Biomaterials", "Food & Beverage", "Health & Wellness"},
		Values: map[string]int{"Biomaterials": 2, "Food & Beverage": 1, "Health & Wellness": 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected counts (-want +got):\n%s", diff)
	}
}

func TestArticleViewEmptyDataset(t *testing.T) {
	got := ArticleView([]catalog.Article{}, DefaultArticleQuery())
	if got.Articles == nil || len(got.Articles) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", got.Articles)
	}
	if got.Categories.Len() != 0 || got.Total != 0 {
		t.Errorf("expected empty counts, got %+v total %d", got.Categories, got.Total)
	}
}

func TestArticleViewIsIdempotent(t *testing.T) {
	articles := sampleArticles()
	q := ArticleQuery{Search: "m", Category: AllCategories, Sort: SortTitle}
	first := ArticleView(articles, q)
	second := ArticleView(articles, q)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("pipeline not idempotent (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(sampleArticles(), articles); diff != "" {
		t.Errorf("dataset mutated (-before +after):\n%s", diff)
	}
}

func TestParseArticleSort(t *testing.T) {
	if got := ParseArticleSort("Journal"); got != SortJournal {
		t.Errorf("expected journal, got %q", got)
	}
	if SortYear.Label() != "Newest First" {
		t.Errorf("unexpected label %q", SortYear.Label())
	}
}
