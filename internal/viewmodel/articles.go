package viewmodel

import (
	"cmp"
	"slices"
	"strings"

	"github.com/mushroomsink/mushrooms/internal/catalog"
)

// ArticleState is the derived view of the research page. Placeholder rows
// are absent from every field, Total included.
type ArticleState struct {
	Query      ArticleQuery
	Articles   []catalog.Article
	Categories Counts
	Total      int
}

// FilterArticles returns the articles matching the search term and the
// category filter. Placeholder rows are always dropped, whatever the query.
func FilterArticles(articles []catalog.Article, q ArticleQuery) []catalog.Article {
	term := strings.ToLower(q.Search)
	out := make([]catalog.Article, 0, len(articles))
	for _, a := range articles {
		if a.IsPlaceholder() {
			continue
		}
		if !filterAll(q.Category) && a.Category != q.Category {
			continue
		}
		if term != "" && !articleMatches(a, term) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func articleMatches(a catalog.Article, term string) bool {
	for _, field := range []string{a.Title, a.Authors, a.Journal, a.Summary} {
		if containsFold(field, term) {
			return true
		}
	}
	for _, kw := range a.Keywords {
		if containsFold(kw, term) {
			return true
		}
	}
	return false
}

// SortArticles returns a sorted copy. Ties keep their input order and an
// unknown key leaves the order untouched.
func (e *Engine) SortArticles(articles []catalog.Article, key ArticleSort) []catalog.Article {
	out := slices.Clone(articles)
	if out == nil {
		out = []catalog.Article{}
	}
	var field func(catalog.Article) string
	switch key {
	case SortYear:
		slices.SortStableFunc(out, func(a, b catalog.Article) int {
			return cmp.Compare(b.Year, a.Year)
		})
		return out
	case SortTitle:
		field = func(a catalog.Article) string { return a.Title }
	case SortCategory:
		field = func(a catalog.Article) string { return a.Category }
	case SortJournal:
		field = func(a catalog.Article) string { return a.Journal }
	default:
		return out
	}
	compare := e.compare()
	slices.SortStableFunc(out, func(a, b catalog.Article) int {
		return compare(field(a), field(b))
	})
	return out
}

// ArticleCategoryCounts counts articles per category, skipping placeholders.
func ArticleCategoryCounts(articles []catalog.Article) Counts {
	counts := newCounts()
	for _, a := range articles {
		if a.IsPlaceholder() {
			continue
		}
		counts.add(a.Category)
	}
	return counts
}

// ArticleCategories lists the distinct categories in first-seen order.
func ArticleCategories(articles []catalog.Article) []string {
	return ArticleCategoryCounts(articles).Keys
}

// CountArticles is the number of real (non-placeholder) articles.
func CountArticles(articles []catalog.Article) int {
	n := 0
	for _, a := range articles {
		if !a.IsPlaceholder() {
			n++
		}
	}
	return n
}

// ArticleView runs filter, sort and counts for one query.
func (e *Engine) ArticleView(articles []catalog.Article, q ArticleQuery) ArticleState {
	return ArticleState{
		Query:      q,
		Articles:   e.SortArticles(FilterArticles(articles, q), q.Sort),
		Categories: ArticleCategoryCounts(articles),
		Total:      CountArticles(articles),
	}
}
