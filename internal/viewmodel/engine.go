package viewmodel

import (
	"github.com/mushroomsink/mushrooms/internal/catalog"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Engine holds the locale used for text ordering. The zero value collates
// with the root locale.
type Engine struct {
	tag language.Tag
}

// New returns an engine that collates text for the given language.
func New(tag language.Tag) *Engine {
	return &Engine{tag: tag}
}

var defaultEngine = New(language.English)

// compare returns a fresh comparison func. Collators keep scratch buffers,
// so one is built per sort rather than shared.
func (e *Engine) compare() func(a, b string) int {
	c := collate.New(e.tag)
	return c.CompareString
}

// SortCompanies orders companies with English collation.
func SortCompanies(companies []catalog.Company, key CompanySort) []catalog.Company {
	return defaultEngine.SortCompanies(companies, key)
}

// SortArticles orders articles with English collation.
func SortArticles(articles []catalog.Article, key ArticleSort) []catalog.Article {
	return defaultEngine.SortArticles(articles, key)
}

// CompanyView runs the company pipeline with English collation.
func CompanyView(companies []catalog.Company, q CompanyQuery) CompanyState {
	return defaultEngine.CompanyView(companies, q)
}

// ArticleView runs the research pipeline with English collation.
func ArticleView(articles []catalog.Article, q ArticleQuery) ArticleState {
	return defaultEngine.ArticleView(articles, q)
}
