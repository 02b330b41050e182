// Package viewmodel derives display state from the immutable catalog
// datasets. Every function here is pure: inputs are never modified and each
// call returns fresh slices and maps.
package viewmodel

import "strings"

// AllCategories disables the category filter.
const AllCategories = "all"

// CompanySort selects the ordering of the company list.
type CompanySort string

const (
	SortName       CompanySort = "name"
	SortFounded    CompanySort = "founded"
	SortInnovation CompanySort = "innovation"
)

// CompanySorts returns the supported company orderings in menu order.
func CompanySorts() []CompanySort {
	return []CompanySort{SortName, SortFounded, SortInnovation}
}

func (s CompanySort) Label() string {
	switch s {
	case SortName:
		return "Name A-Z"
	case SortFounded:
		return "Newest First"
	case SortInnovation:
		return "Innovation Level"
	default:
		return string(s)
	}
}

// ArticleSort selects the ordering of the research list.
type ArticleSort string

const (
	SortYear     ArticleSort = "year"
	SortTitle    ArticleSort = "title"
	SortCategory ArticleSort = "category"
	SortJournal  ArticleSort = "journal"
)

// ArticleSorts returns the supported article orderings in menu order.
func ArticleSorts() []ArticleSort {
	return []ArticleSort{SortYear, SortTitle, SortCategory, SortJournal}
}

func (s ArticleSort) Label() string {
	switch s {
	case SortYear:
		return "Newest First"
	case SortTitle:
		return "Title A-Z"
	case SortCategory:
		return "Category"
	case SortJournal:
		return "Journal"
	default:
		return string(s)
	}
}

// ParseCompanySort normalizes user input. Unknown keys are kept as-is and
// sort as a passthrough.
func ParseCompanySort(s string) CompanySort {
	return CompanySort(strings.ToLower(strings.TrimSpace(s)))
}

// ParseArticleSort normalizes user input. Unknown keys are kept as-is and
// sort as a passthrough.
func ParseArticleSort(s string) ArticleSort {
	return ArticleSort(strings.ToLower(strings.TrimSpace(s)))
}

// CompanyQuery is the user-controlled state of the company page.
type CompanyQuery struct {
	Search   string
	Industry string
	Sort     CompanySort
}

// DefaultCompanyQuery matches everything, ordered by name.
func DefaultCompanyQuery() CompanyQuery {
	return CompanyQuery{Industry: AllCategories, Sort: SortName}
}

// ArticleQuery is the user-controlled state of the research page.
type ArticleQuery struct {
	Search   string
	Category string
	Sort     ArticleSort
}

// DefaultArticleQuery matches everything, newest first.
func DefaultArticleQuery() ArticleQuery {
	return ArticleQuery{Category: AllCategories, Sort: SortYear}
}

// filterAll reports whether a category selection disables filtering. An
// empty selection behaves like "all".
func filterAll(category string) bool {
	return category == "" || category == AllCategories
}

func containsFold(field, term string) bool {
	return strings.Contains(strings.ToLower(field), term)
}
