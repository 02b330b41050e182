package viewmodel

import (
	"cmp"
	"slices"
	"strings"

	"github.com/mushroomsink/mushrooms/internal/catalog"
)

// Stats aggregates the whole company dataset for the header cards.
type Stats struct {
	Companies  int
	Industries int
	Countries  int
	Employees  int
}

// CompanyState is the derived view of the company page.
type CompanyState struct {
	Query      CompanyQuery
	Companies  []catalog.Company
	Stats      Stats
	Industries Counts
	Total      int
}

// FilterCompanies returns the companies matching the search term and the
// industry filter, in input order.
func FilterCompanies(companies []catalog.Company, q CompanyQuery) []catalog.Company {
	term := strings.ToLower(q.Search)
	out := make([]catalog.Company, 0, len(companies))
	for _, c := range companies {
		if !filterAll(q.Industry) && c.Industry != q.Industry {
			continue
		}
		if term != "" && !companyMatches(c, term) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func companyMatches(c catalog.Company, term string) bool {
	for _, field := range []string{
		c.Name, c.Products, c.Description, c.Industry,
		c.Country, c.Technologies, c.BusinessModel, c.Target,
	} {
		if containsFold(field, term) {
			return true
		}
	}
	return false
}

// SortCompanies returns a sorted copy. Ties keep their input order and an
// unknown key leaves the order untouched.
func (e *Engine) SortCompanies(companies []catalog.Company, key CompanySort) []catalog.Company {
	out := slices.Clone(companies)
	if out == nil {
		out = []catalog.Company{}
	}
	switch key {
	case SortName:
		compare := e.compare()
		slices.SortStableFunc(out, func(a, b catalog.Company) int {
			return compare(a.Name, b.Name)
		})
	case SortFounded:
		slices.SortStableFunc(out, func(a, b catalog.Company) int {
			return cmp.Compare(b.Founded, a.Founded)
		})
	case SortInnovation:
		slices.SortStableFunc(out, func(a, b catalog.Company) int {
			return cmp.Compare(b.Innovation.Severity(), a.Innovation.Severity())
		})
	}
	return out
}

// employeeEstimate turns a headcount bucket into a rough number. Buckets
// overlap as substrings, so the order of the checks matters.
func employeeEstimate(bucket string) int {
	switch {
	case strings.Contains(bucket, "500+"):
		return 750
	case strings.Contains(bucket, "100-500"):
		return 300
	case strings.Contains(bucket, "50-100"):
		return 75
	case strings.Contains(bucket, "10-50"):
		return 30
	default:
		return 5
	}
}

// ComputeStats counts companies, distinct industries and countries, and
// sums the employee estimates.
func ComputeStats(companies []catalog.Company) Stats {
	industries := map[string]bool{}
	countries := map[string]bool{}
	s := Stats{Companies: len(companies)}
	for _, c := range companies {
		industries[c.Industry] = true
		countries[c.Country] = true
		s.Employees += employeeEstimate(c.Employees)
	}
	s.Industries = len(industries)
	s.Countries = len(countries)
	return s
}

// IndustryCounts counts companies per industry in one pass.
func IndustryCounts(companies []catalog.Company) Counts {
	counts := newCounts()
	for _, c := range companies {
		counts.add(c.Industry)
	}
	return counts
}

// Industries lists the distinct industries in first-seen order.
func Industries(companies []catalog.Company) []string {
	return IndustryCounts(companies).Keys
}

// CompanyView runs filter, sort, stats and counts for one query.
func (e *Engine) CompanyView(companies []catalog.Company, q CompanyQuery) CompanyState {
	return CompanyState{
		Query:      q,
		Companies:  e.SortCompanies(FilterCompanies(companies, q), q.Sort),
		Stats:      ComputeStats(companies),
		Industries: IndustryCounts(companies),
		Total:      len(companies),
	}
}
