package catalog

import "strings"

// Innovation is the innovation level assigned to a company.
type Innovation string

const (
	InnovationLow    Innovation = "Low"
	InnovationMedium Innovation = "Medium"
	InnovationHigh   Innovation = "High"
)

// Severity maps a level to its rank: High=3, Medium=2, Low=1.
// Unknown levels rank 0.
func (i Innovation) Severity() int {
	switch i {
	case InnovationHigh:
		return 3
	case InnovationMedium:
		return 2
	case InnovationLow:
		return 1
	default:
		return 0
	}
}

func (i Innovation) Valid() bool {
	return i.Severity() > 0
}

// PlaceholderCategory marks a malformed research row (usually a stray
// header line from the source sheet). Such rows never appear in any view.
const PlaceholderCategory = "Category"

type Company struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	Industry      string     `json:"industry"`
	Country       string     `json:"country"`
	Founded       int        `json:"founded"`
	Employees     string     `json:"employees"`
	Products      string     `json:"products"`
	Description   string     `json:"description"`
	Technologies  string     `json:"technologies"`
	BusinessModel string     `json:"businessModel"`
	Target        string     `json:"target"`
	Stage         string     `json:"stage,omitempty"`
	Innovation    Innovation `json:"innovation"`
	Website       string     `json:"website,omitempty"`
	Affiliate     bool       `json:"affiliate,omitempty"`
	AffiliateURL  string     `json:"affiliateUrl,omitempty"`
	Discount      string     `json:"discount,omitempty"`
	DiscountCode  string     `json:"discountCode,omitempty"`
}

// WebsiteURL returns the link to the company site. Websites are stored
// without a scheme, so https is assumed. Empty when the company has none.
func (c Company) WebsiteURL() string {
	w := strings.TrimSpace(c.Website)
	if w == "" {
		return ""
	}
	if strings.HasPrefix(w, "http://") || strings.HasPrefix(w, "https://") {
		return w
	}
	return "https://" + w
}

// HasDiscount reports whether an affiliate discount should be shown.
func (c Company) HasDiscount() bool {
	return c.Affiliate && c.Discount != ""
}

type Article struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Authors     string   `json:"authors"`
	Journal     string   `json:"journal"`
	Year        int      `json:"year"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory,omitempty"`
	Type        string   `json:"type,omitempty"`
	Summary     string   `json:"summary"`
	Keywords    []string `json:"keywords"`
	URL         string   `json:"url,omitempty"`
}

// IsPlaceholder reports whether the row is the sentinel placeholder.
func (a Article) IsPlaceholder() bool {
	return a.Category == PlaceholderCategory
}

// Dataset holds both record sets. It is loaded once and never mutated.
type Dataset struct {
	Companies []Company
	Articles  []Article
}
