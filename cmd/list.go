package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mushroomsink/mushrooms/internal/classify"
	"github.com/mushroomsink/mushrooms/internal/viewmodel"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/message"
)

var (
	flagSearch   string
	flagCategory string
	flagSort     string
	flagJSON     bool
)

var listCmd = &cobra.Command{
	Use:   "list companies|research",
	Short: "Print the filtered and sorted list",
	Long: `Print companies or research articles without the interactive UI.

Research categories accept the short aliases bio, food, health, agri,
environment and myco.`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"companies", "research"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, ds, err := loadDataset()
		if err != nil {
			return err
		}
		engine := viewmodel.New(cfg.Language())
		p := message.NewPrinter(cfg.Language())
		out := cmd.OutOrStdout()

		if args[0] == "companies" {
			q := viewmodel.DefaultCompanyQuery()
			q.Sort = cfg.CompanySort()
			q.Search = flagSearch
			if flagCategory != "" {
				q.Industry = flagCategory
			}
			if flagSort != "" {
				q.Sort = viewmodel.ParseCompanySort(flagSort)
			}
			log().Debug("listing companies", zap.Any("query", q))
			v := engine.CompanyView(ds.Companies, q)
			if flagJSON {
				return writeJSON(out, v.Companies)
			}
			return writeCompanies(out, p, v)
		}

		q := viewmodel.DefaultArticleQuery()
		q.Sort = cfg.ArticleSort()
		q.Search = flagSearch
		if flagCategory != "" {
			q.Category = resolveCategory(flagCategory)
		}
		if flagSort != "" {
			q.Sort = viewmodel.ParseArticleSort(flagSort)
		}
		log().Debug("listing articles", zap.Any("query", q))
		v := engine.ArticleView(ds.Articles, q)
		if flagJSON {
			return writeJSON(out, v.Articles)
		}
		return writeArticles(out, p, v)
	},
}

func init() {
	listCmd.Flags().StringVarP(&flagSearch, "search", "s", "", "case-insensitive search term")
	listCmd.Flags().StringVarP(&flagCategory, "category", "c", "", "industry or research category (default all)")
	listCmd.Flags().StringVar(&flagSort, "sort", "", "sort key (companies: name, founded, innovation; research: year, title, category, journal)")
	listCmd.Flags().BoolVar(&flagJSON, "json", false, "print the result as JSON")
}

// resolveCategory expands a classifier alias; other values are used as
// given since categories are an open set.
func resolveCategory(s string) string {
	if cat, err := classify.ResolveAlias(s); err == nil {
		return string(cat)
	}
	return s
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeCompanies(w io.Writer, p *message.Printer, v viewmodel.CompanyState) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tINDUSTRY\tCOUNTRY\tFOUNDED\tINNOVATION")
	for _, c := range v.Companies {
		founded := "-"
		if c.Founded > 0 {
			founded = fmt.Sprint(c.Founded)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", c.Name, c.Industry, c.Country, founded, c.Innovation)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(v.Companies) == 0 {
		fmt.Fprintln(w, "No companies found.")
	}
	_, err := p.Fprintf(w, "\nShowing %d of %d companies\n", len(v.Companies), v.Total)
	return err
}

func writeArticles(w io.Writer, p *message.Printer, v viewmodel.ArticleState) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "YEAR\tCATEGORY\tTITLE\tJOURNAL")
	for _, a := range v.Articles {
		year := "-"
		if a.Year > 0 {
			year = fmt.Sprint(a.Year)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", year, a.Category, truncate(a.Title, 60), a.Journal)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(v.Articles) == 0 {
		fmt.Fprintln(w, "No articles found.")
	}
	_, err := p.Fprintf(w, "\nShowing %d of %d articles\n", len(v.Articles), v.Total)
	return err
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimSpace(string(runes[:n-3])) + "..."
}
