package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mushroomsink/mushrooms/internal/catalog"
	"github.com/mushroomsink/mushrooms/internal/config"
	"github.com/mushroomsink/mushrooms/internal/store"
	"github.com/mushroomsink/mushrooms/internal/viewmodel"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/message"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dataset statistics",
	Long:  "Print the directory totals, the industry and research category counts, and the database file when one is configured.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, ds, err := loadDataset()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		p := message.NewPrinter(cfg.Language())

		cfgPath := flagConfig
		if cfgPath == "" {
			cfgPath = config.DefaultConfigPath()
		}
		fmt.Fprintf(out, "Config: %s\n\n", cfgPath)
		writeStats(out, p, ds)

		if cfg.Database != "" {
			return writeDatabaseStats(out, cfg.Database)
		}
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <db>",
	Short: "Write the configured dataset into a SQLite file",
	Long: `Read companies and articles from the configured sources (JSON files, a
journal feed export, or the bundled data) and store them in a SQLite file.
Point the config's database setting at the file to browse it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, ds, err := loadDataset()
		if err != nil {
			return err
		}

		dbPath := args[0]
		db, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer db.Close()

		if err := db.Import(ds); err != nil {
			return fmt.Errorf("importing: %w", err)
		}
		log().Info("dataset imported",
			zap.String("path", dbPath),
			zap.Int("companies", len(ds.Companies)),
			zap.Int("articles", len(ds.Articles)))

		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d companies and %d articles into %s.\n",
			len(ds.Companies), len(ds.Articles), dbPath)
		return nil
	},
}

func writeStats(w io.Writer, p *message.Printer, ds *catalog.Dataset) {
	s := viewmodel.ComputeStats(ds.Companies)
	p.Fprintf(w, "Companies:        %d\n", s.Companies)
	p.Fprintf(w, "Industries:       %d\n", s.Industries)
	p.Fprintf(w, "Countries:        %d\n", s.Countries)
	p.Fprintf(w, "Total employees:  %d+\n", s.Employees)
	writeCounts(w, p, viewmodel.IndustryCounts(ds.Companies))

	p.Fprintf(w, "\nResearch articles: %d\n", viewmodel.CountArticles(ds.Articles))
	writeCounts(w, p, viewmodel.ArticleCategoryCounts(ds.Articles))
}

func writeCounts(w io.Writer, p *message.Printer, c viewmodel.Counts) {
	for _, k := range c.Keys {
		p.Fprintf(w, "  %-24s %d\n", k, c.Get(k))
	}
}

func writeDatabaseStats(w io.Writer, dbPath string) error {
	if _, err := os.Stat(dbPath); err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	db, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	companies, articles, size, err := db.Stats(dbPath)
	if err != nil {
		return fmt.Errorf("reading stats: %w", err)
	}

	fmt.Fprintf(w, "\nDatabase: %s\n", dbPath)
	fmt.Fprintf(w, "Rows:     %d companies, %d articles\n", companies, articles)
	fmt.Fprintf(w, "Size:     %s\n", humanize.Bytes(uint64(size)))
	if t := db.ImportedAt(); !t.IsZero() {
		fmt.Fprintf(w, "Imported: %s\n", humanize.Time(t))
	}
	return nil
}
