package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mushroomsink/mushrooms/internal/catalog"
	"github.com/mushroomsink/mushrooms/internal/feed"
	"github.com/mushroomsink/mushrooms/internal/store"
	"go.uber.org/zap"
)

// Dataset loads companies and articles from the configured sources. The
// database, when set, supplies both; otherwise each file is read on its own
// and empty paths fall back to the bundled data.
func (c *Config) Dataset(log *zap.Logger) (*catalog.Dataset, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if c.Database != "" {
		log.Debug("loading dataset from database", zap.String("path", c.Database))
		return loadDatabase(c.Database)
	}

	companies, err := catalog.LoadCompanies(c.Companies)
	if err != nil {
		return nil, err
	}
	articles, err := loadArticles(c.Articles, log)
	if err != nil {
		return nil, err
	}
	log.Debug("dataset loaded",
		zap.Int("companies", len(companies)),
		zap.Int("articles", len(articles)))
	return &catalog.Dataset{Companies: companies, Articles: articles}, nil
}

func loadArticles(path string, log *zap.Logger) ([]catalog.Article, error) {
	if log == nil {
		log = zap.NewNop()
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml", ".atom", ".rss":
		log.Debug("loading articles from feed", zap.String("path", path))
		articles, err := feed.NewParser(log).ParseFile(path)
		if err != nil {
			return nil, err
		}
		if err := catalog.ValidateArticles(articles); err != nil {
			return nil, err
		}
		return articles, nil
	case ".db":
		ds, err := loadDatabase(path)
		if err != nil {
			return nil, err
		}
		return ds.Articles, nil
	default:
		return catalog.LoadArticles(path)
	}
}

func loadDatabase(path string) (*catalog.Dataset, error) {
	// Opening creates the file, so a typo would silently yield an empty
	// dataset.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	defer st.Close()
	return st.Dataset()
}
