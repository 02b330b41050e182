// Package store keeps a catalog dataset in a SQLite file. The browser only
// reads it; the import command is the single writer.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mushroomsink/mushrooms/internal/catalog"
	_ "modernc.org/sqlite"
)

type Store struct {
	readDB  *sql.DB
	writeDB *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating dataset dir: %w", err)
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening write db: %w", err)
	}
	writeDB.SetMaxOpenConns(1)

	readDB, err := sql.Open("sqlite", dbPath+"?mode=ro")
	if err != nil {
		writeDB.Close()
		return nil, fmt.Errorf("opening read db: %w", err)
	}

	s := &Store{readDB: readDB, writeDB: writeDB}
	if err := s.init(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.writeDB.Exec(`
		CREATE TABLE IF NOT EXISTS companies (
			id             INTEGER PRIMARY KEY,
			position       INTEGER NOT NULL,
			name           TEXT NOT NULL,
			industry       TEXT NOT NULL,
			country        TEXT NOT NULL DEFAULT '',
			founded        INTEGER NOT NULL DEFAULT 0,
			employees      TEXT NOT NULL DEFAULT '',
			products       TEXT NOT NULL DEFAULT '',
			description    TEXT NOT NULL DEFAULT '',
			technologies   TEXT NOT NULL DEFAULT '',
			business_model TEXT NOT NULL DEFAULT '',
			target         TEXT NOT NULL DEFAULT '',
			stage          TEXT NOT NULL DEFAULT '',
			innovation     TEXT NOT NULL,
			website        TEXT NOT NULL DEFAULT '',
			affiliate      INTEGER NOT NULL DEFAULT 0,
			affiliate_url  TEXT NOT NULL DEFAULT '',
			discount       TEXT NOT NULL DEFAULT '',
			discount_code  TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS articles (
			id          TEXT PRIMARY KEY,
			position    INTEGER NOT NULL,
			title       TEXT NOT NULL,
			authors     TEXT NOT NULL DEFAULT '',
			journal     TEXT NOT NULL DEFAULT '',
			year        INTEGER NOT NULL DEFAULT 0,
			category    TEXT NOT NULL DEFAULT '',
			subcategory TEXT NOT NULL DEFAULT '',
			type        TEXT NOT NULL DEFAULT '',
			summary     TEXT NOT NULL DEFAULT '',
			keywords    TEXT NOT NULL DEFAULT '[]',
			url         TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	var errs []error
	if s.readDB != nil {
		errs = append(errs, s.readDB.Close())
	}
	if s.writeDB != nil {
		errs = append(errs, s.writeDB.Close())
	}
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// Import replaces the stored dataset. Record order is kept so reads return
// rows in the order they were loaded.
func (s *Store) Import(ds *catalog.Dataset) error {
	tx, err := s.writeDB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM companies; DELETE FROM articles;`); err != nil {
		return fmt.Errorf("clearing dataset: %w", err)
	}

	cstmt, err := tx.Prepare(`
		INSERT INTO companies (id, position, name, industry, country, founded, employees,
			products, description, technologies, business_model, target, stage,
			innovation, website, affiliate, affiliate_url, discount, discount_code)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer cstmt.Close()

	for i, c := range ds.Companies {
		_, err := cstmt.Exec(c.ID, i, c.Name, c.Industry, c.Country, c.Founded, c.Employees,
			c.Products, c.Description, c.Technologies, c.BusinessModel, c.Target, c.Stage,
			string(c.Innovation), c.Website, c.Affiliate, c.AffiliateURL, c.Discount, c.DiscountCode)
		if err != nil {
			return fmt.Errorf("inserting company %q: %w", c.Name, err)
		}
	}

	astmt, err := tx.Prepare(`
		INSERT INTO articles (id, position, title, authors, journal, year, category,
			subcategory, type, summary, keywords, url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer astmt.Close()

	for i, a := range ds.Articles {
		keywords, err := json.Marshal(a.Keywords)
		if err != nil {
			return fmt.Errorf("encoding keywords for %s: %w", a.ID, err)
		}
		_, err = astmt.Exec(a.ID, i, a.Title, a.Authors, a.Journal, a.Year, a.Category,
			a.Subcategory, a.Type, a.Summary, string(keywords), a.URL)
		if err != nil {
			return fmt.Errorf("inserting article %s: %w", a.ID, err)
		}
	}

	if _, err := tx.Exec(`
		INSERT INTO meta (key, value) VALUES ('imported_at', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("recording import time: %w", err)
	}

	return tx.Commit()
}

func (s *Store) Companies() ([]catalog.Company, error) {
	rows, err := s.readDB.Query(`
		SELECT id, name, industry, country, founded, employees, products, description,
			technologies, business_model, target, stage, innovation, website,
			affiliate, affiliate_url, discount, discount_code
		FROM companies ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying companies: %w", err)
	}
	defer rows.Close()

	companies := []catalog.Company{}
	for rows.Next() {
		var (
			c          catalog.Company
			innovation string
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Industry, &c.Country, &c.Founded, &c.Employees,
			&c.Products, &c.Description, &c.Technologies, &c.BusinessModel, &c.Target, &c.Stage,
			&innovation, &c.Website, &c.Affiliate, &c.AffiliateURL, &c.Discount, &c.DiscountCode); err != nil {
			return nil, fmt.Errorf("scanning company: %w", err)
		}
		c.Innovation = catalog.Innovation(innovation)
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (s *Store) Articles() ([]catalog.Article, error) {
	rows, err := s.readDB.Query(`
		SELECT id, title, authors, journal, year, category, subcategory, type,
			summary, keywords, url
		FROM articles ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying articles: %w", err)
	}
	defer rows.Close()

	articles := []catalog.Article{}
	for rows.Next() {
		var (
			a        catalog.Article
			keywords string
		)
		if err := rows.Scan(&a.ID, &a.Title, &a.Authors, &a.Journal, &a.Year, &a.Category,
			&a.Subcategory, &a.Type, &a.Summary, &keywords, &a.URL); err != nil {
			return nil, fmt.Errorf("scanning article: %w", err)
		}
		if err := json.Unmarshal([]byte(keywords), &a.Keywords); err != nil {
			return nil, fmt.Errorf("decoding keywords for %s: %w", a.ID, err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// Dataset reads both tables and checks the record invariants.
func (s *Store) Dataset() (*catalog.Dataset, error) {
	companies, err := s.Companies()
	if err != nil {
		return nil, err
	}
	if err := catalog.ValidateCompanies(companies); err != nil {
		return nil, err
	}
	articles, err := s.Articles()
	if err != nil {
		return nil, err
	}
	return &catalog.Dataset{Companies: companies, Articles: articles}, nil
}

// ImportedAt returns when the dataset was last imported, zero if never.
func (s *Store) ImportedAt() time.Time {
	var value string
	err := s.readDB.QueryRow("SELECT value FROM meta WHERE key = 'imported_at'").Scan(&value)
	if err != nil {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Stats returns row counts and the file size.
func (s *Store) Stats(dbPath string) (companies, articles int, size int64, err error) {
	if err = s.readDB.QueryRow("SELECT COUNT(*) FROM companies").Scan(&companies); err != nil {
		return 0, 0, 0, fmt.Errorf("counting companies: %w", err)
	}
	if err = s.readDB.QueryRow("SELECT COUNT(*) FROM articles").Scan(&articles); err != nil {
		return 0, 0, 0, fmt.Errorf("counting articles: %w", err)
	}
	info, err := os.Stat(dbPath)
	if err != nil {
		return companies, articles, 0, nil
	}
	return companies, articles, info.Size(), nil
}
