// Package sqlite serves titles stored in a SQLite database.
package sqlite

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/log"
	"github.com/samber/lo"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

const ID = "sqlite"

// TitleRecord keeps the upstream document next to the columns used for
// searching. Documents go through catalog.Decode on the way out.
type TitleRecord struct {
	ID       string `gorm:"primaryKey"`
	Name     string `gorm:"index"`
	Category string `gorm:"index"`
	Episodes int
	Document string
}

func (TitleRecord) TableName() string {
	return "titles"
}

// Source reads titles from a database.
type Source struct {
	db    *gorm.DB
	limit int
}

// Open opens or creates the database at dsn and migrates it.
func Open(dsn string, limit int) (*Source, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("sqlite catalog: %w", err)
	}

	if err := db.AutoMigrate(&TitleRecord{}); err != nil {
		return nil, fmt.Errorf("sqlite catalog: migrate: %w", err)
	}

	return &Source{db: db, limit: limit}, nil
}

func (s *Source) Name() string {
	return "SQLite"
}

func (s *Source) ID() string {
	return ID
}

// Search matches the query as a substring of the title name.
func (s *Source) Search(query string) ([]*catalog.Title, error) {
	tx := s.db.Order("name")
	if query = strings.TrimSpace(query); query != "" {
		tx = tx.Where("name LIKE ?", "%"+query+"%")
	}
	if s.limit > 0 {
		tx = tx.Limit(s.limit)
	}

	var records []TitleRecord
	if err := tx.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("sqlite catalog: search: %w", err)
	}

	titles := make([]*catalog.Title, 0, len(records))
	for _, record := range records {
		title, err := record.decode()
		if err != nil {
			log.Warnf("sqlite catalog: skipping %s: %s", record.ID, err)
			continue
		}
		titles = append(titles, title)
	}

	return titles, nil
}

// TitleOf returns the title with the given id.
func (s *Source) TitleOf(id string) (*catalog.Title, error) {
	var record TitleRecord
	err := s.db.Where("id = ?", id).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%s: %w", id, catalog.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite catalog: %w", err)
	}

	return record.decode()
}

// Import stores every title of a JSON catalog, replacing existing ones.
// It returns the number of imported titles.
func (s *Source) Import(r io.Reader) (int, error) {
	var payload json.RawMessage
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return 0, fmt.Errorf("sqlite catalog: import: %w", err)
	}

	documents := []json.RawMessage{payload}
	if bytes.HasPrefix(bytes.TrimSpace(payload), []byte("[")) {
		if err := json.Unmarshal(payload, &documents); err != nil {
			return 0, fmt.Errorf("sqlite catalog: import: %w", err)
		}
	}

	records := make([]TitleRecord, 0, len(documents))
	for _, document := range documents {
		title, err := catalog.Decode(bytes.NewReader(document))
		if err != nil {
			return 0, err
		}
		if title.ID == "" {
			log.Warnf("sqlite catalog: skipping title without id %q", title.Name)
			continue
		}

		records = append(records, TitleRecord{
			ID:       title.ID,
			Name:     title.Name,
			Category: title.Category,
			Episodes: len(title.Episodes),
			Document: string(document),
		})
	}

	records = lo.UniqBy(records, func(r TitleRecord) string { return r.ID })
	if len(records) == 0 {
		return 0, nil
	}

	err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&records).Error
	if err != nil {
		return 0, fmt.Errorf("sqlite catalog: import: %w", err)
	}

	return len(records), nil
}

// Close releases the database.
func (s *Source) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}

func (r TitleRecord) decode() (*catalog.Title, error) {
	return catalog.Decode(strings.NewReader(r.Document))
}
