// Package report persists one row per target per sync run. It is
// append-only observability: reconciliation never reads it back.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SyncRun summarizes one target sync.
type SyncRun struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Target       string    `json:"target" gorm:"not null"`
	TotalOffers  int       `json:"total_offers"`
	InStock      int       `json:"in_stock"`
	StockBatches int       `json:"stock_batches"`
	PriceBatches int       `json:"price_batches"`
	ItemErrors   int       `json:"item_errors"`
	StartedAt    time.Time `json:"started_at"`
	FinishedAt   time.Time `json:"finished_at"`
}

func (r *SyncRun) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

type Store struct {
	db *gorm.DB
}

// New opens the report database. sqlite:// URLs are for development, any
// other URL is treated as a postgres DSN.
func New(databaseURL string) (*Store, error) {
	var db *gorm.DB
	var err error

	if strings.HasPrefix(databaseURL, "sqlite://") {
		dbPath := strings.TrimPrefix(databaseURL, "sqlite://")
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		})
	} else {
		db, err = gorm.Open(postgres.Open(databaseURL), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS sync_runs (
		id TEXT PRIMARY KEY,
		target TEXT NOT NULL,
		total_offers INTEGER,
		in_stock INTEGER,
		stock_batches INTEGER,
		price_batches INTEGER,
		item_errors INTEGER,
		started_at TIMESTAMP,
		finished_at TIMESTAMP
	);
	`
	if err := db.Exec(createTableSQL).Error; err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return &Store{db: db}, nil
}

// Save appends one run summary.
func (s *Store) Save(run *SyncRun) error {
	if err := s.db.Create(run).Error; err != nil {
		return fmt.Errorf("failed to save sync run: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
