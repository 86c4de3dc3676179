package storage

import (
	"github.com/lcalzada-xor/timemap/internal/core/domain"
	"github.com/lcalzada-xor/timemap/internal/core/ports"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLiteAdapter implements ports.LookupStore using GORM and SQLite. The
// history is append-only operator surface: the pipeline writes here after
// publishing and never reads it back to answer a lookup.
type SQLiteAdapter struct {
	db *gorm.DB
}

// NewSQLiteAdapter initializes the database and migrates the schema.
func NewSQLiteAdapter(path string) (*SQLiteAdapter, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&LookupModel{}); err != nil {
		return nil, err
	}

	db.Exec("CREATE INDEX IF NOT EXISTS idx_lookups_resolved_at ON lookup_models(resolved_at)")

	return &SQLiteAdapter{db: db}, nil
}

// SaveLookup appends one published record.
func (a *SQLiteAdapter) SaveLookup(rec domain.LocationInfo) error {
	model := toModel(rec)
	return a.db.Create(&model).Error
}

// RecentLookups returns the newest records first.
func (a *SQLiteAdapter) RecentLookups(limit int) ([]domain.LocationInfo, error) {
	var models []LookupModel
	if err := a.db.Order("resolved_at desc").Limit(limit).Find(&models).Error; err != nil {
		return nil, err
	}

	records := make([]domain.LocationInfo, len(models))
	for i, m := range models {
		records[i] = toDomain(m)
	}
	return records, nil
}

func (a *SQLiteAdapter) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ensure interface compliance
var _ ports.LookupStore = (*SQLiteAdapter)(nil)
