package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SnapshotRecord is the single table backing the Postgres provider.
type SnapshotRecord struct {
	Key       string    `gorm:"primaryKey;column:key"`
	Value     []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (SnapshotRecord) TableName() string {
	return "snapshots"
}

// PostgresProvider persists snapshots in a key/value table via GORM.
type PostgresProvider struct {
	db *gorm.DB
}

// NewPostgresProvider migrates the snapshots table and returns the
// provider.
func NewPostgresProvider(db *gorm.DB) (*PostgresProvider, error) {
	if err := db.AutoMigrate(&SnapshotRecord{}); err != nil {
		return nil, err
	}
	return &PostgresProvider{db: db}, nil
}

func (p *PostgresProvider) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var record SnapshotRecord
	err := p.db.WithContext(ctx).Where("key = ?", key).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return record.Value, true, nil
}

func (p *PostgresProvider) Save(ctx context.Context, key string, value []byte) error {
	record := SnapshotRecord{Key: key, Value: value}
	return p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&record).Error
}
