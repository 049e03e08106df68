package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry is one stored value in the kv_entries table
type KVEntry struct {
	Key       string    `gorm:"primaryKey;size:255"`
	Value     []byte    `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName pins the table name used by GormStore
func (KVEntry) TableName() string {
	return "kv_entries"
}

// GormStore keeps values in a SQL table through gorm. Works with both the
// sqlite and postgres dialects.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a GormStore and migrates its table.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv_entries: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry KVEntry
	err := s.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("kv get %s: %w", key, err)
	}
	return entry.Value, nil
}

func (s *GormStore) Put(ctx context.Context, key string, value []byte) error {
	entry := KVEntry{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("kv put %s: %w", key, err)
	}
	return nil
}
