package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"weather-widget/internal/domain/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StorageItem is one row of the storage_items table
type StorageItem struct {
	Key       string `gorm:"primaryKey;size:255"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (StorageItem) TableName() string {
	return "storage_items"
}

// GormStore keeps items in a SQL table through gorm
type GormStore struct {
	DB *gorm.DB
}

var _ KeyValueStore = (*GormStore)(nil)

// NewGormStore migrates the storage_items table and returns a store on it
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&StorageItem{}); err != nil {
		return nil, fmt.Errorf("migrate storage_items: %w", err)
	}
	return &GormStore{DB: db}, nil
}

func (s *GormStore) GetItem(ctx context.Context, key string) (string, bool, error) {
	var item StorageItem
	err := s.DB.WithContext(ctx).Where(&StorageItem{Key: key}).Take(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select %s: %w", key, err)
	}
	return item.Value, true, nil
}

func (s *GormStore) SetItem(ctx context.Context, key, value string) error {
	item := StorageItem{Key: key, Value: value}
	err := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&item).Error
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (s *GormStore) RemoveItem(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("key is required")
	}
	if err := s.DB.WithContext(ctx).Where(&StorageItem{Key: key}).Delete(&StorageItem{}).Error; err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *GormStore) Health() model.ComponentHealthStatus {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return model.ComponentHealthStatus{
			Status:  model.StatusDown,
			Details: map[string]string{"backend": "sql", "message": err.Error()},
		}
	}

	if err = sqlDB.Ping(); err != nil {
		return model.ComponentHealthStatus{
			Status:  model.StatusDown,
			Details: map[string]string{"backend": "sql", "message": err.Error()},
		}
	}

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"backend": "sql",
			"dialect": s.DB.Dialector.Name(),
		},
	}
}
