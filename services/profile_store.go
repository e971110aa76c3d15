package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yeremiapane/little-lemon/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Profile keys written by the app.
const (
	KeyIsOnboarded     = "isOnboarded"
	KeyFirstName       = "userFirstName"
	KeyEmail           = "userEmail"
	KeyPhoneNumber     = "userPhoneNumber"
	KeyProfileImage    = "profileImage"
	KeyEmailNewsletter = "emailNewsletter"
	KeyDiscountOffers  = "discountOffers"
)

// ProfileKeys lists every key the app writes.
var ProfileKeys = []string{
	KeyIsOnboarded,
	KeyFirstName,
	KeyEmail,
	KeyPhoneNumber,
	KeyProfileImage,
	KeyEmailNewsletter,
	KeyDiscountOffers,
}

// KeyValueStore is a device-local string store. Get reports ok=false for a
// key that was never set or has been removed.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// SQLiteKVStore keeps profile entries in the profile_kv table.
type SQLiteKVStore struct {
	DB *gorm.DB
}

func NewSQLiteKVStore(db *gorm.DB) (*SQLiteKVStore, error) {
	if err := db.AutoMigrate(&models.KeyValue{}); err != nil {
		return nil, fmt.Errorf("migrate profile_kv: %w", err)
	}
	return &SQLiteKVStore{DB: db}, nil
}

func (s *SQLiteKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var kv models.KeyValue
	err := s.DB.WithContext(ctx).Where("item_key = ?", key).First(&kv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return kv.Value, true, nil
}

func (s *SQLiteKVStore) Set(ctx context.Context, key, value string) error {
	kv := models.KeyValue{Key: key, Value: value}
	err := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "item_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"item_value", "updated_at"}),
		}).
		Create(&kv).Error
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteKVStore) Remove(ctx context.Context, key string) error {
	if err := s.DB.WithContext(ctx).Where("item_key = ?", key).Delete(&models.KeyValue{}).Error; err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteKVStore) Clear(ctx context.Context) error {
	// Where("1 = 1") karena gorm menolak DELETE tanpa kondisi.
	if err := s.DB.WithContext(ctx).Where("1 = 1").Delete(&models.KeyValue{}).Error; err != nil {
		return fmt.Errorf("clear profile store: %w", err)
	}
	return nil
}
