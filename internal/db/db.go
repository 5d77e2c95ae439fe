package db

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ratheesh-12/HostelMS/internal/model"
)

// Init opens the local session slot database and runs migrations. The slot
// is the only durable state the service keeps; all domain collections live
// in memory.
func Init(path string) (*gorm.DB, error) {
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	log.Println("Running session slot migrations...")
	if err := gdb.AutoMigrate(&model.SessionRecord{}); err != nil {
		return nil, fmt.Errorf("automigrate failed: %w", err)
	}

	return gdb, nil
}

// SQLiteSlot is a durable key-value slot backed by the session database.
type SQLiteSlot struct {
	db *gorm.DB
}

// NewSQLiteSlot wraps an initialized session database.
func NewSQLiteSlot(gdb *gorm.DB) *SQLiteSlot {
	return &SQLiteSlot{db: gdb}
}

// Get returns the stored value for key, or ok=false when the key is absent.
func (s *SQLiteSlot) Get(key string) (string, bool, error) {
	var rec model.SessionRecord
	err := s.db.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read session slot %q: %w", key, err)
	}
	return rec.Value, true, nil
}

// Put writes value under key, replacing any previous value.
func (s *SQLiteSlot) Put(key, value string) error {
	rec := model.SessionRecord{Key: key, Value: value}
	if err := s.db.Save(&rec).Error; err != nil {
		return fmt.Errorf("failed to write session slot %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *SQLiteSlot) Delete(key string) error {
	if err := s.db.Delete(&model.SessionRecord{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to clear session slot %q: %w", key, err)
	}
	return nil
}
