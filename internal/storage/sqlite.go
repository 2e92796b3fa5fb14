package storage

import (
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	inErrors "github.com/azgaming/storefront/internal/errors"
)

type blob struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value []byte `gorm:"column:value"`
}

func (blob) TableName() string {
	return "blobs"
}

// SQLiteStore keeps every blob in a single database file, for
// deployments that want the whole profile in one portable file.
type SQLiteStore struct {
	db *gorm.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed opening sqlite database=%s with error=%w", path, err)
	}
	if err = db.AutoMigrate(&blob{}); err != nil {
		return nil, fmt.Errorf("failed migrating blobs table with error=%w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(key string) ([]byte, error) {
	var b blob
	err := s.db.First(&b, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, inErrors.ErrNoItem
		}
		return nil, fmt.Errorf("failed reading blob key=%s with error=%w", key, err)
	}
	return b.Value, nil
}

func (s *SQLiteStore) Set(key string, value []byte) error {
	err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&blob{Key: key, Value: value}).Error
	if err != nil {
		return fmt.Errorf("failed writing blob key=%s with error=%w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Remove(key string) error {
	if err := s.db.Delete(&blob{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("failed removing blob key=%s with error=%w", key, err)
	}
	return nil
}
