package models

import (
	"fmt"
	"sync"
	"time"

	"github.com/twinj/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MarkStore Append-only, ordered list of marks.
type MarkStore interface {
	Append(mark Mark) (Mark, error)
	List() ([]Mark, error)
	Close() error
}

// MemoryStore Keeps the marks in a slice.
type MemoryStore struct {
	mu    sync.Mutex
	marks []Mark
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(mark Mark) (Mark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mark.ID = uint(len(s.marks) + 1)
	if mark.CreatedAt.IsZero() {
		mark.CreatedAt = time.Now()
	}
	s.marks = append(s.marks, mark)
	return mark, nil
}

func (s *MemoryStore) List() ([]Mark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	marks := make([]Mark, len(s.marks))
	copy(marks, s.marks)
	return marks, nil
}

func (s *MemoryStore) Close() error { return nil }

// SQLiteStore Keeps the marks in an in-memory SQLite database through gorm.
// Every store gets its own named database, which disappears with the process.
type SQLiteStore struct {
	db *gorm.DB
}

func NewSQLiteStore() (*SQLiteStore, error) {
	dsn := fmt.Sprintf("file:floormark-%s?mode=memory&cache=shared", uuid.NewV4().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("cannot open sqlite database %s: %w", dsn, err)
	}

	// The shared in-memory database lives as long as one connection stays open.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := db.AutoMigrate(&Mark{}); err != nil {
		return nil, fmt.Errorf("cannot migrate marks table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Append(mark Mark) (Mark, error) {
	mark.ID = 0
	if err := s.db.Create(&mark).Error; err != nil {
		return Mark{}, err
	}
	return mark, nil
}

func (s *SQLiteStore) List() ([]Mark, error) {
	var marks []Mark
	if err := s.db.Order("id asc").Find(&marks).Error; err != nil {
		return nil, err
	}
	return marks, nil
}

func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
