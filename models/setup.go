package models

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// OpenMarkStore Create the mark store named by driver ("memory" or "sqlite").
func OpenMarkStore(driver string) (MarkStore, error) {
	switch driver {
	case "", "memory":
		log.Info("Keeping marks in memory")
		return NewMemoryStore(), nil
	case "sqlite":
		store, err := NewSQLiteStore()
		if err != nil {
			return nil, err
		}
		log.Info("Keeping marks in an in-memory sqlite database")
		return store, nil
	default:
		return nil, fmt.Errorf("unknown mark store driver %q", driver)
	}
}
