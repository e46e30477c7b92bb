package models

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Mark One table placed on the floor plan. Coordinates are kept exactly as they
// were submitted and are only parsed when the annotated image is rendered.
type Mark struct {
	ID        uint      `json:"id" gorm:"primary_key"`
	X         string    `json:"x"`
	Y         string    `json:"y"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
}

var ErrBadCoordinate = errors.New("coordinate is not a number")

// Center Parse the stored coordinates as pixel offsets from the image origin.
func (m Mark) Center() (float64, float64, error) {
	x, err := strconv.ParseFloat(m.X, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("mark %d: x=%q: %w", m.ID, m.X, ErrBadCoordinate)
	}
	y, err := strconv.ParseFloat(m.Y, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("mark %d: y=%q: %w", m.ID, m.Y, ErrBadCoordinate)
	}
	return x, y, nil
}
