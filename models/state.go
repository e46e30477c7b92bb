package models

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var ErrNoImage = errors.New("no image has been uploaded")

// State Everything a floormark session knows: the floor plan slot and the marks placed on it.
// One lock guards both, so an upload never interleaves with a render or a new mark.
type State struct {
	mu        sync.RWMutex
	imagePath string
	image     *StoredImage
	marks     MarkStore
}

// NewState The image slot starts empty, even if a file from an earlier run is still on disk.
func NewState(imagePath string, marks MarkStore) *State {
	return &State{
		imagePath: imagePath,
		marks:     marks,
	}
}

// SaveImage Store src as the current floor plan, replacing the previous one.
func (s *State) SaveImage(src io.Reader) (StoredImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	size, err := writeImage(s.imagePath, src)
	if err != nil {
		return StoredImage{}, fmt.Errorf("cannot store image at %s: %w", s.imagePath, err)
	}
	s.image = &StoredImage{
		Path:       s.imagePath,
		Size:       size,
		UploadedAt: time.Now(),
	}
	return *s.image, nil
}

// Image The current floor plan, if any.
func (s *State) Image() (StoredImage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.image == nil {
		return StoredImage{}, false
	}
	return *s.image, true
}

// Snapshot Read the floor plan bytes and the marks in one consistent view.
// Returns ErrNoImage when nothing has been uploaded yet.
func (s *State) Snapshot() ([]byte, []Mark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.image == nil {
		return nil, nil, ErrNoImage
	}
	data, err := os.ReadFile(s.image.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read stored image: %w", err)
	}
	marks, err := s.marks.List()
	if err != nil {
		return nil, nil, err
	}
	return data, marks, nil
}

// AddMark Append a mark. Nothing is validated; empty values are stored as they are.
func (s *State) AddMark(x, y, label string) (Mark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.marks.Append(Mark{X: x, Y: y, Label: label, CreatedAt: time.Now()})
}

// Marks All marks in the order they were added.
func (s *State) Marks() ([]Mark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.marks.List()
}

// Close Release the mark store.
func (s *State) Close() error {
	return s.marks.Close()
}
