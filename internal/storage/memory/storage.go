package memory

import (
	"context"
	"sync"

	"github.com/mcoot/arenarounds/internal/model"
	"github.com/mcoot/arenarounds/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu          sync.RWMutex
	definitions []model.Definition
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveDefinitions(ctx context.Context, defs []model.Definition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.definitions = append([]model.Definition(nil), defs...)
	return nil
}

func (s *Storage) AppendDefinition(ctx context.Context, def model.Definition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.definitions = append(s.definitions, def)
	return nil
}

func (s *Storage) GetDefinitions(ctx context.Context) ([]model.Definition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.definitions) == 0 {
		return nil, model.ErrDefinitionsNotFound
	}
	// Return a copy to prevent external modification
	out := make([]model.Definition, len(s.definitions))
	copy(out, s.definitions)
	return out, nil
}

func (s *Storage) DeleteDefinitions(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.definitions = nil
	return nil
}
