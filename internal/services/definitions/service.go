package definitions

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mcoot/arenarounds/internal/model"
	"github.com/mcoot/arenarounds/internal/services/roundtype"
	"github.com/mcoot/arenarounds/internal/storage"
)

// Service loads round type definitions and registers them with the registry
type Service struct {
	storage  storage.Storage
	registry *roundtype.Registry
	logger   *slog.Logger
}

// New creates a new definitions service
func New(storage storage.Storage, registry *roundtype.Registry, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Service{
		storage:  storage,
		registry: registry,
		logger:   logger,
	}
}

// LoadFromFile parses a definitions file and saves it to storage for later reloads
func (s *Service) LoadFromFile(ctx context.Context, path string) ([]model.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	defs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if err := s.storage.SaveDefinitions(ctx, defs); err != nil {
		return nil, err
	}

	s.logger.Info("round type definitions loaded",
		slog.String("path", path),
		slog.Int("count", len(defs)),
	)
	return defs, nil
}

// LoadFromStorage returns the stored definitions
func (s *Service) LoadFromStorage(ctx context.Context) ([]model.Definition, error) {
	return s.storage.GetDefinitions(ctx)
}

// Apply rebuilds the catalog: presets first, then each definition in order
func (s *Service) Apply(defs []model.Definition) {
	s.registry.Replace(defs)
}

// Reload rebuilds the catalog from stored definitions. With nothing stored
// only the presets remain.
func (s *Service) Reload(ctx context.Context) error {
	defs, err := s.LoadFromStorage(ctx)
	if err != nil && !errors.Is(err, model.ErrDefinitionsNotFound) {
		return err
	}
	s.Apply(defs)
	return nil
}

// ReloadFile loads a definitions file and applies it
func (s *Service) ReloadFile(ctx context.Context, path string) error {
	defs, err := s.LoadFromFile(ctx, path)
	if err != nil {
		return err
	}
	s.Apply(defs)
	return nil
}

// Add registers a single definition and persists it so it survives reloads
func (s *Service) Add(ctx context.Context, def model.Definition) (model.RoundType, error) {
	if err := s.storage.AppendDefinition(ctx, def); err != nil {
		return model.RoundType{}, err
	}
	return s.registry.AddFromDefinition(def), nil
}
