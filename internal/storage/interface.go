package storage

import (
	"context"

	"github.com/mcoot/arenarounds/internal/model"
)

// Storage defines the interface for persisting round type definitions
type Storage interface {
	// SaveDefinitions replaces all stored definitions, preserving order
	SaveDefinitions(ctx context.Context, defs []model.Definition) error
	// AppendDefinition adds a definition after the stored ones
	AppendDefinition(ctx context.Context, def model.Definition) error
	// GetDefinitions returns model.ErrDefinitionsNotFound when nothing is stored
	GetDefinitions(ctx context.Context) ([]model.Definition, error)
	DeleteDefinitions(ctx context.Context) error
}
