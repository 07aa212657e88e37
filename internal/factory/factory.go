package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/arenarounds/internal/services/auth"
	"github.com/mcoot/arenarounds/internal/services/definitions"
	"github.com/mcoot/arenarounds/internal/services/roundtype"
	"github.com/mcoot/arenarounds/internal/storage"
	"github.com/mcoot/arenarounds/internal/storage/memory"
	redisstorage "github.com/mcoot/arenarounds/internal/storage/redis"
	"github.com/mcoot/arenarounds/internal/weapons"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// Services
	WeaponCatalog      *weapons.Catalog
	Registry           *roundtype.Registry
	DefinitionsService *definitions.Service
	AuthService        *auth.Service
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, admin routes are unauthenticated
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired.
// The registry starts empty; callers decide when to load presets.
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	return newWithDependencies(store, cfg.AuthConfig, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, authCfg auth.Config, logger *slog.Logger) *App {
	catalog := weapons.New()
	registry := roundtype.New(catalog, logger)
	defsService := definitions.New(store, registry, logger)
	authService := auth.New(authCfg)

	return &App{
		Storage:            store,
		WeaponCatalog:      catalog,
		Registry:           registry,
		DefinitionsService: defsService,
		AuthService:        authService,
	}
}
