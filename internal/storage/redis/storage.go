package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/arenarounds/internal/model"
	"github.com/mcoot/arenarounds/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Definitions are kept as a list of JSON documents.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = DefaultConfig().KeyPrefix
	}
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveDefinitions(ctx context.Context, defs []model.Definition) error {
	members, err := encodeDefinitions(defs)
	if err != nil {
		return err
	}

	key := definitionsKey(s.cfg.KeyPrefix)

	// Replace the whole list atomically
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(members) > 0 {
		pipe.RPush(ctx, key, members...)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) AppendDefinition(ctx context.Context, def model.Definition) error {
	data, err := json.Marshal(def)
	if err != nil {
		return err
	}
	return s.client.RPush(ctx, definitionsKey(s.cfg.KeyPrefix), data).Err()
}

func (s *Storage) GetDefinitions(ctx context.Context) ([]model.Definition, error) {
	values, err := s.client.LRange(ctx, definitionsKey(s.cfg.KeyPrefix), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	if len(values) == 0 {
		return nil, model.ErrDefinitionsNotFound
	}

	defs := make([]model.Definition, 0, len(values))
	for _, val := range values {
		var def model.Definition
		if err := json.Unmarshal([]byte(val), &def); err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func (s *Storage) DeleteDefinitions(ctx context.Context) error {
	return s.client.Del(ctx, definitionsKey(s.cfg.KeyPrefix)).Err()
}

func encodeDefinitions(defs []model.Definition) ([]interface{}, error) {
	members := make([]interface{}, len(defs))
	for i, def := range defs {
		data, err := json.Marshal(def)
		if err != nil {
			return nil, err
		}
		members[i] = data
	}
	return members, nil
}
