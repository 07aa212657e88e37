package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the server configuration
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Storage     StorageConfig     `mapstructure:"storage"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Definitions DefinitionsConfig `mapstructure:"definitions"`
	Log         LogConfig         `mapstructure:"log"`
	Admin       AdminConfig       `mapstructure:"admin"`
}

// ServerConfig holds HTTP listen settings
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// StorageConfig selects the definitions storage backend
type StorageConfig struct {
	Type string `mapstructure:"type"`
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	URL          string `mapstructure:"url"`
	PoolSize     int    `mapstructure:"poolSize"`
	MinIdleConns int    `mapstructure:"minIdleConns"`
	KeyPrefix    string `mapstructure:"keyPrefix"`
}

// DefinitionsConfig locates the round type definitions file
type DefinitionsConfig struct {
	Path     string        `mapstructure:"path"`
	Watch    bool          `mapstructure:"watch"`
	Debounce time.Duration `mapstructure:"debounce"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// AdminConfig holds admin API settings
type AdminConfig struct {
	TokenHash string `mapstructure:"tokenHash"`
}

// EnvPrefix is prepended to environment overrides, e.g. ARENA_SERVER_PORT
const EnvPrefix = "ARENA"

// Load reads configuration from an optional config file and the environment.
// An empty configFile searches the working directory for arenarounds.{yaml,json};
// a missing file there is not an error.
func Load(configFile string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("arenarounds")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 8080)

	v.SetDefault("storage.type", "memory")

	v.SetDefault("redis.url", "redis://localhost:6379")
	v.SetDefault("redis.poolSize", 10)
	v.SetDefault("redis.minIdleConns", 2)
	v.SetDefault("redis.keyPrefix", "arena")

	v.SetDefault("definitions.path", "")
	v.SetDefault("definitions.watch", false)
	v.SetDefault("definitions.debounce", 500*time.Millisecond)

	v.SetDefault("log.level", "info")

	v.SetDefault("admin.tokenHash", "")
}

// SlogLevel converts the configured level name to a slog.Level
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
