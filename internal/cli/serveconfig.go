package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/graft/pkg/adapters/memory"
	"github.com/aretw0/graft/pkg/adapters/redis"
	"github.com/aretw0/graft/pkg/ports"
)

// ServeConfig configures the corpus server command.
type ServeConfig struct {
	Addr  string      `mapstructure:"addr"`
	Store StoreConfig `mapstructure:"store"`
}

// StoreConfig selects and configures the corpus store backend.
type StoreConfig struct {
	Backend string      `mapstructure:"backend"`
	Redis   RedisConfig `mapstructure:"redis"`
}

// RedisConfig holds the redis backend settings.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	Prefix   string        `mapstructure:"prefix"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// DefaultServeConfig listens on :8080 with an in-memory store.
func DefaultServeConfig() ServeConfig {
	return ServeConfig{
		Addr: ":8080",
		Store: StoreConfig{
			Backend: "memory",
			Redis:   RedisConfig{Addr: "localhost:6379"},
		},
	}
}

// LoadServeConfig reads a YAML config file on top of the defaults. An
// empty path returns the defaults unchanged.
func LoadServeConfig(path string) (ServeConfig, error) {
	cfg := DefaultServeConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return ServeConfig{}, fmt.Errorf("failed to read config %q: %w", path, err)
	}
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return ServeConfig{}, fmt.Errorf("failed to parse config %q: %w", path, err)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return ServeConfig{}, fmt.Errorf("failed to build config decoder: %w", err)
	}
	if err := dec.Decode(doc); err != nil {
		return ServeConfig{}, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

// BuildStore instantiates the configured corpus store backend.
func (c ServeConfig) BuildStore() (ports.CorpusStore, error) {
	switch c.Store.Backend {
	case "memory", "":
		return memory.NewStore(), nil
	case "redis":
		opts := []redis.Option{}
		if c.Store.Redis.Prefix != "" {
			opts = append(opts, redis.WithPrefix(c.Store.Redis.Prefix))
		}
		if c.Store.Redis.TTL > 0 {
			opts = append(opts, redis.WithTTL(c.Store.Redis.TTL))
		}
		return redis.New(c.Store.Redis.Addr, c.Store.Redis.Password, c.Store.Redis.DB, opts...), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q (want memory or redis)", c.Store.Backend)
	}
}
