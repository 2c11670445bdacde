package campaign

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Config is the serializable subset of runner settings, typically loaded
// from a YAML or JSON document by the embedding application.
type Config struct {
	Runs           int    `mapstructure:"runs"`
	Seed           uint64 `mapstructure:"seed"`
	ShrinkAttempts int    `mapstructure:"shrink_attempts"`
}

// DefaultConfig mirrors the defaults applied by New.
func DefaultConfig() Config {
	return Config{
		Runs:           1000,
		Seed:           1,
		ShrinkAttempts: 500,
	}
}

// ConfigFromMap decodes a loosely-typed document (e.g. parsed YAML) into a
// Config, starting from the defaults.
func ConfigFromMap(m map[string]any) (Config, error) {
	cfg := DefaultConfig()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Config{}, fmt.Errorf("failed to build config decoder: %w", err)
	}
	if err := dec.Decode(m); err != nil {
		return Config{}, fmt.Errorf("invalid campaign config: %w", err)
	}
	return cfg, nil
}

// Options expands the config into runner options.
func (c Config) Options() []Option {
	return []Option{
		WithRuns(c.Runs),
		WithSeed(c.Seed),
		WithShrinkAttempts(c.ShrinkAttempts),
	}
}
