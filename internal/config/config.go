package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/dshills/caret/internal/config/loader"
	"github.com/dshills/caret/internal/engine/history"
	"github.com/dshills/caret/internal/engine/transform"
	"github.com/dshills/caret/internal/logging"
)

// Config holds all caret settings.
type Config struct {
	Editor  EditorConfig
	History HistoryConfig
	Logging LoggingConfig
}

// EditorConfig holds the settings that shape edit transforms.
type EditorConfig struct {
	// TabSize is how many units make up one indent.
	TabSize int

	// InsertSpaces selects spaces as the indent unit.
	InsertSpaces bool

	// IgnoreTabKey leaves Tab to the host.
	IgnoreTabKey bool

	// OutdentOnShiftTab makes Shift+Tab remove an indent.
	OutdentOnShiftTab bool

	// WrapSelection makes a typed bracket or quote surround the selection.
	WrapSelection bool
}

// HistoryConfig holds undo history settings.
type HistoryConfig struct {
	// Limit is the maximum number of history records.
	Limit int

	// TimeGap is the window within which typed words coalesce.
	TimeGap time.Duration
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum level written ("debug", "info", "warn", "error").
	Level string
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			TabSize:      transform.DefaultTabSize,
			InsertSpaces: transform.DefaultInsertSpaces,
		},
		History: HistoryConfig{
			Limit:   history.DefaultLimit,
			TimeGap: history.DefaultTimeGap,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Transform returns the edit configuration for the session.
func (e EditorConfig) Transform() transform.Config {
	return transform.Config{
		TabSize:           e.TabSize,
		InsertSpaces:      e.InsertSpaces,
		IgnoreTabKey:      e.IgnoreTabKey,
		OutdentOnShiftTab: e.OutdentOnShiftTab,
		WrapSelection:     e.WrapSelection,
	}
}

// Validate checks every setting and returns all failures joined.
func (c Config) Validate() error {
	var errs []error

	if c.Editor.TabSize < 0 {
		errs = append(errs, &ValidationError{Path: "editor.tabSize", Message: "must not be negative", Value: c.Editor.TabSize})
	}
	if c.History.Limit <= 0 {
		errs = append(errs, &ValidationError{Path: "history.limit", Message: "must be positive", Value: c.History.Limit})
	}
	if c.History.TimeGap < 0 {
		errs = append(errs, &ValidationError{Path: "history.timeGap", Message: "must not be negative", Value: c.History.TimeGap})
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, &ValidationError{Path: "logging.level", Message: "unknown level", Value: c.Logging.Level})
	}

	return errors.Join(errs...)
}

// FromMap overlays the values in data onto the defaults. Unknown settings
// are ignored.
func FromMap(data map[string]any) (Config, error) {
	cfg := Default()
	if err := cfg.apply(data); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) apply(data map[string]any) error {
	var errs []error
	for _, s := range settings {
		val, ok := loader.Lookup(data, s.path)
		if !ok {
			continue
		}
		if err := s.set(c, val); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Load reads the config file at path, if any, and the environment over the
// defaults, and validates the result. An empty path skips the file; a
// missing file is not an error.
func Load(path string, opts ...LoadOption) (Config, error) {
	lo := loadOptions{
		fs:  loader.DefaultFS(),
		env: loader.NewEnvLoader(loader.DefaultEnvPrefix),
	}
	for _, opt := range opts {
		opt(&lo)
	}

	merged := make(map[string]any)

	if path != "" {
		fl, err := loader.ForPath(lo.fs, path)
		if err != nil {
			return Config{}, err
		}
		data, err := fl.Load()
		if err != nil {
			return Config{}, err
		}
		merged = loader.DeepMerge(merged, data)
	}

	if lo.env != nil {
		data, err := lo.env.Load()
		if err != nil {
			return Config{}, fmt.Errorf("loading environment: %w", err)
		}
		merged = loader.DeepMerge(merged, data)
	}

	cfg, err := FromMap(merged)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	fs  loader.FileSystem
	env *loader.EnvLoader
}

// WithFS sets the file system used to read the config file.
func WithFS(fs loader.FileSystem) LoadOption {
	return func(o *loadOptions) {
		o.fs = fs
	}
}

// WithEnvLoader sets the environment loader. Nil disables the environment.
func WithEnvLoader(env *loader.EnvLoader) LoadOption {
	return func(o *loadOptions) {
		o.env = env
	}
}
