package config

import (
	"fmt"
	"math"
	"time"
)

// setting binds a dotted path to a field of Config.
type setting struct {
	path string
	set  func(c *Config, val any) error
}

var settings = []setting{
	intSetting("editor.tabSize", func(c *Config) *int { return &c.Editor.TabSize }),
	boolSetting("editor.insertSpaces", func(c *Config) *bool { return &c.Editor.InsertSpaces }),
	boolSetting("editor.ignoreTabKey", func(c *Config) *bool { return &c.Editor.IgnoreTabKey }),
	boolSetting("editor.outdentOnShiftTab", func(c *Config) *bool { return &c.Editor.OutdentOnShiftTab }),
	boolSetting("editor.wrapSelection", func(c *Config) *bool { return &c.Editor.WrapSelection }),
	intSetting("history.limit", func(c *Config) *int { return &c.History.Limit }),
	durationSetting("history.timeGap", func(c *Config) *time.Duration { return &c.History.TimeGap }),
	stringSetting("logging.level", func(c *Config) *string { return &c.Logging.Level }),
}

func intSetting(path string, field func(*Config) *int) setting {
	return setting{path: path, set: func(c *Config, val any) error {
		n, ok := toInt(val)
		if !ok {
			return &TypeError{Path: path, Expected: "int", Actual: typeName(val)}
		}
		*field(c) = n
		return nil
	}}
}

func boolSetting(path string, field func(*Config) *bool) setting {
	return setting{path: path, set: func(c *Config, val any) error {
		b, ok := val.(bool)
		if !ok {
			return &TypeError{Path: path, Expected: "bool", Actual: typeName(val)}
		}
		*field(c) = b
		return nil
	}}
}

func stringSetting(path string, field func(*Config) *string) setting {
	return setting{path: path, set: func(c *Config, val any) error {
		s, ok := val.(string)
		if !ok {
			return &TypeError{Path: path, Expected: "string", Actual: typeName(val)}
		}
		*field(c) = s
		return nil
	}}
}

// durationSetting accepts a time.Duration, a duration string such as
// "1500ms", or a number of milliseconds.
func durationSetting(path string, field func(*Config) *time.Duration) setting {
	return setting{path: path, set: func(c *Config, val any) error {
		switch v := val.(type) {
		case time.Duration:
			*field(c) = v
			return nil
		case string:
			d, err := time.ParseDuration(v)
			if err != nil {
				return &TypeError{Path: path, Expected: "duration", Actual: fmt.Sprintf("string %q", v)}
			}
			*field(c) = d
			return nil
		}
		if ms, ok := toInt(val); ok {
			*field(c) = time.Duration(ms) * time.Millisecond
			return nil
		}
		return &TypeError{Path: path, Expected: "duration", Actual: typeName(val)}
	}}
}

// toInt converts the integer types produced by the TOML, YAML and
// environment loaders.
func toInt(val any) (int, bool) {
	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint64:
		return int(v), true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	default:
		return 0, false
	}
}

func typeName(val any) string {
	if val == nil {
		return "null"
	}
	return fmt.Sprintf("%T", val)
}
