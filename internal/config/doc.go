// Package config provides the configuration system for caret.
//
// Settings come from three sources, higher ones overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← CARET_TAB_SIZE, CARET_LOG_LEVEL, ...
//	├─────────────────────────────┤
//	│  2. Config File             │  ← caret.toml or caret.yaml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Sub-packages
//
//   - loader: TOML, YAML and environment variable loading
//   - watcher: fsnotify based file watching for live reload
//
// # Basic Usage
//
//	cfg, err := config.Load("caret.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	session.SetConfig(cfg.Editor.Transform())
//
// # Live Reload
//
//	r, err := config.Watch("caret.toml", func(cfg config.Config) {
//	    session.SetConfig(cfg.Editor.Transform())
//	}, nil)
//	defer r.Close()
package config
