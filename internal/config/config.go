// Package config holds runtime settings for notekeeper and the machinery to
// load them: defaults first, then an optional JSON file, then command-line
// flags, with later sources overriding earlier ones.
package config

// Config holds the application configuration.
//
// Fields:
//   - DatabasePath: location of the durable SQLite store.
//   - Backend: storage backend selection — "auto" (sqlite with in-memory
//     fallback), "sqlite", or "memory".
type Config struct {
	DatabasePath string
	Backend      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "notekeeper.db"
	c.Backend = "auto"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if a config file was given) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
