package config

import (
	"encoding/json"
	"os"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Empty fields
// mean "keep the current value".
type jsonConfig struct {
	DatabasePath string `json:"database_path"`
	Backend      string `json:"backend"`
}

// parseJson overlays cfg with values loaded from the JSON file named by the
// -c/-config flag. When no config flag is present, nothing happens. Read or
// unmarshal errors panic; a config file that was explicitly requested but is
// broken should not be silently skipped.
func parseJson(cfg *Config) {
	path := jsonConfigFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.Backend != "" {
		cfg.Backend = jc.Backend
	}
}
