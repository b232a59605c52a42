package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/lockbox/internal/flagx"
	"github.com/dmitrijs2005/lockbox/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "30s"
// or as integer nanoseconds. Pointer fields distinguish "absent" from zero
// values, so a partial file only overrides what it mentions.
type JsonConfig struct {
	StoreDriver         *string         `json:"store_driver"`
	StorePath           *string         `json:"store_path"`
	HashScheme          *string         `json:"hash_scheme"`
	SeedDemoData        *bool           `json:"seed_demo_data"`
	ClipboardEnabled    *bool           `json:"clipboard_enabled"`
	ClipboardClearAfter *timex.Duration `json:"clipboard_clear_after"`
	LogLevel            *string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags via flagx.JsonConfigFlags; when no
// path is given nothing is loaded. Read or unmarshal errors panic, matching
// the fail-fast behavior of the flag stage.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.StoreDriver != nil {
		cfg.StoreDriver = *jc.StoreDriver
	}
	if jc.StorePath != nil {
		cfg.StorePath = *jc.StorePath
	}
	if jc.HashScheme != nil {
		cfg.HashScheme = *jc.HashScheme
	}
	if jc.SeedDemoData != nil {
		cfg.SeedDemoData = *jc.SeedDemoData
	}
	if jc.ClipboardEnabled != nil {
		cfg.ClipboardEnabled = *jc.ClipboardEnabled
	}
	if jc.ClipboardClearAfter != nil {
		cfg.ClipboardClearAfter = jc.ClipboardClearAfter.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
