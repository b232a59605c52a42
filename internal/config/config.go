package config

import "time"

// Config holds runtime settings for the Lockbox CLI.
//
// Fields:
//   - StoreDriver: persistence backend, one of "sqlite", "file", "memory".
//   - StorePath: database or JSON file path for the sqlite/file drivers.
//   - HashScheme: master-password hashing scheme, "legacy" or "bcrypt".
//   - SeedDemoData: whether a first login seeds example credentials.
//   - ClipboardEnabled: whether copy commands touch the system clipboard.
//   - ClipboardClearAfter: how long a copied secret stays on the clipboard
//     before it is wiped; zero disables the wipe.
//   - LogLevel: minimum level for diagnostic output.
type Config struct {
	StoreDriver         string
	StorePath           string
	HashScheme          string
	SeedDemoData        bool
	ClipboardEnabled    bool
	ClipboardClearAfter time.Duration
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StoreDriver = "sqlite"
	c.StorePath = "lockbox.db"
	c.HashScheme = "legacy"
	c.SeedDemoData = true
	c.ClipboardEnabled = true
	c.ClipboardClearAfter = 30 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
