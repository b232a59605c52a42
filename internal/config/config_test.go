package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "sqlite", c.StoreDriver)
	assert.Equal(t, "lockbox.db", c.StorePath)
	assert.Equal(t, "legacy", c.HashScheme)
	assert.True(t, c.SeedDemoData)
	assert.True(t, c.ClipboardEnabled)
	assert.Equal(t, 30*time.Second, c.ClipboardClearAfter)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.Equal(t, "legacy", cfg.HashScheme)
}

func TestJsonConfig_PartialOverride(t *testing.T) {
	data := []byte(`{"store_driver": "file", "clipboard_clear_after": "5s"}`)

	var jc JsonConfig
	require.NoError(t, json.Unmarshal(data, &jc))

	var cfg Config
	cfg.LoadDefaults()

	if jc.StoreDriver != nil {
		cfg.StoreDriver = *jc.StoreDriver
	}
	if jc.ClipboardClearAfter != nil {
		cfg.ClipboardClearAfter = jc.ClipboardClearAfter.Duration
	}

	assert.Equal(t, "file", cfg.StoreDriver)
	assert.Equal(t, 5*time.Second, cfg.ClipboardClearAfter)
	// untouched fields keep their defaults
	assert.Equal(t, "lockbox.db", cfg.StorePath)
	assert.True(t, cfg.SeedDemoData)
}
