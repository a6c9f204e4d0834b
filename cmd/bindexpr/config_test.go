package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".bindexpr.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "max_depth: 8\noutput: json\n")
	cfg, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, 8, cfg.MaxDepth)
	assert.Equal(t, OutputJSON, cfg.Output)
}

func TestLoadConfigPartial(t *testing.T) {
	path := writeConfig(t, "max_depth: 4\n")
	cfg, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, 4, cfg.MaxDepth)
	assert.Equal(t, OutputPlain, cfg.Output)
}

func TestLoadConfigInvalidOutput(t *testing.T) {
	path := writeConfig(t, "output: xml\n")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigNegativeDepth(t *testing.T) {
	path := writeConfig(t, "max_depth: -1\n")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	path := writeConfig(t, "max_depth: [not a number\n")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}
