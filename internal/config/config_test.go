package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nikbrunner/tagsel/internal/config"
	"github.com/nikbrunner/tagsel/internal/match"
	"github.com/nikbrunner/tagsel/internal/output"
	"gotest.tools/v3/assert"
)

func TestLoadConfig_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg, err := config.LoadConfig(path)
	assert.NilError(t, err)
	assert.DeepEqual(t, *cfg, config.DefaultConfig())

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file to be created: %v", err)
	}
}

func TestLoadConfig_FillsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(path, []byte(`{"title": "Labels", "matchMode": "fuzzy", "catalog": "labels.txt"}`), 0644)
	assert.NilError(t, err)

	cfg, err := config.LoadConfig(path)
	assert.NilError(t, err)

	defaults := config.DefaultConfig()
	assert.Equal(t, cfg.Title, "Labels")
	assert.Equal(t, cfg.MatchMode, "fuzzy")
	assert.Equal(t, cfg.Catalog, "labels.txt")
	assert.Equal(t, cfg.Placeholder, defaults.Placeholder)
	assert.Equal(t, cfg.MaxVisible, defaults.MaxVisible)
	assert.Equal(t, cfg.Width, defaults.Width)
	assert.Equal(t, cfg.Output, defaults.Output)
}

func TestLoadConfig_RejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"match mode", `{"matchMode": "regex"}`, match.ErrUnknownMode},
		{"output", `{"output": "csv"}`, output.ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			assert.NilError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := config.LoadConfig(path)
			assert.Assert(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	assert.NilError(t, os.WriteFile(path, []byte(`{`), 0644))

	_, err := config.LoadConfig(path)
	assert.ErrorContains(t, err, "parse config")
}

func TestValidate_MaxVisible(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.MaxVisible = -1
	assert.ErrorContains(t, cfg.Validate(), "maxVisible")
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := config.DefaultConfig()
	cfg.Width = 60

	assert.NilError(t, config.SaveConfig(path, &cfg))

	loaded, err := config.LoadConfig(path)
	assert.NilError(t, err)
	assert.Equal(t, loaded.Width, 60)
}
