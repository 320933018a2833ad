package internal

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingWritesDefaults(t *testing.T) {
	paths := Paths{Root: t.TempDir()}

	cfg, err := LoadConfig(paths)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	// the defaults must now exist on disk
	_, err = os.Stat(paths.ConfigPath())
	assert.NoError(t, err)

	reloaded, err := LoadConfig(paths)
	require.NoError(t, err)
	assert.Equal(t, cfg, reloaded)
}

func TestLoadConfigExisting(t *testing.T) {
	paths := Paths{Root: t.TempDir()}
	require.NoError(t, paths.EnsureRoot())

	custom := `{"categories":["work","life"],"default_category":"work","tags_enabled":false,"max_tags":2,"export_formats":["json"]}`
	require.NoError(t, os.WriteFile(paths.ConfigPath(), []byte(custom), 0644))

	cfg, err := LoadConfig(paths)
	require.NoError(t, err)
	assert.Equal(t, []string{"work", "life"}, cfg.Categories)
	assert.Equal(t, "work", cfg.DefaultCategory)
	assert.False(t, cfg.TagsEnabled)
	assert.Equal(t, 2, cfg.MaxTags)
	assert.Equal(t, []string{"json"}, cfg.ExportFormats)
}

func TestLoadConfigMalformed(t *testing.T) {
	paths := Paths{Root: t.TempDir()}
	require.NoError(t, paths.EnsureRoot())
	require.NoError(t, os.WriteFile(paths.ConfigPath(), []byte("not json"), 0644))

	_, err := LoadConfig(paths)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "restore defaults")
}

func TestConfigHasCategory(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.HasCategory("coding"))
	assert.False(t, cfg.HasCategory("gardening"))
}

func TestConfigAllowsFormat(t *testing.T) {
	cfg := &Config{ExportFormats: []string{"json", "csv"}}
	assert.True(t, cfg.AllowsFormat("csv"))
	assert.False(t, cfg.AllowsFormat("markdown"))
	assert.False(t, cfg.AllowsFormat("xml"))
}
