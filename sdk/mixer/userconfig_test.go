package mixer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadUserConfigDefaultsWhenAbsent(t *testing.T) {
	assert := assert.New(t)

	cfg, err := loadUserConfigFrom(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	assert.EqualValues(1, cfg.SchemaVersion)
	assert.Empty(cfg.AInAliases)
	assert.Empty(cfg.DInAliases)
	assert.Empty(cfg.OutAliases)
}

func TestUserConfigSaveLoadRoundTrip(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := DefaultUserConfig()
	cfg.AInAliases[0] = "Vocal Mic"
	cfg.DInAliases[1] = "S/PDIF L"
	cfg.OutAliases[7] = "Headphones R"

	require.NoError(t, cfg.saveTo(path), "save creates the directory")
	loaded, err := loadUserConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(cfg, loaded)
}

func TestLoadUserConfigRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := loadUserConfigFrom(path)
	assert.Error(t, err)
}
