package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pproenca/skai-sub000/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		input := []byte(`target: project
package_managers: true
theme: dark
`)
		cfg, err := config.Parse(input)
		require.NoError(t, err)
		assert.Equal(t, "project", cfg.Target)
		assert.True(t, cfg.PackageManagers)
		assert.Equal(t, "dark", cfg.Theme)
	})

	t.Run("empty config gets defaults", func(t *testing.T) {
		cfg, err := config.Parse([]byte(``))
		require.NoError(t, err)
		assert.Equal(t, "auto", cfg.Theme)
		assert.Empty(t, cfg.Target)
		assert.False(t, cfg.PackageManagers)
	})

	t.Run("invalid theme", func(t *testing.T) {
		_, err := config.Parse([]byte(`theme: solarized`))
		assert.Error(t, err)
	})

	t.Run("invalid target", func(t *testing.T) {
		_, err := config.Parse([]byte(`target: everywhere`))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := config.Parse([]byte(`{{{`))
		assert.Error(t, err)
	})
}

func TestMarshalConfig(t *testing.T) {
	cfg := config.Config{Target: "global", PackageManagers: true, Theme: "light"}

	data, err := config.Marshal(cfg)
	require.NoError(t, err)

	parsed, err := config.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, parsed)
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("target: global\ntheme: light\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "global", cfg.Target)
	assert.Equal(t, "light", cfg.Theme)
}

func TestLoadMalformedFileIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: [oops"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	assert.Equal(t, config.Config{Theme: "auto"}, config.Default())
}
