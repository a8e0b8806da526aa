package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirs(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, EnsureDirs(tmpDir))

	dirs := []string{
		filepath.Join(tmpDir, ".config", "gndwca"),
		filepath.Join(tmpDir, ".cache", "gndwca"),
		filepath.Join(tmpDir, ".cache", "gndwca", "dwca"),
		filepath.Join(tmpDir, ".local", "share", "gndwca", "logs"),
	}
	for _, dir := range dirs {
		info, err := os.Stat(dir)
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
		assert.Equal(t, os.FileMode(0755), info.Mode().Perm(), dir)
	}

	// idempotent
	assert.NoError(t, EnsureDirs(tmpDir))
}

func TestTouchDir(t *testing.T) {
	tmpDir := t.TempDir()
	newDir := filepath.Join(tmpDir, "test", "subdir")

	require.NoError(t, touchDir(newDir))
	info, err := os.Stat(newDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// existing directory is left alone
	require.NoError(t, touchDir(newDir))
}

func TestEnsureConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))
	require.NoError(t, EnsureConfigFile(tmpDir))

	configPath := filepath.Join(tmpDir, ".config", "gndwca", "config.yaml")
	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, ConfigYAML, string(content))

	// an existing file is never overwritten
	custom := "# Custom config\ndatabase:\n  host: myhost"
	require.NoError(t, os.WriteFile(configPath, []byte(custom), 0644))
	require.NoError(t, EnsureConfigFile(tmpDir))

	content, err = os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, custom, string(content))
}

func TestEnsureSourcesFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))
	require.NoError(t, EnsureSourcesFile(tmpDir))

	sourcesPath := filepath.Join(tmpDir, ".config", "gndwca", "sources.yaml")
	content, err := os.ReadFile(sourcesPath)
	require.NoError(t, err)
	assert.Equal(t, SourcesYAML, string(content))

	custom := "# Custom sources\nsources:\n  - key: custom"
	require.NoError(t, os.WriteFile(sourcesPath, []byte(custom), 0644))
	require.NoError(t, EnsureSourcesFile(tmpDir))

	content, err = os.ReadFile(sourcesPath)
	require.NoError(t, err)
	assert.Equal(t, custom, string(content))
}

func TestEmbeddedTemplates(t *testing.T) {
	assert.Contains(t, ConfigYAML, "database")
	assert.Contains(t, ConfigYAML, "log")
	assert.Contains(t, ConfigYAML, "import")

	assert.Contains(t, SourcesYAML, "sources:")
	assert.Contains(t, SourcesYAML, "Catalogue of Life")
	assert.Contains(t, SourcesYAML, "for_mycology")
}
