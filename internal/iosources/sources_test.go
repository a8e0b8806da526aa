package iosources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gndwca/internal/iofs"
	"github.com/gnames/gndwca/internal/iotesting"
	"github.com/gnames/gndwca/pkg/config"
	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSources(t *testing.T, cfg *config.Config, content string) {
	t.Helper()
	dir := config.ConfigDir(cfg.HomeDir)
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, "sources.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad(t *testing.T) {
	cfg := iotesting.GetTestConfig(t)
	writeSources(t, cfg, `
sources:
  - key: col
    title: Catalogue of Life
    for_zoology: 1
    for_botany: 4
    for_mycology: 4
    general: 1
  - key: worms
    title: World Register of Marine Species
    code: zoological
    for_zoology: 2
    for_botany: 7
    for_mycology: 7
    general: 5
`)

	reg, err := New(cfg).Load()
	require.NoError(t, err)
	require.Len(t, reg.Sources, 2)

	col, ok := reg.Find("col")
	require.True(t, ok)
	assert.Equal(t, "Catalogue of Life", col.Title)
	assert.Equal(t, "taxon_col", col.TableName())
	assert.Empty(t, reg.Warnings)
}

// The embedded default registry must load cleanly with the original
// eight sources in ranking order.
func TestLoadDefaultRegistry(t *testing.T) {
	cfg := iotesting.GetTestConfig(t)
	writeSources(t, cfg, iofs.SourcesYAML)

	reg, err := New(cfg).Load()
	require.NoError(t, err)
	assert.Empty(t, reg.Warnings)

	var keys []string
	for _, s := range reg.Sources {
		keys = append(keys, s.Key)
	}
	assert.Equal(t,
		[]string{"worms", "col", "sfp", "gbif", "ncbi", "zoobank", "wfo", "ipni"},
		keys)

	worms, _ := reg.Find("worms")
	assert.Equal(t, nomcode.Zoological, worms.NomCode())
	col, _ := reg.Find("col")
	assert.Equal(t, nomcode.Botanical, col.NomCode())
}

func TestLoadMissingFile(t *testing.T) {
	cfg := iotesting.GetTestConfig(t)
	_, err := New(cfg).Load()
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	cfg := iotesting.GetTestConfig(t)
	writeSources(t, cfg, "sources: [not: valid: yaml")

	_, err := New(cfg).Load()
	assert.Error(t, err)
}

func TestLoadInvalidSource(t *testing.T) {
	cfg := iotesting.GetTestConfig(t)
	writeSources(t, cfg, `
sources:
  - key: Bad Key
    title: broken
`)

	_, err := New(cfg).Load()
	assert.Error(t, err)
}

func TestLoadWarnings(t *testing.T) {
	cfg := iotesting.GetTestConfig(t)
	writeSources(t, cfg, `
sources:
  - key: custom
`)

	reg, err := New(cfg).Load()
	require.NoError(t, err)
	assert.NotEmpty(t, reg.Warnings)
}
