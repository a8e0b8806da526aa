package iodwca_test

import (
	"archive/zip"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gndwca/internal/iodwca"
	"github.com/gnames/gndwca/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, input string) *config.Config {
	t.Helper()
	home := t.TempDir()
	err := os.MkdirAll(config.DownloadDir(home), 0755)
	require.NoError(t, err)

	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir(home)})
	cfg.Import.InputPath = input
	return cfg
}

func writeZip(t *testing.T, dir string, members map[string]string) string {
	t.Helper()
	path := filepath.Join(dir, "dwca.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for name, content := range members {
		member, err := w.Create(name)
		require.NoError(t, err)
		_, err = member.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return path
}

func TestResolveInputPlainFile(t *testing.T) {
	path := writeInput(t, "taxonID\tparentID\n")
	cfg := testConfig(t, path)

	res, err := iodwca.ResolveInput(cfg)
	require.NoError(t, err)
	assert.Equal(t, path, res, "plain files are used in place")
}

func TestResolveInputMissing(t *testing.T) {
	cfg := testConfig(t, "/no/such/input.txt")
	_, err := iodwca.ResolveInput(cfg)
	assert.Error(t, err)
}

func TestResolveInputZip(t *testing.T) {
	cfg := testConfig(t, "")
	archive := writeZip(t, t.TempDir(), map[string]string{
		"meta.xml":       "<archive/>",
		"data/taxon.txt": "taxonID\tparentID\nA\t\n",
	})
	cfg.Import.InputPath = archive

	res, err := iodwca.ResolveInput(cfg)
	require.NoError(t, err)
	assert.Equal(t, "taxon.txt", filepath.Base(res))

	content, err := os.ReadFile(res)
	require.NoError(t, err)
	assert.Equal(t, "taxonID\tparentID\nA\t\n", string(content))
}

func TestResolveInputZipLargestMember(t *testing.T) {
	cfg := testConfig(t, "")
	archive := writeZip(t, t.TempDir(), map[string]string{
		"small.txt": "x\n",
		"big.txt":   "taxonID\tparentID\nA\t\nB\tA\nC\tA\n",
	})
	cfg.Import.InputPath = archive

	res, err := iodwca.ResolveInput(cfg)
	require.NoError(t, err)
	assert.Equal(t, "big.txt", filepath.Base(res),
		"without a taxon.txt member the largest text file wins")
}

func TestResolveInputZipNoCore(t *testing.T) {
	cfg := testConfig(t, "")
	archive := writeZip(t, t.TempDir(), map[string]string{
		"meta.xml": "<archive/>",
	})
	cfg.Import.InputPath = archive

	_, err := iodwca.ResolveInput(cfg)
	assert.Error(t, err)
}

func TestResolveInputURL(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping network-like test in short mode")
	}

	content := "taxonID\tparentID\nA\t\n"
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(content))
		}))
	defer srv.Close()

	cfg := testConfig(t, srv.URL+"/checklist/taxa.txt")

	res, err := iodwca.ResolveInput(cfg)
	require.NoError(t, err)
	assert.Equal(t, "taxa.txt", filepath.Base(res))
	got, err := os.ReadFile(res)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}

func TestResolveInputURLNotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping network-like test in short mode")
	}

	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	cfg := testConfig(t, srv.URL+"/missing.zip")
	_, err := iodwca.ResolveInput(cfg)
	assert.Error(t, err)
}
