package iodwca_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gndwca/internal/iodwca"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "taxa.txt")
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)
	return path
}

func TestLineSourceStreaming(t *testing.T) {
	path := writeInput(t, "alpha\nbeta\ngamma\n")
	src, err := iodwca.OpenLineSource(path)
	require.NoError(t, err)
	defer src.Close()

	type pair struct {
		offset int64
		line   string
	}
	var got []pair
	for {
		offset, line, err := src.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, pair{offset, line})
	}

	assert.Equal(t, []pair{
		{0, "alpha"},
		{6, "beta"},
		{11, "gamma"},
	}, got)
	assert.Equal(t, 3, src.LinesRead())
}

func TestLineSourceNoTrailingNewline(t *testing.T) {
	path := writeInput(t, "alpha\nbeta")
	src, err := iodwca.OpenLineSource(path)
	require.NoError(t, err)
	defer src.Close()

	_, line, err := src.Next()
	require.NoError(t, err)
	assert.Equal(t, "alpha", line)

	offset, line, err := src.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(6), offset)
	assert.Equal(t, "beta", line)

	_, _, err = src.Next()
	assert.Equal(t, io.EOF, err)
}

func TestLineSourceCRLF(t *testing.T) {
	path := writeInput(t, "alpha\r\nbeta\r\n")
	src, err := iodwca.OpenLineSource(path)
	require.NoError(t, err)
	defer src.Close()

	_, line, err := src.Next()
	require.NoError(t, err)
	assert.Equal(t, "alpha", line, "carriage returns stripped")

	offset, _, err := src.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(7), offset, "offset accounts for CRLF")
}

func TestLineSourceReadAt(t *testing.T) {
	path := writeInput(t, "alpha\nbeta\ngamma\n")
	src, err := iodwca.OpenLineSource(path)
	require.NoError(t, err)
	defer src.Close()

	line, err := src.ReadAt(6)
	require.NoError(t, err)
	assert.Equal(t, "beta", line)

	// Offsets are addressable in any order.
	line, err = src.ReadAt(0)
	require.NoError(t, err)
	assert.Equal(t, "alpha", line)

	// At or past EOF there is no line.
	_, err = src.ReadAt(17)
	assert.Equal(t, io.EOF, err)
}

func TestLineSourceOffsetsStableAcrossHandles(t *testing.T) {
	path := writeInput(t, "alpha\nbeta\ngamma\n")

	src, err := iodwca.OpenLineSource(path)
	require.NoError(t, err)
	var offsets []int64
	for {
		offset, _, err := src.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		offsets = append(offsets, offset)
	}
	src.Close()

	reread, err := iodwca.OpenLineSource(path)
	require.NoError(t, err)
	defer reread.Close()

	want := []string{"alpha", "beta", "gamma"}
	for i, offset := range offsets {
		line, err := reread.ReadAt(offset)
		require.NoError(t, err)
		assert.Equal(t, want[i], line)
	}
}

func TestOpenLineSourceMissing(t *testing.T) {
	_, err := iodwca.OpenLineSource("/no/such/file")
	assert.Error(t, err)
}
