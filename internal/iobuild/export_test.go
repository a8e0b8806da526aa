package iobuild

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gndwca/internal/iodb"
	"github.com/gnames/gndwca/internal/iodwca"
	"github.com/gnames/gndwca/internal/iotesting"
	"github.com/gnames/gndwca/pkg/config"
	"github.com/gnames/gndwca/pkg/db"
	"github.com/gnames/gndwca/pkg/errcode"
	"github.com/gnames/gndwca/pkg/schema"
	"github.com/gnames/gndwca/pkg/taxtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportRow(t *testing.T) {
	cols := []schema.Column{
		{Name: "taxonid", FieldPos: 0},
		{Name: "scientificname", FieldPos: 3},
	}
	node := &taxtree.Node{
		Label:      "C",
		SeqID:      3,
		Lineage:    []string{"B", "A"},
		LineageIDs: []int{2, 1},
	}
	fields := []string{"C", "B", "", "Carex pauciflora"}

	row := exportRow(node, fields, cols)
	require.Len(t, row, len(cols)+3, "id + data columns + two arrays")
	assert.Equal(t, int64(3), row[0])
	assert.Equal(t, "C", row[1])
	assert.Equal(t, "Carex pauciflora", row[2])
	assert.Equal(t, []string{"B", "A"}, row[3])
	assert.Equal(t, []int32{2, 1}, row[4])
}

func TestExportRowShort(t *testing.T) {
	cols := []schema.Column{
		{Name: "taxonid", FieldPos: 0},
		{Name: "remarks", FieldPos: 5},
	}
	node := &taxtree.Node{Label: "A", SeqID: 1}

	row := exportRow(node, []string{"A"}, cols)
	require.Len(t, row, 5)
	assert.Equal(t, "A", row[1])
	assert.Nil(t, row[2], "missing trailing fields become NULLs")
	assert.Equal(t, []string{}, row[3], "root children get empty, not NULL, parents")
	assert.Equal(t, []int32{}, row[4])
}

// exportTree resolves rowCount root children from a generated file and
// exports the finished tree through the full batch pipeline.
func exportTree(
	t *testing.T,
	ctx context.Context,
	cfg *config.Config,
	op db.Operator,
	rowCount int,
) *BuildResult {
	t.Helper()

	var sb strings.Builder
	sb.WriteString(testHeader)
	for i := 1; i <= rowCount; i++ {
		fmt.Fprintf(&sb, "N%d\t\t\tnote %d\n", i, i)
	}

	path := filepath.Join(t.TempDir(), "taxa.txt")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0644))

	src, err := iodwca.OpenLineSource(path)
	require.NoError(t, err)
	t.Cleanup(func() { src.Close() })

	b := &builder{cfg: cfg, op: op}
	dec := iodwca.NewDecoder("\t", 1)
	r := newResolver()
	res := &BuildResult{Table: cfg.Import.Table}

	require.NoError(t, b.resolvePass(src, dec, r, res))
	b.retryPass(src, dec, r, res)
	require.Equal(t, rowCount, r.tree.Len())

	cols := schema.DeriveColumns(dec.HeaderSlugs())
	exp := newExporter(cfg, op, r.tree, src, cols)
	require.NoError(t, exp.run(ctx, res))
	return res
}

func TestExportRunBatches(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	cfg := iotesting.GetTestConfig(t)
	cfg.Database.BatchSize = 2
	cfg.JobsNumber = 2

	op := iodb.NewPgxOperator()
	require.NoError(t, op.EnsureDatabase(ctx, &cfg.Database))
	require.NoError(t, op.Connect(ctx, &cfg.Database))
	defer op.Close()

	tests := []struct {
		msg   string
		table string
		rows  int
	}{
		{"remainder batch flushes", "taxon_exp_rem", 5},
		{"exact multiple of batch size", "taxon_exp_full", 4},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			cfg.Import.Table = tt.table
			require.NoError(t, op.DropTables(ctx, tt.table))

			res := exportTree(t, ctx, cfg, op, tt.rows)
			assert.Zero(t, res.BatchesFailed)
			assert.NoError(t, res.FirstBatchErr)

			var n int
			err := op.Pool().QueryRow(ctx,
				"SELECT count(*) FROM "+tt.table).Scan(&n)
			require.NoError(t, err)
			assert.Equal(t, tt.rows, n, "every dispatched batch landed")
		})
	}
}

func TestExportRunRecordsFailedBatches(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	cfg := iotesting.GetTestConfig(t)
	cfg.Database.BatchSize = 2
	cfg.JobsNumber = 2
	cfg.Import.Table = "taxon_exp_bad"

	op := iodb.NewPgxOperator()
	require.NoError(t, op.EnsureDatabase(ctx, &cfg.Database))
	require.NoError(t, op.Connect(ctx, &cfg.Database))
	defer op.Close()

	// A pre-existing table missing most export columns makes every
	// CopyFrom batch fail while table and index creation still succeed.
	require.NoError(t, op.DropTables(ctx, cfg.Import.Table))
	_, err := op.Pool().Exec(ctx,
		"CREATE TABLE taxon_exp_bad (id bigint, taxonid character varying)")
	require.NoError(t, err)

	res := exportTree(t, ctx, cfg, op, 5)
	assert.Equal(t, 3, res.BatchesFailed,
		"two full batches and the remainder all fail")
	require.Error(t, res.FirstBatchErr)

	runErr := BatchError(res.BatchesFailed, res.FirstBatchErr)
	var gnErr *gn.Error
	require.ErrorAs(t, runErr, &gnErr)
	assert.Equal(t, errcode.BuildBatchError, gnErr.Code)
}
