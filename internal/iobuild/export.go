package iobuild

import (
	"context"
	"log/slog"
	"sync"

	"github.com/gnames/gndwca/internal/iodwca"
	"github.com/gnames/gndwca/pkg/config"
	"github.com/gnames/gndwca/pkg/db"
	"github.com/gnames/gndwca/pkg/schema"
	"github.com/gnames/gndwca/pkg/taxtree"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"
)

// exporter flushes the finished, immutable tree to the per-source taxon
// table. One producer goroutine walks the nodes in insertion order,
// re-reads each source row by its stored byte offset and accumulates
// batches; full batches go to a bounded pool of load workers. The producer
// never waits for a batch to land before building the next one.
type exporter struct {
	cfg   *config.Config
	op    db.Operator
	tree  *taxtree.Tree
	src   *iodwca.LineSource
	cols  []schema.Column
	table string

	mu       sync.Mutex
	failed   int
	firstErr error
}

func newExporter(
	cfg *config.Config,
	op db.Operator,
	tree *taxtree.Tree,
	src *iodwca.LineSource,
	cols []schema.Column,
) *exporter {
	return &exporter{
		cfg:   cfg,
		op:    op,
		tree:  tree,
		src:   src,
		cols:  cols,
		table: cfg.Import.Table,
	}
}

func (e *exporter) run(ctx context.Context, res *BuildResult) error {
	pool := e.op.Pool()

	if _, err := pool.Exec(
		ctx, schema.TaxonTableDDL(e.table, e.cols)); err != nil {
		return CreateTableError(e.table, err)
	}
	if _, err := pool.Exec(
		ctx, schema.TaxonIndexDDL(e.table)); err != nil {
		return CreateIndexError(e.table, err)
	}

	columns := schema.ExportColumns(e.cols)
	dec := iodwca.NewDecoder(e.cfg.Import.Delimiter, 0)

	var g errgroup.Group
	g.SetLimit(e.cfg.JobsNumber)

	bar := newProgressBar(e.tree.Len(), "Exporting ")
	batchSize := e.cfg.Database.BatchSize
	batch := make([][]any, 0, batchSize)

	for _, id := range e.tree.NodeIDs() {
		node, _ := e.tree.Lookup(id)

		line, err := e.src.ReadAt(node.Offset)
		if err != nil {
			bar.Finish()
			return ExportError(node.ID, node.Offset, err)
		}
		rec, err := dec.Decode(line, node.Offset, 1)
		if err != nil {
			bar.Finish()
			return ExportError(node.ID, node.Offset, err)
		}

		batch = append(batch, exportRow(node, rec.Fields, e.cols))
		bar.Increment()

		if len(batch) == batchSize {
			e.dispatch(ctx, &g, columns, batch)
			batch = make([][]any, 0, batchSize)
		}
	}
	if len(batch) > 0 {
		e.dispatch(ctx, &g, columns, batch)
	}

	// The run is complete only when every dispatched batch finished.
	g.Wait()
	bar.Finish()

	res.BatchesFailed = e.failed
	res.FirstBatchErr = e.firstErr
	return nil
}

// dispatch hands a batch to the worker pool. It blocks only when all
// workers are busy; pool capacity is the sole backpressure. A failed batch
// is recorded and logged, never aborts sibling batches.
func (e *exporter) dispatch(
	ctx context.Context,
	g *errgroup.Group,
	columns []string,
	batch [][]any,
) {
	g.Go(func() error {
		_, err := e.op.Pool().CopyFrom(
			ctx,
			pgx.Identifier{e.table},
			columns,
			pgx.CopyFromRows(batch),
		)
		if err != nil {
			slog.Error("Batch load failed",
				"table", e.table, "rows", len(batch), "error", err)
			e.mu.Lock()
			e.failed++
			if e.firstErr == nil {
				e.firstErr = err
			}
			e.mu.Unlock()
		}
		return nil
	})
}

// exportRow joins a node with its re-read source fields into one row laid
// out per schema.ExportColumns: sequence id, the derived data columns, and
// the two classification arrays. Fields missing at the end of a short row
// become NULLs.
func exportRow(
	node *taxtree.Node,
	fields []string,
	cols []schema.Column,
) []any {
	row := make([]any, 0, len(cols)+3)
	row = append(row, int64(node.SeqID))

	for _, col := range cols {
		if col.FieldPos < len(fields) {
			row = append(row, fields[col.FieldPos])
		} else {
			row = append(row, nil)
		}
	}

	parents := node.Lineage
	if parents == nil {
		parents = []string{}
	}
	ids := make([]int32, len(node.LineageIDs))
	for i, v := range node.LineageIDs {
		ids[i] = int32(v)
	}
	return append(row, parents, ids)
}
