package iobuild

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/gnames/gndwca/internal/iodwca"
	"github.com/gnames/gndwca/pkg/config"
	"github.com/gnames/gndwca/pkg/db"
	"github.com/gnames/gndwca/pkg/lifecycle"
	"github.com/gnames/gndwca/pkg/schema"
	"github.com/google/uuid"
)

type builder struct {
	cfg *config.Config
	op  db.Operator
}

// New creates the build-phase implementation of lifecycle.Builder.
func New(cfg *config.Config, op db.Operator) lifecycle.Builder {
	return &builder{cfg: cfg, op: op}
}

// Build runs the import end to end: input resolution, the sequential
// tree-building pass, the single retry pass over deferred rows, and the
// concurrent export of the finished tree to PostgreSQL.
func (b *builder) Build(ctx context.Context) error {
	started := time.Now()
	res := &BuildResult{RunID: uuid.New(), Table: b.cfg.Import.Table}

	path, err := iodwca.ResolveInput(b.cfg)
	if err != nil {
		return err
	}

	src, err := iodwca.OpenLineSource(path)
	if err != nil {
		return err
	}
	defer src.Close()

	dec := iodwca.NewDecoder(
		b.cfg.Import.Delimiter, b.cfg.Import.HeaderLines)
	r := newResolver()

	if err = b.resolvePass(src, dec, r, res); err != nil {
		return err
	}
	b.retryPass(src, dec, r, res)

	res.NodesInserted = r.tree.Len()
	res.Dropped = r.dropped

	slugs := dec.HeaderSlugs()
	if len(slugs) == 0 {
		return NoHeadersError(path)
	}
	cols := schema.DeriveColumns(slugs)

	exp := newExporter(b.cfg, b.op, r.tree, src, cols)
	if err = exp.run(ctx, res); err != nil {
		return err
	}

	res.Elapsed = time.Since(started)
	b.report(res)

	if res.BatchesFailed > 0 {
		return BatchError(res.BatchesFailed, res.FirstBatchErr)
	}
	return nil
}

// resolvePass streams the whole file once in order. I/O failures are
// fatal; rows that cannot be decoded are dropped, rows that cannot be
// attached yet are deferred.
func (b *builder) resolvePass(
	src *iodwca.LineSource,
	dec *iodwca.Decoder,
	r *resolver,
	res *BuildResult,
) error {
	prog := newRowProgress()
	var lineNum int
	for {
		offset, line, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		lineNum++

		rec, err := dec.Decode(line, offset, lineNum)
		if err != nil {
			slog.Warn("Cannot decode row",
				"line", lineNum, "offset", offset, "error", err)
			r.drop(offset)
			continue
		}
		r.process(rec, false)
		prog.tick()
	}
	prog.clear()

	res.RowsRead = lineNum
	return nil
}

// retryPass replays every deferred offset exactly once through the same
// resolution steps. Rows that fail again are permanently dropped.
func (b *builder) retryPass(
	src *iodwca.LineSource,
	dec *iodwca.Decoder,
	r *resolver,
	res *BuildResult,
) {
	deferred := r.takeDeferred()
	if len(deferred) == 0 {
		return
	}
	slog.Info("Retrying deferred rows", "count", len(deferred))

	// Any line number past the headers marks the record as data.
	dataLine := b.cfg.Import.HeaderLines + 1

	for _, offset := range deferred {
		line, err := src.ReadAt(offset)
		if err != nil {
			slog.Warn("Cannot re-read deferred row",
				"offset", offset, "error", err)
			r.drop(offset)
			continue
		}
		rec, err := dec.Decode(line, offset, dataLine)
		if err != nil {
			r.drop(offset)
			continue
		}
		if r.process(rec, true) == outcomeInserted {
			res.Recovered++
		}
	}
}
