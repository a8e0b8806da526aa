package iomerge

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/gndwca/pkg/parserpool"
	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"
)

type labelRow struct {
	id         int64
	name, auth string
}

// scratchTable names the transient label table outside the taxon_
// namespace. A merge run killed mid-fill leaves the scratch table behind;
// it must never match the source discovery pattern of the next run.
func scratchTable(table string) string {
	return "labels_scratch_" + table
}

// fillLabels rewrites the label column of one taxon table with the
// canonical form of its scientific names. Names go through pooled
// gnparser instances; names gnparser cannot handle fall back to the
// scientific name with the authorship stripped.
//
// Parsed labels are bulk-loaded into an unlogged scratch table by a
// bounded worker pool, then applied with a single UPDATE ... FROM.
func (m *merger) fillLabels(
	ctx context.Context,
	table string,
	parsers parserpool.Pool,
	code nomcode.Code,
) error {
	cols, err := m.tableColumns(ctx, table)
	if err != nil {
		return err
	}
	if !cols["scientificname"] {
		slog.Warn("Table has no scientificname column, labels not filled",
			"table", table)
		return nil
	}

	pool := m.op.Pool()
	tbl := pgx.Identifier{table}.Sanitize()

	var total int64
	err = pool.QueryRow(ctx,
		"SELECT count(*) FROM "+tbl).Scan(&total)
	if err != nil {
		return LabelsError(table, err)
	}
	if total == 0 {
		return nil
	}

	scratch := scratchTable(table)
	scratchID := pgx.Identifier{scratch}.Sanitize()
	_, err = pool.Exec(ctx, fmt.Sprintf(
		"DROP TABLE IF EXISTS %s; CREATE UNLOGGED TABLE %s (id bigint, label text)",
		scratchID, scratchID))
	if err != nil {
		return TempTableError(scratch, err)
	}
	defer pool.Exec(ctx, "DROP TABLE IF EXISTS "+scratchID)

	authExpr := "''"
	if cols["scientificnameauthorship"] {
		authExpr = "COALESCE(scientificnameauthorship, '')"
	}

	rows, err := pool.Query(ctx, fmt.Sprintf(
		"SELECT id, COALESCE(scientificname, ''), %s FROM %s",
		authExpr, tbl))
	if err != nil {
		return LabelsError(table, err)
	}
	defer rows.Close()

	bar := pb.Full.Start64(total)
	bar.Set("prefix", table+" labels ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	var g errgroup.Group
	g.SetLimit(m.cfg.JobsNumber)

	dispatch := func(batch []labelRow) {
		g.Go(func() error {
			out := make([][]any, len(batch))
			for i, r := range batch {
				label, err := parsers.Canonical(r.name, code)
				if err != nil || label == "" {
					label = strings.TrimSpace(
						strings.ReplaceAll(r.name, r.auth, ""))
				}
				out[i] = []any{r.id, label}
			}
			_, err := pool.CopyFrom(ctx,
				pgx.Identifier{scratch},
				[]string{"id", "label"},
				pgx.CopyFromRows(out),
			)
			if err != nil {
				return LabelsError(table, err)
			}
			bar.Add(len(out))
			return nil
		})
	}

	batchSize := m.cfg.Database.BatchSize
	batch := make([]labelRow, 0, batchSize)
	for rows.Next() {
		var r labelRow
		if err = rows.Scan(&r.id, &r.name, &r.auth); err != nil {
			return LabelsError(table, err)
		}
		batch = append(batch, r)
		if len(batch) == batchSize {
			dispatch(batch)
			batch = make([]labelRow, 0, batchSize)
		}
	}
	if err = rows.Err(); err != nil {
		return LabelsError(table, err)
	}
	if len(batch) > 0 {
		dispatch(batch)
	}

	if err = g.Wait(); err != nil {
		return err
	}

	_, err = pool.Exec(ctx, fmt.Sprintf(
		"UPDATE %s t SET label = l.label FROM %s l WHERE t.id = l.id",
		tbl, scratchID))
	if err != nil {
		return LabelsError(table, err)
	}

	return nil
}
