// Package iomerge implements the merge phase: it rebuilds the
// cross-source cross_taxons table from every per-source taxon table,
// fills canonical labels with gnparser and resolves rank, source and
// kingdom references.
package iomerge

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/gndwca/internal/ioschema"
	"github.com/gnames/gndwca/internal/iosources"
	"github.com/gnames/gndwca/pkg/config"
	"github.com/gnames/gndwca/pkg/db"
	"github.com/gnames/gndwca/pkg/lifecycle"
	"github.com/gnames/gndwca/pkg/parserpool"
	"github.com/gnames/gndwca/pkg/sources"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/jackc/pgx/v5"
)

type merger struct {
	cfg *config.Config
	op  db.Operator
}

// New creates the merge-phase implementation of lifecycle.Merger.
func New(cfg *config.Config, op db.Operator) lifecycle.Merger {
	return &merger{cfg: cfg, op: op}
}

// Merge rebuilds the merge artifacts from scratch: drops and recreates
// source_ranking, taxonranks and cross_taxons, re-seeds the rankings,
// fills labels in every taxon_* table and copies them into cross_taxons.
func (m *merger) Merge(ctx context.Context) error {
	started := time.Now()

	if m.op.Pool() == nil {
		return NotConnectedError()
	}

	reg, err := iosources.New(m.cfg).Load()
	if err != nil {
		return err
	}

	mgr := ioschema.NewManager(m.op)
	if err = mgr.Drop(ctx); err != nil {
		return err
	}
	if err = mgr.Create(ctx); err != nil {
		return err
	}
	if err = m.seed(ctx, reg); err != nil {
		return err
	}

	tables, err := m.op.ListTables(ctx, `taxon\_%`)
	if err != nil {
		return TablesLookupError(err)
	}
	if len(tables) == 0 {
		gn.Warn("No taxon tables found, nothing to merge")
		return nil
	}
	slog.Info("Merging taxon tables", "tables", tables)

	parsers := parserpool.New(m.cfg.JobsNumber)
	defer parsers.Close()

	for _, table := range tables {
		code := tableCode(reg, table)
		if err = m.fillLabels(ctx, table, parsers, code); err != nil {
			return err
		}
		if err = m.copyTable(ctx, table); err != nil {
			return err
		}
	}

	if err = m.resolveReferences(ctx); err != nil {
		return err
	}

	gn.Info("Merged %d tables in %s",
		len(tables), gnfmt.TimeString(time.Since(started).Seconds()))
	return nil
}

// tableCode picks the nomenclatural code for a taxon table. Tables with
// no registry entry parse under the botanical code, which handles
// ambiguous names like "Aus (Bus)" most reliably.
func tableCode(reg *sources.Registry, table string) nomcode.Code {
	if src, ok := reg.ByTable(table); ok {
		return src.NomCode()
	}
	return nomcode.Botanical
}

// copyTable appends the rows of one taxon table to cross_taxons, the
// table name recorded as the source. Columns the table does not have
// become NULLs.
func (m *merger) copyTable(ctx context.Context, table string) error {
	cols, err := m.tableColumns(ctx, table)
	if err != nil {
		return err
	}

	sel := func(name string) string {
		if cols[name] {
			return pgx.Identifier{name}.Sanitize()
		}
		return "NULL"
	}

	q := fmt.Sprintf(`
		INSERT INTO cross_taxons
		(tid, taxonid, label, scientificnameauthorship, taxonrank,
		 taxonomicstatus, parents, parent_ids, source)
		SELECT id, %s, %s, %s, %s, %s, parents, parent_ids, $1
		FROM %s`,
		sel("taxonid"), sel("label"), sel("scientificnameauthorship"),
		sel("taxonrank"), sel("taxonomicstatus"),
		pgx.Identifier{table}.Sanitize(),
	)

	tag, err := m.op.Pool().Exec(ctx, q, table)
	if err != nil {
		return InsertError(table, err)
	}
	slog.Info("Copied rows to cross_taxons",
		"table", table, "rows", tag.RowsAffected())
	return nil
}

// resolveReferences runs the global updates that attach rank ids, source
// ids and kingdoms to the freshly merged rows.
func (m *merger) resolveReferences(ctx context.Context) error {
	pool := m.op.Pool()

	queries := []struct {
		name string
		sql  string
	}{
		{"taxonrank_id", `
			UPDATE cross_taxons SET taxonrank_id = tr.id
			FROM taxonranks tr
			WHERE cross_taxons.taxonrank = tr.name`},
		{"source_id", `
			UPDATE cross_taxons SET source_id = sr.id
			FROM source_ranking sr
			WHERE cross_taxons.source = sr.name`},
		{"kingdom", `
			UPDATE cross_taxons ct SET kingdom = k.kingdom
			FROM (
				SELECT ct.id, ct2.label AS kingdom
				FROM cross_taxons ct
				JOIN cross_taxons ct2
					ON ct2.tid = ANY(ct.parent_ids)
					AND ct2.source = ct.source
					AND ct2.taxonrank = 'kingdom'
			) k
			WHERE ct.id = k.id`},
	}

	for _, q := range queries {
		tag, err := pool.Exec(ctx, q.sql)
		if err != nil {
			return UpdateError(q.name, err)
		}
		slog.Info("Resolved references",
			"column", q.name, "rows", tag.RowsAffected())
	}
	return nil
}

// tableColumns returns the set of column names of a public-schema table.
func (m *merger) tableColumns(
	ctx context.Context,
	table string,
) (map[string]bool, error) {
	q := `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = 'public' AND table_name = $1
	`

	rows, err := m.op.Pool().Query(ctx, q, table)
	if err != nil {
		return nil, TablesLookupError(err)
	}
	defer rows.Close()

	cols := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, TablesLookupError(err)
		}
		cols[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, TablesLookupError(err)
	}
	return cols, nil
}
