package lifecycle

import (
	"context"
)

// Builder defines the interface for the taxon import phase.
// A build run reads a DwCA taxon file, reconstructs the taxonomic
// hierarchy in memory, and bulk-loads one table per data source.
//
// A build always starts from the input file:
// - Re-reads the whole taxon file even when the table already exists
// - Rows that cannot be attached to the hierarchy are retried once and
//   then dropped with their byte offsets reported
// - The run fails (non-nil error) when any load batch fails, after all
//   batches were given the chance to complete
type Builder interface {
	// Build runs the import: streaming read, hierarchy resolution with a
	// single retry pass, and concurrent bulk export to PostgreSQL.
	Build(ctx context.Context) error
}
