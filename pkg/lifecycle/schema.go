package lifecycle

import (
	"context"
)

// SchemaManager defines the interface for the static merge schema.
// It uses GORM AutoMigrate for the fixed tables the merge phase writes to
// (cross_taxons, taxonranks, source_ranking). The per-source taxon tables
// are not managed here; their columns depend on the input headers and are
// created by the build phase directly.
type SchemaManager interface {
	// Create creates the merge tables and their indexes using GORM
	// AutoMigrate. Idempotent - safe to run multiple times.
	Create(ctx context.Context) error

	// Drop removes the merge tables so a merge run starts clean.
	Drop(ctx context.Context) error
}
