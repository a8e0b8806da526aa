package lifecycle

import (
	"context"
)

// Merger defines the interface for combining per-source taxon tables into
// the single cross_taxons table with rank and source rankings attached.
//
// Merging always rebuilds from scratch:
// - Drops source_ranking, taxonranks and cross_taxons
// - Recreates them and re-seeds the rankings
// - Ensures ranking changes are applied even when data hasn't changed
type Merger interface {
	// Merge fills taxon labels from parsed scientific names, copies every
	// taxon_* table into cross_taxons, and resolves rank ids, source ids
	// and kingdoms.
	Merge(ctx context.Context) error
}
