// Package iobuild implements the build phase: it streams a DwCA taxon
// file, reconstructs the taxonomic hierarchy in memory and bulk-loads the
// flattened result into a per-source PostgreSQL table.
//
// Resolution is strictly single-goroutine and order-dependent: sequence ids
// and the parent-before-child invariant both rely on one deterministic
// processing order. Only the export batches run concurrently.
package iobuild

import (
	"strings"

	"github.com/gnames/gndwca/internal/iodwca"
	"github.com/gnames/gndwca/pkg/taxtree"
)

// outcome classifies what happened to one record. Resolution is driven by
// these values, not by error control flow.
type outcome int

const (
	outcomeInserted outcome = iota
	outcomeHeader
	outcomeDeferred
	outcomeDropped
)

// resolver consumes decoded records in order and grows the taxon tree.
// Rows that reference a parent or accepted name not seen yet are deferred
// by byte offset; the builder replays them exactly once after the
// sequential pass.
type resolver struct {
	tree     *taxtree.Tree
	deferred []int64
	dropped  []int64
}

func newResolver() *resolver {
	return &resolver{tree: taxtree.New()}
}

// process resolves one record. With retry true a failure is final: the
// record moves to the dropped list instead of being deferred again.
func (r *resolver) process(rec iodwca.Record, retry bool) outcome {
	if rec.Header {
		return outcomeHeader
	}
	if len(rec.Fields) < 3 || rec.Fields[iodwca.FieldTaxonID] == "" {
		// Malformed rows can never resolve; they skip deferral.
		r.dropped = append(r.dropped, rec.Offset)
		return outcomeDropped
	}

	label := rec.Fields[iodwca.FieldTaxonID]
	id := strings.ToLower(label)
	parentID := strings.ToLower(rec.Fields[iodwca.FieldParentID])
	acceptedID := strings.ToLower(rec.Fields[iodwca.FieldAcceptedID])

	if acceptedID != "" {
		// A synonym is filed as a sibling of its accepted name, so
		// the effective parent is the accepted node's parent.
		accepted, ok := r.tree.Lookup(acceptedID)
		if !ok {
			return r.fail(rec.Offset, retry)
		}
		parentID = accepted.ParentID
	}

	if parentID == "" {
		parentID = taxtree.RootID
	}

	if _, err := r.tree.Insert(id, parentID, label, rec.Offset); err != nil {
		return r.fail(rec.Offset, retry)
	}
	return outcomeInserted
}

func (r *resolver) fail(offset int64, retry bool) outcome {
	if retry {
		r.dropped = append(r.dropped, offset)
		return outcomeDropped
	}
	r.deferred = append(r.deferred, offset)
	return outcomeDeferred
}

// drop sends an offset straight to the dropped list, used when a deferred
// row cannot even be re-read or re-decoded.
func (r *resolver) drop(offset int64) {
	r.dropped = append(r.dropped, offset)
}

// takeDeferred hands out the deferred offsets in encounter order and
// resets the list, so the retry pass consumes each offset exactly once.
func (r *resolver) takeDeferred() []int64 {
	res := r.deferred
	r.deferred = nil
	return res
}
