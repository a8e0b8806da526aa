// Package taxtree implements the in-memory taxonomic hierarchy that a build
// run reconstructs from a DwCA taxon file.
//
// The tree is insert-only: a node can be added only under an already existing
// parent, so every parent chain terminates at the synthetic root and cycles
// cannot form. Nodes carry their classification breadcrumbs, computed once at
// insert time from the (immutable) ancestor chain.
//
// This package has no I/O dependencies. Identifier case normalization is the
// caller's responsibility; the tree matches identifiers exactly.
package taxtree

import (
	"errors"
	"fmt"
)

// RootID is the identifier of the synthetic root node. It exists from
// construction, carries sequence id 0, and is never exported.
const RootID = "root"

var (
	// ErrNodeExists is returned by Insert when the identifier is already
	// in the tree.
	ErrNodeExists = errors.New("node already exists")

	// ErrParentMissing is returned by Insert when the parent identifier
	// is not in the tree yet.
	ErrParentMissing = errors.New("parent node missing")
)

// Node is one taxon in the hierarchy.
type Node struct {
	// ID is the normalized taxonID value.
	ID string

	// Label is the original-case taxonID value as it appeared in the file.
	Label string

	// ParentID points at the node this one was inserted under.
	ParentID string

	// SeqID is the 1-based insertion order of the node. Rows that attach
	// only during the retry pass get later sequence ids than rows that
	// attached on the first pass.
	SeqID int

	// Offset is the byte position of the node's source line, used to
	// re-read the full row during export.
	Offset int64

	// Lineage holds the labels of the ancestors, nearest first, root
	// excluded. Empty for nodes directly under the root.
	Lineage []string

	// LineageIDs holds the sequence ids of the same ancestors.
	LineageIDs []int
}

// Tree is the insert-only taxonomic hierarchy.
// It is not safe for concurrent use; a build run mutates it from a single
// goroutine.
type Tree struct {
	nodes map[string]*Node
	order []string
	seq   int
}

// New creates a tree holding only the synthetic root node.
func New() *Tree {
	t := &Tree{
		nodes: make(map[string]*Node),
	}
	t.nodes[RootID] = &Node{ID: RootID, Label: RootID}
	return t
}

// Insert adds a node under parentID and returns it with its sequence id and
// classification breadcrumbs filled in.
//
// It fails with ErrNodeExists or ErrParentMissing (check with errors.Is)
// without mutating the tree or consuming a sequence id, so a failed row can
// be retried later.
func (t *Tree) Insert(id, parentID, label string, offset int64) (*Node, error) {
	if _, ok := t.nodes[id]; ok {
		return nil, fmt.Errorf("insert %q: %w", id, ErrNodeExists)
	}
	parent, ok := t.nodes[parentID]
	if !ok {
		return nil, fmt.Errorf("insert %q under %q: %w", id, parentID, ErrParentMissing)
	}

	t.seq++
	node := &Node{
		ID:       id,
		Label:    label,
		ParentID: parent.ID,
		SeqID:    t.seq,
		Offset:   offset,
	}
	node.Lineage, node.LineageIDs = t.breadcrumbs(parent)

	t.nodes[id] = node
	t.order = append(t.order, id)
	return node, nil
}

// breadcrumbs walks the parent chain from the given node up to the root and
// collects labels and sequence ids, nearest first. The root itself is left
// out. The walk always terminates: parents exist before their children, so
// every chain ends at the root.
func (t *Tree) breadcrumbs(node *Node) ([]string, []int) {
	var labels []string
	var ids []int

	for node != nil && node.ID != RootID {
		labels = append(labels, node.Label)
		ids = append(ids, node.SeqID)
		node = t.nodes[node.ParentID]
	}
	return labels, ids
}

// Lookup returns the node with the given identifier.
func (t *Tree) Lookup(id string) (*Node, bool) {
	node, ok := t.nodes[id]
	return node, ok
}

// Parent returns the parent of the node with the given identifier.
// The root has no parent.
func (t *Tree) Parent(id string) (*Node, bool) {
	node, ok := t.nodes[id]
	if !ok {
		return nil, false
	}
	parent, ok := t.nodes[node.ParentID]
	return parent, ok
}

// Len returns the number of data nodes, the synthetic root excluded.
func (t *Tree) Len() int {
	return len(t.order)
}

// NodeIDs returns the identifiers of all data nodes in insertion order.
// The returned slice is owned by the tree and must not be mutated.
func (t *Tree) NodeIDs() []string {
	return t.order
}
