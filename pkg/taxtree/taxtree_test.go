package taxtree_test

import (
	"errors"
	"testing"

	"github.com/gnames/gndwca/pkg/taxtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tree := taxtree.New()

	root, ok := tree.Lookup(taxtree.RootID)
	require.True(t, ok)
	assert.Equal(t, taxtree.RootID, root.ID)
	assert.Equal(t, 0, root.SeqID)
	assert.Equal(t, 0, tree.Len())
	assert.Empty(t, tree.NodeIDs())
}

func TestInsert(t *testing.T) {
	tree := taxtree.New()

	node, err := tree.Insert("t1", taxtree.RootID, "T1", 120)
	require.NoError(t, err)
	assert.Equal(t, "t1", node.ID)
	assert.Equal(t, "T1", node.Label)
	assert.Equal(t, taxtree.RootID, node.ParentID)
	assert.Equal(t, 1, node.SeqID)
	assert.Equal(t, int64(120), node.Offset)
	assert.Empty(t, node.Lineage, "top-level node has no breadcrumbs")
	assert.Empty(t, node.LineageIDs)

	node, err = tree.Insert("t2", "t1", "T2", 160)
	require.NoError(t, err)
	assert.Equal(t, 2, node.SeqID)
	assert.Equal(t, []string{"T1"}, node.Lineage)
	assert.Equal(t, []int{1}, node.LineageIDs)

	assert.Equal(t, 2, tree.Len())
	assert.Equal(t, []string{"t1", "t2"}, tree.NodeIDs())
}

func TestInsertErrors(t *testing.T) {
	tree := taxtree.New()
	_, err := tree.Insert("t1", taxtree.RootID, "T1", 0)
	require.NoError(t, err)

	tests := []struct {
		name     string
		id       string
		parentID string
		wantErr  error
	}{
		{
			name:     "duplicate identifier",
			id:       "t1",
			parentID: taxtree.RootID,
			wantErr:  taxtree.ErrNodeExists,
		},
		{
			name:     "unknown parent",
			id:       "t2",
			parentID: "nosuch",
			wantErr:  taxtree.ErrParentMissing,
		},
		{
			name:     "self-referencing parent",
			id:       "t3",
			parentID: "t3",
			wantErr:  taxtree.ErrParentMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tree.Insert(tt.id, tt.parentID, "X", 0)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}

	t.Run("failed insert does not consume a sequence id", func(t *testing.T) {
		node, err := tree.Insert("t2", "t1", "T2", 0)
		require.NoError(t, err)
		assert.Equal(t, 2, node.SeqID)
	})

	t.Run("failed insert leaves tree unchanged", func(t *testing.T) {
		assert.Equal(t, 2, tree.Len())
		_, ok := tree.Lookup("t3")
		assert.False(t, ok)
	})
}

func TestBreadcrumbs(t *testing.T) {
	tree := taxtree.New()

	// Animalia > Chordata > Mammalia, plus a second top-level kingdom.
	chain := []struct {
		id, parentID, label string
	}{
		{"k1", taxtree.RootID, "Animalia"},
		{"p1", "k1", "Chordata"},
		{"c1", "p1", "Mammalia"},
		{"k2", taxtree.RootID, "Plantae"},
	}
	for _, n := range chain {
		_, err := tree.Insert(n.id, n.parentID, n.label, 0)
		require.NoError(t, err)
	}

	tests := []struct {
		name    string
		id      string
		lineage []string
		ids     []int
	}{
		{
			name:    "depth three, nearest first, root excluded",
			id:      "c1",
			lineage: []string{"Chordata", "Animalia"},
			ids:     []int{2, 1},
		},
		{
			name:    "depth two",
			id:      "p1",
			lineage: []string{"Animalia"},
			ids:     []int{1},
		},
		{
			name:    "top level has empty breadcrumbs",
			id:      "k2",
			lineage: nil,
			ids:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, ok := tree.Lookup(tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.lineage, node.Lineage)
			assert.Equal(t, tt.ids, node.LineageIDs)
		})
	}

	t.Run("duplicate ancestor labels are kept", func(t *testing.T) {
		// Both genus and subgenus can legitimately carry the same label.
		_, err := tree.Insert("g1", "c1", "Rattus", 0)
		require.NoError(t, err)
		_, err = tree.Insert("sg1", "g1", "Rattus", 0)
		require.NoError(t, err)
		node, err := tree.Insert("s1", "sg1", "Rattus norvegicus", 0)
		require.NoError(t, err)

		assert.Equal(t,
			[]string{"Rattus", "Rattus", "Mammalia", "Chordata", "Animalia"},
			node.Lineage,
		)
		assert.Equal(t, []int{6, 5, 3, 2, 1}, node.LineageIDs)
	})
}

func TestParent(t *testing.T) {
	tree := taxtree.New()
	_, err := tree.Insert("t1", taxtree.RootID, "T1", 0)
	require.NoError(t, err)
	_, err = tree.Insert("t2", "t1", "T2", 0)
	require.NoError(t, err)

	t.Run("returns the parent node", func(t *testing.T) {
		parent, ok := tree.Parent("t2")
		require.True(t, ok)
		assert.Equal(t, "t1", parent.ID)
	})

	t.Run("top-level node's parent is the root", func(t *testing.T) {
		parent, ok := tree.Parent("t1")
		require.True(t, ok)
		assert.Equal(t, taxtree.RootID, parent.ID)
	})

	t.Run("root has no parent", func(t *testing.T) {
		_, ok := tree.Parent(taxtree.RootID)
		assert.False(t, ok)
	})

	t.Run("unknown node has no parent", func(t *testing.T) {
		_, ok := tree.Parent("nosuch")
		assert.False(t, ok)
	})
}

func TestInsertionOrder(t *testing.T) {
	tree := taxtree.New()

	ids := []string{"c", "a", "b"}
	for _, id := range ids {
		_, err := tree.Insert(id, taxtree.RootID, id, 0)
		require.NoError(t, err)
	}

	// NodeIDs preserves insertion order, not lexical order.
	assert.Equal(t, ids, tree.NodeIDs())

	for i, id := range ids {
		node, ok := tree.Lookup(id)
		require.True(t, ok)
		assert.Equal(t, i+1, node.SeqID)
	}
}
