package ioschema_test

import (
	"context"
	"testing"

	"github.com/gnames/gndwca/internal/iodb"
	"github.com/gnames/gndwca/internal/ioschema"
	"github.com/gnames/gndwca/internal/iotesting"
	"github.com/gnames/gndwca/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndDrop(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	cfg := iotesting.GetTestDatabaseConfig(t)

	op := iodb.NewPgxOperator()
	require.NoError(t, op.EnsureDatabase(ctx, cfg))
	require.NoError(t, op.Connect(ctx, cfg))
	defer op.Close()

	mgr := ioschema.NewManager(op)

	require.NoError(t, mgr.Create(ctx))
	for _, table := range schema.MergeTables() {
		exists, err := op.TableExists(ctx, table)
		require.NoError(t, err)
		assert.True(t, exists, table)
	}

	// Create is idempotent
	assert.NoError(t, mgr.Create(ctx))

	require.NoError(t, mgr.Drop(ctx))
	for _, table := range schema.MergeTables() {
		exists, err := op.TableExists(ctx, table)
		require.NoError(t, err)
		assert.False(t, exists, table)
	}
}

func TestNotConnected(t *testing.T) {
	mgr := ioschema.NewManager(iodb.NewPgxOperator())
	ctx := context.Background()

	assert.Error(t, mgr.Create(ctx))
	assert.Error(t, mgr.Drop(ctx))
}
