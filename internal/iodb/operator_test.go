package iodb_test

import (
	"context"
	"testing"

	"github.com/gnames/gndwca/internal/iodb"
	"github.com/gnames/gndwca/internal/iotesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperatorLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	cfg := iotesting.GetTestDatabaseConfig(t)

	op := iodb.NewPgxOperator()
	require.NoError(t, op.EnsureDatabase(ctx, cfg))
	require.NoError(t, op.Connect(ctx, cfg))
	defer op.Close()

	require.NotNil(t, op.Pool())

	// idempotent once the database exists
	assert.NoError(t, op.EnsureDatabase(ctx, cfg))
}

func TestOperatorTables(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	cfg := iotesting.GetTestDatabaseConfig(t)

	op := iodb.NewPgxOperator()
	require.NoError(t, op.EnsureDatabase(ctx, cfg))
	require.NoError(t, op.Connect(ctx, cfg))
	defer op.Close()

	pool := op.Pool()
	for _, tbl := range []string{"taxon_opt_a", "taxon_opt_b"} {
		_, err := pool.Exec(ctx,
			"CREATE TABLE IF NOT EXISTS "+tbl+" (id int)")
		require.NoError(t, err)
	}

	exists, err := op.TableExists(ctx, "taxon_opt_a")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = op.TableExists(ctx, "no_such_table")
	require.NoError(t, err)
	assert.False(t, exists)

	tables, err := op.ListTables(ctx, `taxon\_opt\_%`)
	require.NoError(t, err)
	assert.Equal(t, []string{"taxon_opt_a", "taxon_opt_b"}, tables)

	require.NoError(t, op.DropTables(ctx, "taxon_opt_a", "taxon_opt_b"))

	tables, err = op.ListTables(ctx, `taxon\_opt\_%`)
	require.NoError(t, err)
	assert.Empty(t, tables)

	// dropping a missing table is not an error
	assert.NoError(t, op.DropTables(ctx, "taxon_opt_a"))
}

func TestOperatorNotConnected(t *testing.T) {
	op := iodb.NewPgxOperator()
	ctx := context.Background()

	_, err := op.TableExists(ctx, "any")
	assert.Error(t, err)

	_, err = op.ListTables(ctx, "%")
	assert.Error(t, err)

	assert.Error(t, op.DropTables(ctx, "any"))
	assert.NoError(t, op.Close())
}
