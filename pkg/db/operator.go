package db

import (
	"context"

	"github.com/gnames/gndwca/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Operator defines the interface for basic database management operations.
// It provides connection lifecycle management and exposes the pgxpool.Pool
// for high-level lifecycle components (SchemaManager, Builder, Merger) to
// execute their specialized SQL operations internally.
type Operator interface {
	// EnsureDatabase creates the configured database when it does not exist
	// yet. It connects to the maintenance database with the same
	// credentials, so it must run before Connect.
	EnsureDatabase(context.Context, *config.DatabaseConfig) error

	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool for high-level components to
	// execute specialized SQL operations. Components use this for bulk
	// loads (CopyFrom), dynamic DDL, and custom queries.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// ListTables returns the names of public-schema tables matching an
	// ILIKE pattern, for example 'taxon\_%'.
	ListTables(ctx context.Context, pattern string) ([]string, error)

	// DropTables drops the given tables if they exist.
	// Used by merge before rebuilding its artifacts.
	DropTables(ctx context.Context, tableNames ...string) error
}
