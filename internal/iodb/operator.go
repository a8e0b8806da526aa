// Package iodb implements database operations using pgxpool.
// This is an impure I/O package that implements contracts
// defined in pkg/.
package iodb

import (
	"context"
	"fmt"

	"github.com/gnames/gndwca/pkg/config"
	"github.com/gnames/gndwca/pkg/db"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxOperator implements db.Operator using pgxpool for connection pooling.
type pgxOperator struct {
	pool *pgxpool.Pool
}

// NewPgxOperator creates a new database operator (without connecting).
func NewPgxOperator() db.Operator {
	return &pgxOperator{}
}

func dsn(cfg *config.DatabaseConfig, database string) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		database,
		cfg.SSLMode,
	)
}

// EnsureDatabase creates the configured database when it is missing. It
// uses a short-lived connection to the maintenance database, so it works
// before Connect.
func (p *pgxOperator) EnsureDatabase(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	conn, err := pgx.Connect(ctx, dsn(cfg, "postgres"))
	if err != nil {
		return ConnectionError(cfg.Host, cfg.Port, "postgres", cfg.User, err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx,
		"SELECT EXISTS (SELECT FROM pg_database WHERE datname = $1)",
		cfg.Database,
	).Scan(&exists)
	if err != nil {
		return CreateDatabaseError(cfg.Database, err)
	}
	if exists {
		return nil
	}

	// CREATE DATABASE cannot take bind parameters.
	sql := fmt.Sprintf("CREATE DATABASE %s",
		pgx.Identifier{cfg.Database}.Sanitize())
	if _, err = conn.Exec(ctx, sql); err != nil {
		return CreateDatabaseError(cfg.Database, err)
	}
	return nil
}

// Connect establishes a connection pool to PostgreSQL.
// Uses sensible hardcoded pool settings that work well for most use cases.
func (p *pgxOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	poolConfig, err := pgxpool.ParseConfig(dsn(cfg, cfg.Database))
	if err != nil {
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = 0
	poolConfig.MaxConnIdleTime = 0

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	p.pool = pool
	return nil
}

// Close releases all database connections.
func (p *pgxOperator) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

// Pool returns the underlying pgxpool.Pool for advanced operations.
func (p *pgxOperator) Pool() *pgxpool.Pool {
	return p.pool
}

// TableExists checks if a table exists in the current database.
func (p *pgxOperator) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	if p.pool == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = 'public'
			AND table_name = $1
		)
	`

	var exists bool
	err := p.pool.QueryRow(ctx, query, tableName).Scan(&exists)
	if err != nil {
		return false, TableExistsCheckError(tableName, err)
	}

	return exists, nil
}

// ListTables returns the names of public-schema tables matching an ILIKE
// pattern, sorted alphabetically.
func (p *pgxOperator) ListTables(
	ctx context.Context,
	pattern string,
) ([]string, error) {
	if p.pool == nil {
		return nil, NotConnectedError()
	}

	query := `
		SELECT tablename
		FROM pg_tables
		WHERE schemaname = 'public'
		AND tablename ILIKE $1
		ORDER BY tablename
	`

	rows, err := p.pool.Query(ctx, query, pattern)
	if err != nil {
		return nil, QueryTablesError(err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var tableName string
		if err := rows.Scan(&tableName); err != nil {
			return nil, ScanTableError(err)
		}
		tables = append(tables, tableName)
	}
	if err := rows.Err(); err != nil {
		return nil, ScanTableError(err)
	}

	return tables, nil
}

// DropTables drops the given tables if they exist.
func (p *pgxOperator) DropTables(
	ctx context.Context,
	tableNames ...string,
) error {
	if p.pool == nil {
		return NotConnectedError()
	}

	for _, table := range tableNames {
		dropSQL := fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE",
			pgx.Identifier{table}.Sanitize())
		if _, err := p.pool.Exec(ctx, dropSQL); err != nil {
			return DropTableError(table, err)
		}
	}

	return nil
}
