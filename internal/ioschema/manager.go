// Package ioschema implements the SchemaManager interface for
// the static merge tables. This is an impure I/O package
// that wraps GORM AutoMigrate functionality.
package ioschema

import (
	"context"

	"github.com/gnames/gndwca/pkg/db"
	"github.com/gnames/gndwca/pkg/lifecycle"
	"github.com/gnames/gndwca/pkg/schema"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// manager implements the lifecycle.SchemaManager interface
// using GORM AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{operator: op}
}

// Create creates the merge tables (cross_taxons, taxonranks,
// source_ranking) using GORM AutoMigrate. Idempotent.
func (m *manager) Create(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{},
	)
	if err != nil {
		return GORMConnectionError(err)
	}

	if err := schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return CreateSchemaError(err)
	}

	return nil
}

// Drop removes the merge tables so the next merge run starts clean.
// The per-source taxon tables stay untouched.
func (m *manager) Drop(ctx context.Context) error {
	if m.operator.Pool() == nil {
		return NotConnectedError()
	}
	return m.operator.DropTables(ctx, schema.MergeTables()...)
}
