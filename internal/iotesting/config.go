// Package iotesting provides shared test utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"testing"

	"github.com/gnames/gndwca/pkg/config"
)

// TestDatabaseName is the database name used for all integration tests,
// so that tests never run against a production database.
const TestDatabaseName = "gndwca_test"

// GetTestConfig returns a configuration suitable for integration tests:
// defaults with the database name overridden to TestDatabaseName and a
// throwaway home directory.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    if testing.Short() {
//	        t.Skip("Skipping integration test")
//	    }
//	    cfg := iotesting.GetTestConfig(t)
//	    // ... use cfg for database operations
//	}
func GetTestConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.New()
	cfg.Database.Database = TestDatabaseName
	cfg.HomeDir = t.TempDir()
	return cfg
}

// GetTestDatabaseConfig returns only the database configuration for tests.
func GetTestDatabaseConfig(t *testing.T) *config.DatabaseConfig {
	t.Helper()

	cfg := GetTestConfig(t)
	return &cfg.Database
}
