package lifecycle_test

import (
	"testing"

	"github.com/gnames/gndwca/internal/ioschema"
	"github.com/gnames/gndwca/pkg/lifecycle"
	"github.com/stretchr/testify/assert"
)

// TestSchemaManagerContract ensures that the ioschema.Manager implementation
// satisfies the lifecycle.SchemaManager interface.
// This is a compile-time check, and the test will not run if the contract
// is broken.
func TestSchemaManagerContract(t *testing.T) {
	// The following line is a compile-time check.
	// If ioschema.NewManager does not return a lifecycle.SchemaManager,
	// this code will fail to compile.
	var _ lifecycle.SchemaManager = ioschema.NewManager(nil)

	// This assertion is a runtime check to confirm the test was executed.
	assert.True(t, true, "ioschema.NewManager should return a lifecycle.SchemaManager")
}
