package schema

import (
	"gorm.io/gorm"
)

// AllModels returns the static merge-phase models for GORM AutoMigrate.
func AllModels() []interface{} {
	return []interface{}{
		&CrossTaxon{},
		&TaxonRank{},
		&SourceRanking{},
	}
}

// MergeTables lists the merge-phase table names in drop-safe order.
func MergeTables() []string {
	return []string{"source_ranking", "taxonranks", "cross_taxons"}
}

// Migrate runs GORM AutoMigrate to create or update the merge schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
