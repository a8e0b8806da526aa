package schema

import "database/sql"

// CrossTaxon is one row of the cross-source taxonomy the merge phase
// rebuilds from every per-source taxon table. Column names repeat the
// per-source table columns so the copying INSERT ... SELECT stays literal.
type CrossTaxon struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`

	// TID is the row's id in its source table; parent_ids point at these.
	TID int `gorm:"column:tid;index"`

	TaxonID string `gorm:"column:taxonid;type:character varying;index"`

	// Label is the canonical form of the scientific name.
	Label string `gorm:"column:label;type:character varying;index"`

	Authorship      string        `gorm:"column:scientificnameauthorship;type:character varying"`
	TaxonRank       string        `gorm:"column:taxonrank;type:character varying;index"`
	TaxonRankID     sql.NullInt32 `gorm:"column:taxonrank_id"`
	TaxonomicStatus string        `gorm:"column:taxonomicstatus;type:character varying"`

	// Parents and ParentIDs carry the classification breadcrumbs
	// computed during the build phase, nearest ancestor first.
	Parents   []string `gorm:"column:parents;type:text[];index"`
	ParentIDs []int32  `gorm:"column:parent_ids;type:int[]"`

	// Source is the name of the taxon table the row came from.
	Source   string        `gorm:"column:source;type:character varying"`
	SourceID sql.NullInt32 `gorm:"column:source_id"`

	// Kingdom is backfilled from the ancestor with taxonrank 'kingdom'
	// in the same source.
	Kingdom string `gorm:"column:kingdom;type:character varying"`
}

// TableName implements the GORM naming interface.
func (CrossTaxon) TableName() string { return "cross_taxons" }

// TaxonRank is one entry of the fixed, ordered list of taxonomic ranks.
// The ord value sorts ranks from the most general to the most specific.
type TaxonRank struct {
	ID   int    `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;type:character varying;index"`
	Ord  int    `gorm:"column:ord"`
}

// TableName implements the GORM naming interface.
func (TaxonRank) TableName() string { return "taxonranks" }

// SourceRanking holds the preference weights of one nomenclature source.
// Lower weight wins within the discipline the column names.
type SourceRanking struct {
	ID int `gorm:"column:id;primaryKey"`

	// Name is the source's taxon table name, e.g. "taxon_col".
	Name string `gorm:"column:name;type:character varying"`

	// UUID is the deterministic v5 identifier of the source key.
	UUID string `gorm:"column:uuid;type:uuid"`

	ForZoology  int `gorm:"column:for_zoology"`
	ForBotany   int `gorm:"column:for_botany"`
	ForMycology int `gorm:"column:for_mycology"`
	General     int `gorm:"column:general"`
}

// TableName implements the GORM naming interface.
func (SourceRanking) TableName() string { return "source_ranking" }
