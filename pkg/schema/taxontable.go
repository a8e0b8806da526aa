package schema

import (
	"fmt"
	"strings"
)

// TaxonTableDDL builds the CREATE TABLE statement for a per-source taxon
// table. Data columns come from the file headers; the id, label, parents,
// parent_ids and created_at columns are always present. The statement is
// idempotent, so re-importing into an existing table keeps its schema.
func TaxonTableDDL(table string, cols []Column) string {
	lines := []string{
		`    "id" bigserial PRIMARY KEY`,
		`    "label" character varying`,
	}
	for _, col := range cols {
		lines = append(lines,
			fmt.Sprintf(`    "%s" character varying`, col.Name))
	}
	lines = append(lines,
		`    "parents" text[]`,
		`    "parent_ids" int[]`,
		`    "created_at" timestamp without time zone default NOW()`,
	)

	return fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (\n%s\n)",
		table, strings.Join(lines, ",\n"),
	)
}

// TaxonIndexDDL builds the taxonid index for a per-source taxon table.
// The index name carries the table name: Postgres index names are
// schema-wide, and several taxon tables live side by side.
func TaxonIndexDDL(table string) string {
	return fmt.Sprintf(
		"CREATE INDEX IF NOT EXISTS %s_taxonid_idx ON %s (taxonid)",
		table, table,
	)
}

// ExportColumns lists the columns an export batch writes, in the order the
// row values are laid out. The label and created_at columns are left out:
// label is filled by the merge phase, created_at by its column default.
func ExportColumns(cols []Column) []string {
	res := make([]string, 0, len(cols)+3)
	res = append(res, "id")
	for _, col := range cols {
		res = append(res, col.Name)
	}
	res = append(res, "parents", "parent_ids")
	return res
}
