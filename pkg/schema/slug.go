// Package schema derives PostgreSQL schemas for gndwca tables.
//
// Two kinds of tables exist. A per-source taxon table gets its columns from
// the header line of the imported file: headers are slugged, namespace
// prefixes are stripped, and duplicates are dropped (see DeriveColumns and
// TaxonTableDDL). The merge phase writes into a fixed set of tables
// described by the GORM models in models.go.
package schema

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[\W_]+`)

// prefixes are the namespace substrings DwCA headers carry after slugging.
var prefixes = []string{"dwc_", "col_", "dcterms_"}

// Slug normalizes a header field into a column name: every run of
// non-alphanumeric characters (underscore included) becomes a single
// underscore, and the result is lowercased.
// "dwc:taxonID" becomes "dwc_taxonid".
func Slug(s string) string {
	return strings.ToLower(nonAlnum.ReplaceAllString(s, "_"))
}

// Slugs normalizes all header fields, preserving their order.
func Slugs(headers []string) []string {
	res := make([]string, len(headers))
	for i, h := range headers {
		res[i] = Slug(h)
	}
	return res
}

// StripPrefixes removes DwCA namespace prefixes from a slugged column name.
func StripPrefixes(s string) string {
	for _, p := range prefixes {
		s = strings.ReplaceAll(s, p, "")
	}
	return s
}

// Column is one derived data column of a per-source taxon table.
type Column struct {
	// Name is the final column name, slugged and prefix-stripped.
	Name string

	// FieldPos is the position of the source field in a data row.
	FieldPos int
}

// DeriveColumns turns slugged headers into the data columns of a taxon
// table. Namespace prefixes are stripped. When two headers collapse into the
// same name, the first occurrence wins and later ones are dropped, keeping
// the table schema and the exported rows aligned.
func DeriveColumns(slugs []string) []Column {
	var res []Column
	seen := make(map[string]bool)
	for i, s := range slugs {
		name := StripPrefixes(s)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		res = append(res, Column{Name: name, FieldPos: i})
	}
	return res
}
