package iodwca

import (
	"encoding/csv"
	"strings"

	"github.com/gnames/gndwca/pkg/schema"
)

// Field positions of the DwCA taxon core.
const (
	FieldTaxonID    = 0
	FieldParentID   = 1
	FieldAcceptedID = 2
)

// Record is one decoded line of the taxon file.
type Record struct {
	// Fields are the split column values, in file order.
	Fields []string

	// Offset is the byte position where the line starts.
	Offset int64

	// Line is the 1-based line number.
	Line int

	// Header marks the line as a header rather than data.
	Header bool
}

// Decoder splits raw lines into records. The first HeaderLines lines are
// classified as headers; the last of them provides the column slugs used
// for schema derivation and export joins.
type Decoder struct {
	delim       rune
	headerLines int
	slugs       []string
}

// NewDecoder creates a decoder for a single-character delimiter.
func NewDecoder(delimiter string, headerLines int) *Decoder {
	delim := '\t'
	for _, r := range delimiter {
		delim = r
		break
	}
	return &Decoder{delim: delim, headerLines: headerLines}
}

// Decode splits one line into a record. Splitting follows CSV semantics,
// so quoted fields may contain the delimiter. Header lines update the
// decoder's column slugs as a side effect.
func (d *Decoder) Decode(line string, offset int64, lineNum int) (Record, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.Comma = d.delim
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	fields, err := r.Read()
	if err != nil {
		return Record{}, err
	}

	rec := Record{
		Fields: fields,
		Offset: offset,
		Line:   lineNum,
		Header: lineNum <= d.headerLines,
	}
	if rec.Header {
		d.slugs = schema.Slugs(fields)
	}
	return rec, nil
}

// HeaderSlugs returns the slugged column names of the last header line
// seen, in file order. Empty before any header line was decoded.
func (d *Decoder) HeaderSlugs() []string {
	return d.slugs
}
