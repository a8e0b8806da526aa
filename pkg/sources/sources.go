// Package sources describes the nomenclature sources gndwca imports.
//
// The registry comes from sources.yaml in the user's config directory. Each
// source couples a short key (used to name the taxon_<key> table) with the
// ranking weights the merge phase seeds into source_ranking, and with the
// nomenclatural code used to parse its scientific names.
package sources

import (
	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnuuid"
)

// Sources loads the nomenclature registry.
type Sources interface {
	Load() (*Registry, error)
}

// Registry is the parsed sources.yaml configuration.
type Registry struct {
	// Sources are the known nomenclature sources. Their order is
	// significant: a source's ranking id is its 1-based position.
	Sources []Source `yaml:"sources"`

	// Warnings holds non-fatal validation findings (not serialized).
	Warnings []string `yaml:"-"`
}

// Source is one nomenclature source entry.
type Source struct {
	// Key is the short lowercase identifier, e.g. "col" or "gbif".
	Key string `yaml:"key"`

	// Title is the human-readable name of the source.
	Title string `yaml:"title,omitempty"`

	// Code selects the nomenclatural code for name parsing:
	// "botanical", "zoological" or "cultivar". Empty picks botanical,
	// which handles ambiguous names like "Aus (Bus)" most reliably.
	Code string `yaml:"code,omitempty"`

	// Ranking weights seeded into source_ranking. Lower wins within
	// the discipline the field names.
	ForZoology  int `yaml:"for_zoology"`
	ForBotany   int `yaml:"for_botany"`
	ForMycology int `yaml:"for_mycology"`
	General     int `yaml:"general"`
}

// TableName returns the per-source taxon table name.
func (s Source) TableName() string {
	return "taxon_" + s.Key
}

// UUID returns the deterministic UUID v5 of the source key, generated in
// the GlobalNames namespace.
func (s Source) UUID() string {
	return gnuuid.New(s.Key).String()
}

// NomCode maps the source's code setting to a gnparser nomenclatural code.
func (s Source) NomCode() nomcode.Code {
	switch s.Code {
	case "zoological":
		return nomcode.Zoological
	case "cultivar":
		return nomcode.Cultivars
	default:
		return nomcode.Botanical
	}
}

// Find returns the source with the given key.
func (r *Registry) Find(key string) (Source, bool) {
	for _, s := range r.Sources {
		if s.Key == key {
			return s, true
		}
	}
	return Source{}, false
}

// ByTable returns the source whose taxon table has the given name.
func (r *Registry) ByTable(table string) (Source, bool) {
	for _, s := range r.Sources {
		if s.TableName() == table {
			return s, true
		}
	}
	return Source{}, false
}
