package iomerge

import (
	"context"

	"github.com/gnames/gndwca/pkg/schema"
	"github.com/gnames/gndwca/pkg/sources"
	"github.com/jackc/pgx/v5"
)

// taxonRanks is the fixed, ordered rank vocabulary seeded into the
// taxonranks table. The ord value sorts ranks from the most general to
// the most specific; ties are deliberate (e.g. superphylum and
// infradivision sit at the same level in different traditions).
var taxonRanks = []schema.TaxonRank{
	{ID: 1, Name: "unranked", Ord: 0},
	{ID: 2, Name: "realm", Ord: 1},
	{ID: 3, Name: "superkingdom", Ord: 5},
	{ID: 4, Name: "kingdom", Ord: 10},
	{ID: 5, Name: "subkingdom", Ord: 15},
	{ID: 6, Name: "infrakingdom", Ord: 20},
	{ID: 7, Name: "division", Ord: 25},
	{ID: 8, Name: "subdivision", Ord: 30},
	{ID: 9, Name: "superphylum", Ord: 35},
	{ID: 10, Name: "infradivision", Ord: 35},
	{ID: 11, Name: "parvphylum", Ord: 40},
	{ID: 12, Name: "phylum", Ord: 45},
	{ID: 13, Name: "subphylum", Ord: 50},
	{ID: 14, Name: "infraphylum", Ord: 55},
	{ID: 15, Name: "megaclass", Ord: 60},
	{ID: 16, Name: "superclass", Ord: 65},
	{ID: 17, Name: "gigaclass", Ord: 65},
	{ID: 18, Name: "class", Ord: 70},
	{ID: 19, Name: "subclass", Ord: 75},
	{ID: 20, Name: "subterclass", Ord: 80},
	{ID: 21, Name: "infraclass", Ord: 85},
	{ID: 22, Name: "parvorder", Ord: 90},
	{ID: 23, Name: "superorder", Ord: 95},
	{ID: 24, Name: "order", Ord: 100},
	{ID: 25, Name: "nanorder", Ord: 105},
	{ID: 26, Name: "suborder", Ord: 110},
	{ID: 27, Name: "infraorder", Ord: 115},
	{ID: 28, Name: "cohort", Ord: 120},
	{ID: 29, Name: "subcohort", Ord: 125},
	{ID: 30, Name: "superfamily", Ord: 130},
	{ID: 31, Name: "epifamily", Ord: 135},
	{ID: 32, Name: "family", Ord: 140},
	{ID: 33, Name: "subfamily", Ord: 145},
	{ID: 34, Name: "infrafamily", Ord: 150},
	{ID: 35, Name: "supertribe", Ord: 155},
	{ID: 36, Name: "tribe", Ord: 160},
	{ID: 37, Name: "subtribe", Ord: 165},
	{ID: 38, Name: "infratribe", Ord: 170},
	{ID: 39, Name: "suprageneric name", Ord: 171},
	{ID: 40, Name: "genus", Ord: 175},
	{ID: 41, Name: "subgenus", Ord: 180},
	{ID: 42, Name: "supersection botany", Ord: 185},
	{ID: 43, Name: "section botany", Ord: 190},
	{ID: 44, Name: "subsection botany", Ord: 195},
	{ID: 45, Name: "section zoology", Ord: 200},
	{ID: 46, Name: "subsection zoology", Ord: 205},
	{ID: 47, Name: "superseries", Ord: 210},
	{ID: 48, Name: "series", Ord: 215},
	{ID: 49, Name: "subseries", Ord: 220},
	{ID: 50, Name: "infrageneric name", Ord: 225},
	{ID: 51, Name: "species aggregate", Ord: 230},
	{ID: 52, Name: "species", Ord: 235},
	{ID: 53, Name: "subspecies", Ord: 240},
	{ID: 54, Name: "variety", Ord: 245},
	{ID: 55, Name: "subvariety", Ord: 250},
	{ID: 56, Name: "form", Ord: 255},
	{ID: 57, Name: "subform", Ord: 260},
	{ID: 58, Name: "forma specialis", Ord: 265},
	{ID: 59, Name: "chemoform", Ord: 270},
	{ID: 60, Name: "cultivar", Ord: 275},
	{ID: 61, Name: "cultivar group", Ord: 280},
	{ID: 62, Name: "strain", Ord: 285},
	{ID: 63, Name: "morph", Ord: 290},
	{ID: 64, Name: "grex", Ord: 295},
	{ID: 65, Name: "klepton", Ord: 300},
	{ID: 66, Name: "biovar", Ord: 305},
	{ID: 67, Name: "pathovar", Ord: 310},
	{ID: 68, Name: "chemovar", Ord: 315},
	{ID: 69, Name: "natio", Ord: 320},
	{ID: 70, Name: "morphovar", Ord: 320},
	{ID: 71, Name: "serovar", Ord: 321},
	{ID: 72, Name: "proles", Ord: 325},
	{ID: 73, Name: "convariety", Ord: 330},
	{ID: 74, Name: "mutatio", Ord: 335},
	{ID: 75, Name: "lusus", Ord: 340},
	{ID: 76, Name: "aberration", Ord: 345},
	{ID: 77, Name: "infraspecific name", Ord: 350},
	{ID: 78, Name: "infrasubspecific name", Ord: 355},
	{ID: 79, Name: "other", Ord: 500},
}

// sourceRankings converts the registry into source_ranking rows.
// A source's id is its 1-based position in sources.yaml.
func sourceRankings(reg *sources.Registry) []schema.SourceRanking {
	res := make([]schema.SourceRanking, len(reg.Sources))
	for i, s := range reg.Sources {
		res[i] = schema.SourceRanking{
			ID:          i + 1,
			Name:        s.TableName(),
			UUID:        s.UUID(),
			ForZoology:  s.ForZoology,
			ForBotany:   s.ForBotany,
			ForMycology: s.ForMycology,
			General:     s.General,
		}
	}
	return res
}

// seed bulk-loads the rank vocabulary and the source rankings into their
// freshly created tables.
func (m *merger) seed(ctx context.Context, reg *sources.Registry) error {
	pool := m.op.Pool()

	rankRows := make([][]any, len(taxonRanks))
	for i, r := range taxonRanks {
		rankRows[i] = []any{r.ID, r.Name, r.Ord}
	}
	_, err := pool.CopyFrom(ctx,
		pgx.Identifier{"taxonranks"},
		[]string{"id", "name", "ord"},
		pgx.CopyFromRows(rankRows),
	)
	if err != nil {
		return SeedError("taxonranks", err)
	}

	rankings := sourceRankings(reg)
	srcRows := make([][]any, len(rankings))
	for i, s := range rankings {
		srcRows[i] = []any{
			s.ID, s.Name, s.UUID,
			s.ForZoology, s.ForBotany, s.ForMycology, s.General,
		}
	}
	_, err = pool.CopyFrom(ctx,
		pgx.Identifier{"source_ranking"},
		[]string{
			"id", "name", "uuid",
			"for_zoology", "for_botany", "for_mycology", "general",
		},
		pgx.CopyFromRows(srcRows),
	)
	if err != nil {
		return SeedError("source_ranking", err)
	}

	return nil
}
