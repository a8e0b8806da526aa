package iobuild

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/gndwca/pkg/config"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
)

// BuildResult is the run summary of one build. Counters accumulate during
// the run; the result is logged and reported when the run finishes.
type BuildResult struct {
	RunID         uuid.UUID
	Table         string
	RowsRead      int
	NodesInserted int

	// Recovered counts rows that attached only during the retry pass.
	Recovered int

	// Dropped holds the byte offsets of rows permanently excluded from
	// the output, for external auditing.
	Dropped []int64

	BatchesFailed int
	FirstBatchErr error
	Elapsed       time.Duration
}

// report logs the run summary and, when rows were dropped, writes their
// byte offsets to dropped_offsets.txt in the log directory.
func (b *builder) report(res *BuildResult) {
	slog.Info("Build finished",
		"run_id", res.RunID.String(),
		"table", res.Table,
		"rows_read", res.RowsRead,
		"nodes_inserted", res.NodesInserted,
		"recovered", res.Recovered,
		"dropped", len(res.Dropped),
		"batches_failed", res.BatchesFailed,
		"duration", gnfmt.TimeString(res.Elapsed.Seconds()),
	)

	gn.Info(
		"Imported <em>%d</em> of %d rows into <em>%s</em> in %s",
		res.NodesInserted, res.RowsRead, res.Table,
		gnfmt.TimeString(res.Elapsed.Seconds()),
	)
	if res.Recovered > 0 {
		gn.Info("Recovered <em>%d</em> rows on retry", res.Recovered)
	}

	if len(res.Dropped) > 0 {
		gn.Warn("Dropped <em>%d</em> unresolvable rows", len(res.Dropped))
		if path, err := b.writeDropped(res.Dropped); err != nil {
			slog.Warn("Cannot write dropped offsets", "error", err)
		} else {
			gn.Info("Dropped row offsets written to <em>%s</em>", path)
		}
	}

	if res.BatchesFailed > 0 {
		gn.Warn("<em>%d</em> load batches failed", res.BatchesFailed)
	}
}

func (b *builder) writeDropped(offsets []int64) (string, error) {
	path := filepath.Join(
		config.LogDir(b.cfg.HomeDir), "dropped_offsets.txt")

	var sb strings.Builder
	for _, v := range offsets {
		fmt.Fprintf(&sb, "%d\n", v)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return "", ReportError(path, err)
	}
	return path, nil
}
