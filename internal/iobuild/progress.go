package iobuild

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
)

// rowProgress writes a stderr progress line every 100 000 rows of the
// tree-building pass, where the total is not known in advance.
type rowProgress struct {
	start time.Time
	count int
}

func newRowProgress() *rowProgress {
	return &rowProgress{start: time.Now()}
}

func (p *rowProgress) tick() {
	p.count++
	if p.count%100_000 != 0 {
		return
	}
	spent := time.Since(p.start).Seconds()
	speed := int64(float64(p.count) / spent)
	fmt.Fprintf(os.Stderr, "\r%s", strings.Repeat(" ", 47))
	fmt.Fprintf(os.Stderr, "\rProcessed %s rows, %s rows/sec",
		humanize.Comma(int64(p.count)), humanize.Comma(speed))
}

func (p *rowProgress) clear() {
	if p.count >= 100_000 {
		fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", 47))
	}
}

// newProgressBar creates a progress bar with consistent settings for
// phases with a known total.
func newProgressBar(total int, prefix string) *pb.ProgressBar {
	bar := pb.Full.Start(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}
