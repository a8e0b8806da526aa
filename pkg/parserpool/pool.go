// Package parserpool provides pooled gnparser instances for concurrent
// scientific-name parsing. Parsing is pure computation; the pool only
// bounds how many parser instances exist, since each one is costly to
// create.
package parserpool

import (
	"fmt"
	"runtime"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
)

// Pool hands out gnparser instances keyed by nomenclatural code. The merge
// phase parses each source's names with the code configured for that source
// in sources.yaml.
type Pool interface {
	// Canonical parses a scientific name with the given code and returns
	// its simple canonical form, or an empty string when the name does
	// not parse. Safe for concurrent use.
	Canonical(name string, code nomcode.Code) (string, error)

	// Close shuts the pools down. The pool must not be used afterwards.
	Close()
}

// codes are the nomenclatural codes sources.yaml can select.
var codes = []nomcode.Code{
	nomcode.Botanical,
	nomcode.Zoological,
	nomcode.Cultivars,
}

type pool struct {
	parsers map[nomcode.Code]chan gnparser.GNparser
	size    int
}

// New creates a parser pool with size instances per supported code.
// A size of 0 defaults to runtime.NumCPU().
func New(size int) Pool {
	if size == 0 {
		size = runtime.NumCPU()
	}

	parsers := make(map[nomcode.Code]chan gnparser.GNparser)
	for _, code := range codes {
		cfg := gnparser.NewConfig(gnparser.OptCode(code))
		parsers[code] = gnparser.NewPool(cfg, size)
	}

	return &pool{parsers: parsers, size: size}
}

// Canonical parses name with a pooled parser for the given code.
// It blocks while all parsers for that code are busy.
func (p *pool) Canonical(name string, code nomcode.Code) (string, error) {
	ch, ok := p.parsers[code]
	if !ok {
		return "", fmt.Errorf("unsupported nomenclatural code: %s", code)
	}

	parser := <-ch
	parsed := parser.ParseName(name)
	ch <- parser

	if !parsed.Parsed {
		return "", nil
	}
	return parsed.Canonical.Simple, nil
}

// Close drains and closes every per-code pool.
func (p *pool) Close() {
	for _, ch := range p.parsers {
		close(ch)
		for range ch {
		}
	}
	p.parsers = nil
}
