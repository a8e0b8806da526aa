/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gndwca/internal/iosources"
	"github.com/gnames/gndwca/pkg/config"
	"github.com/gnames/gndwca/pkg/sources"
	"github.com/mattn/go-isatty"
)

// resolveTable fills cfg.Import.Table for a build run. An explicit
// --table wins; otherwise the table is derived from the source key, and
// with neither flag set an interactive picker lists the configured
// sources. Without a terminal a missing table is an error.
func resolveTable(cfg *config.Config) error {
	if cfg.Import.Table != "" {
		return nil
	}

	if cfg.Import.Source != "" {
		reg, err := iosources.New(cfg).Load()
		if err != nil {
			return err
		}
		if src, ok := reg.Find(cfg.Import.Source); ok {
			cfg.Update([]config.Option{config.OptImportTable(src.TableName())})
			return nil
		}
		gn.Warn(
			"Source <em>%s</em> is not in sources.yaml; "+
				"the merge phase will have no ranking weights for it",
			cfg.Import.Source)
		cfg.Update([]config.Option{
			config.OptImportTable("taxon_" + cfg.Import.Source)})
		return nil
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return NoTableError()
	}

	reg, err := iosources.New(cfg).Load()
	if err != nil {
		return err
	}
	src, err := pickSource(reg)
	if err != nil {
		return err
	}
	cfg.Update([]config.Option{
		config.OptImportSource(src.Key),
		config.OptImportTable(src.TableName()),
	})
	return nil
}

// pickSource asks the user to choose one of the configured sources.
func pickSource(reg *sources.Registry) (sources.Source, error) {
	fmt.Println("Configured nomenclature sources:")
	for i, s := range reg.Sources {
		title := s.Title
		if title == "" {
			title = s.Key
		}
		fmt.Printf("  %d. %s (%s)\n", i+1, title, s.TableName())
	}
	fmt.Print("\nImport into which source? (number): ")

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return sources.Source{}, NoTableError()
	}

	n, err := strconv.Atoi(strings.TrimSpace(response))
	if err != nil || n < 1 || n > len(reg.Sources) {
		return sources.Source{}, NoTableError()
	}
	return reg.Sources[n-1], nil
}
