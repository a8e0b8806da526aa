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
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/gndwca/internal/iobuild"
	"github.com/gnames/gndwca/internal/iodb"
	"github.com/gnames/gndwca/pkg/config"
	"github.com/spf13/cobra"
)

// buildCmd imports one taxon file into its per-source table.
var buildCmd = &cobra.Command{
	Use:   "build [flags] FILE",
	Short: "Import a DwCA taxon file into PostgreSQL",
	Long: `Import a Darwin Core Archive taxon file into one PostgreSQL table.

FILE can be a plain delimited taxon file, a DwCA zip archive, or an
http(s) URL to either. Downloads and extracted archives are cached in
~/.cache/gndwca/dwca.

The target table is taxon_<source> for a source configured in
sources.yaml, or any name given with --table. When neither is set, an
interactive picker lists the configured sources.

Examples:
  gndwca build --source col taxon.txt
  gndwca build --table taxon_custom --delimiter comma names.csv
  gndwca build --source gbif https://example.org/backbone.zip`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	opts := []config.Option{config.OptImportInputPath(args[0])}
	opts = append(opts, buildFlagOpts(cmd)...)
	cfg.Update(opts)

	if err := resolveTable(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	op := iodb.NewPgxOperator()
	if err := op.EnsureDatabase(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)
	gn.Info("Importing <em>%s</em> into <em>%s</em>",
		cfg.Import.InputPath, cfg.Import.Table)

	if err := iobuild.New(cfg, op).Build(ctx); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info(`Import is complete.

Run <em>gndwca merge</em> after importing all sources to rebuild the
cross-source taxonomy.`)
	return nil
}

// buildFlagOpts converts the build flags the user actually set into
// config options.
func buildFlagOpts(cmd *cobra.Command) []config.Option {
	var res []config.Option
	flags := cmd.Flags()

	if flags.Changed("table") {
		s, _ := flags.GetString("table")
		res = append(res, config.OptImportTable(s))
	}
	if flags.Changed("source") {
		s, _ := flags.GetString("source")
		res = append(res, config.OptImportSource(s))
	}
	if flags.Changed("delimiter") {
		s, _ := flags.GetString("delimiter")
		res = append(res, config.OptImportDelimiter(s))
	}
	if flags.Changed("header-lines") {
		i, _ := flags.GetInt("header-lines")
		res = append(res, config.OptImportHeaderLines(i))
	}
	if flags.Changed("batch-size") {
		i, _ := flags.GetInt("batch-size")
		res = append(res, config.OptDatabaseBatchSize(i))
	}
	if flags.Changed("jobs") {
		i, _ := flags.GetInt("jobs")
		res = append(res, config.OptJobsNumber(i))
	}
	return res
}

func init() {
	rootCmd.AddCommand(buildCmd)

	f := buildCmd.Flags()
	f.StringP("table", "t", "", "target table name (default taxon_<source>)")
	f.StringP("source", "s", "", "nomenclature source key from sources.yaml")
	f.String("delimiter", "", "field separator: a character, 'tab', 'comma' or 'pipe'")
	f.Int("header-lines", 0, "number of header lines in the taxon file")
	f.Int("batch-size", 0, "rows per bulk-load batch")
	f.IntP("jobs", "j", 0, "number of concurrent load workers")
}
