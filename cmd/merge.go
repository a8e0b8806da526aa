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
	"github.com/gnames/gndwca/internal/iodb"
	"github.com/gnames/gndwca/internal/iomerge"
	"github.com/spf13/cobra"
)

// mergeCmd rebuilds the cross-source taxonomy from the imported tables.
var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge imported taxon tables into cross_taxons",
	Long: `Combine every imported taxon_* table into the single
cross_taxons table.

This command:
  1. Drops and recreates source_ranking, taxonranks and cross_taxons
  2. Seeds the rank vocabulary and the source rankings from sources.yaml
  3. Fills canonical name labels with gnparser
  4. Copies every taxon_* table into cross_taxons
  5. Resolves rank ids, source ids and kingdoms

Merge always rebuilds from scratch, so ranking changes in sources.yaml
take effect on the next run. The imported taxon_* tables stay untouched.`,
	Args: cobra.NoArgs,
	RunE: runMerge,
}

func runMerge(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	if err := iomerge.New(cfg, op).Merge(ctx); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Merge is complete.")
	return nil
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
