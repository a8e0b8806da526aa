// Package main provides the gndwca CLI application.
// gndwca imports Darwin Core Archive checklists into PostgreSQL and
// merges them into a single cross-source taxonomy.
package main

import "github.com/gnames/gndwca/cmd"

func main() {
	cmd.Execute()
}
