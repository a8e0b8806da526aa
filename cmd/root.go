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
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gndwca/internal/iofs"
	"github.com/gnames/gndwca/internal/iologger"
	app "github.com/gnames/gndwca/pkg"
	"github.com/gnames/gndwca/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
	Use:     "gndwca",
	Short:   "Imports Darwin Core Archive checklists into PostgreSQL",
	Long: `gndwca imports taxonomic checklists distributed as Darwin Core
Archives into PostgreSQL, one table per data source, and merges them
into a single cross-source taxonomy.

A typical session:

  gndwca build --source col taxon.txt
  gndwca build --source gbif https://example.org/backbone.zip
  gndwca merge`,
	PersistentPreRunE: bootstrap,
	RunE:              runRoot,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults.
	// Will be reconfigured later with user's config settings.
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if err = iofs.EnsureSourcesFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	cfg.Update(cfgViper.ToOptions())
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// CLI flags have the last word.
	cfg.Update(dbFlagOpts(cmd))

	// Reconfigure logging with user's settings, keeping the bootstrap
	// entries in place.
	if err = iologger.Init(config.LogDir(homeDir), cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir))

	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Remove the automatic "gndwca version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gndwca")

	pf := rootCmd.PersistentFlags()
	pf.String("host", "", "PostgreSQL host")
	pf.Int("port", 0, "PostgreSQL port")
	pf.StringP("user", "u", "", "PostgreSQL user")
	pf.StringP("database", "d", "", "PostgreSQL database name")
}

// dbFlagOpts converts the persistent database flags the user actually set
// into config options.
func dbFlagOpts(cmd *cobra.Command) []config.Option {
	var res []config.Option
	flags := cmd.Flags()

	if flags.Changed("host") {
		s, _ := flags.GetString("host")
		res = append(res, config.OptDatabaseHost(s))
	}
	if flags.Changed("port") {
		i, _ := flags.GetInt("port")
		res = append(res, config.OptDatabasePort(i))
	}
	if flags.Changed("user") {
		s, _ := flags.GetString("user")
		res = append(res, config.OptDatabaseUser(s))
	}
	if flags.Changed("database") {
		s, _ := flags.GetString("database")
		res = append(res, config.OptDatabaseDatabase(s))
	}
	return res
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("GNDWCA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Database configuration
	v.BindEnv("database.host", "GNDWCA_DATABASE_HOST")
	v.BindEnv("database.port", "GNDWCA_DATABASE_PORT")
	v.BindEnv("database.user", "GNDWCA_DATABASE_USER")
	v.BindEnv("database.password", "GNDWCA_DATABASE_PASSWORD")
	v.BindEnv("database.database", "GNDWCA_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "GNDWCA_DATABASE_SSL_MODE")
	v.BindEnv("database.batch_size", "GNDWCA_DATABASE_BATCH_SIZE")

	// Import configuration
	v.BindEnv("import.delimiter", "GNDWCA_IMPORT_DELIMITER")
	v.BindEnv("import.header_lines", "GNDWCA_IMPORT_HEADER_LINES")

	// Log configuration
	v.BindEnv("log.level", "GNDWCA_LOG_LEVEL")
	v.BindEnv("log.format", "GNDWCA_LOG_FORMAT")
	v.BindEnv("log.destination", "GNDWCA_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "GNDWCA_JOBS_NUMBER")

	v.AutomaticEnv()
}
