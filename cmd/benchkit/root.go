package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/benchlab/benchkit/internal/config"
	"github.com/benchlab/benchkit/internal/logging"
	"github.com/benchlab/benchkit/internal/tabular"
)

var rootCmd = &cobra.Command{
	Use:   "benchkit",
	Short: "Benchkit is a toolkit for tabular lab-pipeline output",
	Long: `Benchkit bundles small filters for the delimited files that genomics
pipelines produce: enrichment merging, duplicate collapsing, superfluous
column removal and KASP plate plotting.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a benchkit.yaml config file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable coloured output")
}

// newLogger builds the command logger honouring --debug.
func newLogger(cmd *cobra.Command) *slog.Logger {
	debug, _ := cmd.Flags().GetBool("debug")
	return logging.New(debug)
}

// mustConfig loads the config file or exits with the load error.
func mustConfig(cmd *cobra.Command) *config.Config {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		exitErr(err)
	}
	return cfg
}

// exitErr reports err and exits. A broken pipe (e.g. piping into `head`)
// exits silently, matching conventional filter behaviour.
func exitErr(err error) {
	if tabular.IsBrokenPipe(err) {
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
