package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/benchlab/benchkit/internal/prune"
	"github.com/benchlab/benchkit/internal/tabular"
)

var pruneCmd = &cobra.Command{
	Use:   "prune [FILE]",
	Short: "Remove superfluous columns from a tab-delimited file",
	Long: `Reads a tab-delimited file from stdin or FILE and removes superfluous
columns. A superfluous column is one that either contains a single repeated
value or is identical to another column. Removed columns are reported on
stderr.

Warning: the whole file is read into memory.`,
	Example: `  benchkit prune < in.tsv > out.tsv
  benchkit prune --no-header in.tsv > out.tsv`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger(cmd)
		noHeader, _ := cmd.Flags().GetBool("no-header")

		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		in, err := tabular.OpenInput(path)
		if err != nil {
			exitErr(err)
		}
		defer in.Close()

		report, err := prune.Remove(in, os.Stdout, prune.Options{NoHeader: noHeader})
		if err != nil {
			exitErr(err)
		}

		for _, rc := range report {
			values := strings.Join(rc.Values, ", ")
			if rc.More {
				values += ", ..."
			}
			if rc.Name != "" {
				logger.Info("Removed column", "column", rc.Index, "name", rc.Name, "values", values)
			} else {
				logger.Info("Removed column", "column", rc.Index, "values", values)
			}
		}
		if len(report) > 0 {
			logger.Info("Columns removed", "count", len(report))
		}
	},
}

func init() {
	rootCmd.AddCommand(pruneCmd)

	pruneCmd.Flags().Bool("no-header", false, "Input has no header line")
}
