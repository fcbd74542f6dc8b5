package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/benchlab/benchkit/internal/enrich"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich DESEQ2.tsv GPROFILER.csv",
	Short: "Merge SeqMonk DESeq2 results with g:Profiler output",
	Long: `Joins a tab-delimited DESeq2 export from SeqMonk with a CSV file from
g:Profiler. Each g:Profiler row is expanded into one output row per gene ID
in its intersections column. Both files must have a header line; the merged
table is written to stdout as TSV.`,
	Example: `  benchkit enrich SeqMonk.tsv gProfiler.csv > merged.tsv
  benchkit enrich --deseq2-id ID --gprofiler-id intersections SeqMonk.tsv gProfiler.csv`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustConfig(cmd)

		opts := enrich.Options{
			DESeq2Path:    args[0],
			GProfilerPath: args[1],
			DESeq2Key:     cfg.Enrich.DESeq2Key,
			GProfilerKey:  cfg.Enrich.GProfilerKey,
		}
		if cmd.Flags().Changed("deseq2-id") {
			opts.DESeq2Key, _ = cmd.Flags().GetString("deseq2-id")
		}
		if cmd.Flags().Changed("gprofiler-id") {
			opts.GProfilerKey, _ = cmd.Flags().GetString("gprofiler-id")
		}

		if err := enrich.Merge(opts, os.Stdout); err != nil {
			exitErr(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(enrichCmd)

	enrichCmd.Flags().String("deseq2-id", enrich.DefaultDESeq2Key, "Gene ID column in the DESeq2 file")
	enrichCmd.Flags().String("gprofiler-id", enrich.DefaultGProfilerKey, "Gene ID list column in the g:Profiler file")
}
