package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/benchlab/benchkit/internal/dedupe"
	"github.com/benchlab/benchkit/internal/tabular"
)

var dedupeCmd = &cobra.Command{
	Use:   "dedupe [FILE]",
	Short: "Collapse duplicate rows of a tab-delimited file",
	Long: `Reads a tab-delimited file from stdin or FILE and merges rows that share
the key field(s). Non-key fields merge by comma separation (collapsed to a
single value when all the same); numeric fields can instead be summed,
averaged, or reduced to their minimum or maximum.`,
	Example: `  benchkit dedupe --key 1 < in.tsv > out.tsv
  benchkit dedupe --key 1 --sum 3 --mean 4 < in.tsv > out.tsv
  benchkit dedupe -k 1 -k 2 -s 3 -m 4 -m 5 in.tsv > out.tsv`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := dedupe.Options{}
		opts.Keys, _ = cmd.Flags().GetIntSlice("key")
		opts.Sums, _ = cmd.Flags().GetIntSlice("sum")
		opts.Means, _ = cmd.Flags().GetIntSlice("mean")
		opts.Mins, _ = cmd.Flags().GetIntSlice("min")
		opts.Maxs, _ = cmd.Flags().GetIntSlice("max")
		opts.Header, _ = cmd.Flags().GetBool("header")

		if err := opts.Validate(); err != nil {
			exitErr(err)
		}

		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		in, err := tabular.OpenInput(path)
		if err != nil {
			exitErr(err)
		}
		defer in.Close()

		if err := dedupe.Merge(in, os.Stdout, opts); err != nil {
			exitErr(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(dedupeCmd)

	dedupeCmd.Flags().IntSliceP("key", "k", nil, "Field(s) forming the key that identifies duplicates")
	dedupeCmd.Flags().IntSliceP("sum", "s", nil, "Field(s) to merge by summing the values")
	dedupeCmd.Flags().IntSliceP("mean", "m", nil, "Field(s) to merge by taking the mean of the values")
	dedupeCmd.Flags().IntSlice("min", nil, "Field(s) to merge by taking the minimum of the values")
	dedupeCmd.Flags().IntSlice("max", nil, "Field(s) to merge by taking the maximum of the values")
	dedupeCmd.Flags().Bool("header", false, "Input has an initial header line, printed through first")
	_ = dedupeCmd.MarkFlagRequired("key")
}
