package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/benchlab/benchkit"
	"github.com/benchlab/benchkit/internal/kasp"
	"github.com/benchlab/benchkit/internal/presentation/tui"
)

var kaspCmd = &cobra.Command{
	Use:   "kasp FILE...",
	Short: "Plot KlusterCaller KASP plate exports to PDF",
	Long: `Parses one or more KlusterCaller KASP CSV exports and renders a multi-page
PDF of scatter plots: raw and ROX-normalised FAM/HEX signals plus per-well
traces, coloured by plate.`,
	Example: `  benchkit kasp plate1.csv plate2.csv
  benchkit kasp -o run42.pdf plate*.csv
  benchkit kasp --watch plate1.csv`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustConfig(cmd)
		logger := newLogger(cmd)

		output := cfg.Kasp.Output
		if cmd.Flags().Changed("output") {
			output, _ = cmd.Flags().GetString("output")
		}

		render := func() error {
			plates := make([]*kasp.Plate, 0, len(args))
			for _, path := range args {
				plate, err := kasp.ParseFile(path)
				if err != nil {
					return err
				}
				plates = append(plates, plate)
			}
			return kasp.PlotFile(plates, output)
		}

		watch, _ := cmd.Flags().GetBool("watch")
		if !watch {
			if err := render(); err != nil {
				exitErr(err)
			}
			return
		}

		noColor, _ := cmd.Flags().GetBool("no-color")
		tui.PrintBanner(benchkit.Version, noColor)
		logger.Info("Watching plate files", "files", len(args), "output", output)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := kasp.Watch(ctx, logger, args, render); err != nil {
			exitErr(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(kaspCmd)

	kaspCmd.Flags().StringP("output", "o", "kasp.pdf", "Name of the output PDF")
	kaspCmd.Flags().BoolP("watch", "w", false, "Re-render the PDF whenever an input file changes")
}
