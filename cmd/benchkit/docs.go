package main

import (
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benchlab/benchkit/internal/presentation/tui"
)

//go:embed guide.md
var userGuide string

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show the benchkit user guide",
	Run: func(cmd *cobra.Command, args []string) {
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor || !tui.ColorEnabled() {
			fmt.Print(userGuide)
			return
		}
		render := tui.NewRenderer()
		fmt.Print(render(userGuide))
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
