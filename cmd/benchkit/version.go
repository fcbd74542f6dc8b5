package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benchlab/benchkit"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of benchkit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("benchkit version %s\n", benchkit.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
