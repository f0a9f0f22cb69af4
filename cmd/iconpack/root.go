package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"iconpack/pkg/app"
	"iconpack/pkg/data"
)

var rootCmd = &cobra.Command{
	Use:   "iconpack",
	Short: "Aggregate, categorize and publish SVG icon libraries",
	Long:  "Build a unified icon manifest from a dozen icon libraries, review categorization and publish the result",
	Run: func(cmd *cobra.Command, args []string) {
		// Launch the review TUI by default
		a := app.NewApp(data.NewCatalog())
		if err := a.Run(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(publishCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(reviewCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
