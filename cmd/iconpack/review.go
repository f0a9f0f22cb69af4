package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"iconpack/pkg/app"
	"iconpack/pkg/data"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review uncategorized icons interactively",
	Long:  "Open the terminal UI to browse the catalog and assign categories to icons the classifier could not place",
	Run: func(cmd *cobra.Command, args []string) {
		dbPath, _ := cmd.Flags().GetString("db")

		catalog, err := data.OpenCatalog(dbPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "No catalog at %s, run 'iconpack build' first\n", dbPath)
			os.Exit(1)
		}
		defer catalog.Close()

		cobra.CheckErr(app.NewApp(catalog).Run())
	},
}

func init() {
	reviewCmd.Flags().String("db", "iconpack.db", "Path to the icon catalog database")
}
