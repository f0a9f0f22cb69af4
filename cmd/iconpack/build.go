package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"iconpack/pkg/data"
	"iconpack/pkg/services"
	"iconpack/pkg/sources"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run the full icon pipeline",
	Long:  "Read every installed icon library, categorize the icons and write the cleaned SVG tree plus manifest documents",
	Run: func(cmd *cobra.Command, args []string) {
		vendorDir, _ := cmd.Flags().GetString("vendor")
		outDir, _ := cmd.Flags().GetString("out")
		dbPath, _ := cmd.Flags().GetString("db")

		catalog, err := data.OpenCatalog(dbPath)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("failed to open catalog: %w", err))
		}
		defer catalog.Close()

		fmt.Printf("🛠  Building icon set from %s\n", vendorDir)

		pipeline := services.NewPipeline(sources.DefaultSources(vendorDir), outDir, catalog)
		report, err := pipeline.Run()
		if err != nil {
			cobra.CheckErr(fmt.Errorf("build failed: %w", err))
		}

		fmt.Printf("✅ %d icons across %d libraries\n", report.Total, len(report.ByLibrary))
		fmt.Printf("📦 Output written to %s\n", outDir)

		if len(report.Uncategorized) > 0 {
			fmt.Printf("🔍 %d icons landed in misc, run 'iconpack review' to sort them\n", len(report.Uncategorized))
		}
	},
}

func init() {
	buildCmd.Flags().StringP("vendor", "v", "node_modules", "Directory holding the vendor icon packages")
	buildCmd.Flags().StringP("out", "o", "dist/icons", "Output directory for the SVG tree and manifest")
	buildCmd.Flags().String("db", "iconpack.db", "Path of the DuckDB catalog")
}
