package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"iconpack/pkg/integrations"
	"iconpack/pkg/services"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload a finished build to KV and object storage",
	Long:  "Push manifest.json and libraries.json to the KV namespace and the SVG tree to object storage. Without flags both phases run",
	Run: func(cmd *cobra.Command, args []string) {
		outDir, _ := cmd.Flags().GetString("out")
		manifestOnly, _ := cmd.Flags().GetBool("manifest")
		svgsOnly, _ := cmd.Flags().GetBool("svgs")
		library, _ := cmd.Flags().GetString("lib")
		concurrency, _ := cmd.Flags().GetInt("concurrency")

		if _, err := os.Stat(filepath.Join(outDir, "manifest.json")); err != nil {
			fmt.Fprintf(os.Stderr, "❌ %s/manifest.json not found, run 'iconpack build' first\n", outDir)
			os.Exit(1)
		}

		cfg, err := integrations.LoadConfig()
		cobra.CheckErr(err)
		if concurrency <= 0 {
			concurrency = cfg.Concurrency
		}

		publisher := services.NewPublisher(integrations.NewWrangler(cfg), concurrency)

		doManifest := manifestOnly || !svgsOnly
		doSVGs := svgsOnly || !manifestOnly

		if doManifest {
			fmt.Println("🚀 Uploading manifest documents...")
			if err := publisher.PublishManifest(outDir); err != nil {
				cobra.CheckErr(err)
			}
			fmt.Printf("✅ %s and %s updated\n", services.ManifestKey, services.LibrariesKey)
		}

		if doSVGs {
			if library != "" {
				fmt.Printf("🚀 Uploading SVGs for %s with %d workers...\n", library, concurrency)
			} else {
				fmt.Printf("🚀 Uploading SVG tree with %d workers...\n", concurrency)
			}

			tally, err := publisher.PublishSVGs(outDir, library)
			if err != nil {
				cobra.CheckErr(err)
			}

			fmt.Printf("✅ %d uploaded, %d failed\n", tally.Completed, tally.Failed)
			if tally.Failed > 0 {
				fmt.Println("⚠️  Failed uploads (re-run with --svgs --lib <name>):")
				for _, key := range tally.FailedKeys {
					fmt.Printf("   %s\n", key)
				}
			}
		}
	},
}

func init() {
	publishCmd.Flags().StringP("out", "o", "dist/icons", "Directory of the finished build")
	publishCmd.Flags().Bool("manifest", false, "Upload the manifest documents only")
	publishCmd.Flags().Bool("svgs", false, "Upload the SVG tree only")
	publishCmd.Flags().String("lib", "", "Restrict the SVG upload to one library")
	publishCmd.Flags().IntP("concurrency", "c", 0, "Upload workers (default from ICONPACK_CONCURRENCY)")
}
