package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"iconpack/pkg/integrations"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render PNG contact sheets of the built icons",
	Long:  "Rasterize every SVG in the build output into per-library contact sheets for visual review",
	Run: func(cmd *cobra.Command, args []string) {
		outDir, _ := cmd.Flags().GetString("out")
		library, _ := cmd.Flags().GetString("lib")

		libraries, err := previewTargets(outDir, library)
		cobra.CheckErr(err)
		if len(libraries) == 0 {
			fmt.Fprintln(os.Stderr, "No built libraries found, run 'iconpack build' first")
			os.Exit(1)
		}

		sheetDir := filepath.Join(outDir, "previews")
		if err := os.MkdirAll(sheetDir, 0755); err != nil {
			cobra.CheckErr(fmt.Errorf("failed to create preview directory: %w", err))
		}

		renderer := integrations.NewPreviewRenderer()
		for _, lib := range libraries {
			target := filepath.Join(sheetDir, lib+".png")
			rendered, skipped, err := renderer.RenderSheet(filepath.Join(outDir, lib), target)
			if err != nil {
				fmt.Printf("⚠️  %s: %v\n", lib, err)
				continue
			}
			if skipped > 0 {
				fmt.Printf("🖼  %s: %d icons (%d skipped) -> %s\n", lib, rendered, skipped, target)
			} else {
				fmt.Printf("🖼  %s: %d icons -> %s\n", lib, rendered, target)
			}
		}
	},
}

// previewTargets lists the library subdirectories of the build output,
// or just the requested one.
func previewTargets(outDir, library string) ([]string, error) {
	if library != "" {
		if _, err := os.Stat(filepath.Join(outDir, library)); err != nil {
			return nil, fmt.Errorf("library %s not found in %s", library, outDir)
		}
		return []string{library}, nil
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read output directory: %w", err)
	}

	var libraries []string
	for _, entry := range entries {
		if entry.IsDir() && entry.Name() != "previews" {
			libraries = append(libraries, entry.Name())
		}
	}
	sort.Strings(libraries)
	return libraries, nil
}

func init() {
	previewCmd.Flags().StringP("out", "o", "dist/icons", "Directory of the finished build")
	previewCmd.Flags().StringP("lib", "l", "", "Render a single library only")
}
