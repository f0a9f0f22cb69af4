package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"iconpack/pkg/categories"
	"iconpack/pkg/data"
	"iconpack/pkg/utils"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the breakdown of the last build",
	Long:  "Display per-category, per-library and per-type counts from report.json in a formatted table",
	Run: func(cmd *cobra.Command, args []string) {
		outDir, _ := cmd.Flags().GetString("out")

		raw, err := os.ReadFile(filepath.Join(outDir, "report.json"))
		if err != nil {
			cobra.CheckErr(fmt.Errorf("no report found, run 'iconpack build' first: %w", err))
		}

		var report data.Report
		if err := json.Unmarshal(raw, &report); err != nil {
			cobra.CheckErr(fmt.Errorf("failed to parse report: %w", err))
		}

		fmt.Printf("\n📊 %d icons, %d categorized, %d uncategorized\n\n",
			report.Total, report.Categorized, len(report.Uncategorized))

		renderCounts("Category", categoryRows(report.ByCategory))
		renderCounts("Library", sortedRows(report.ByLibrary))
		renderCounts("Type", sortedRows(report.ByType))
	},
}

// categoryRows keeps the fixed category declaration order.
func categoryRows(counts map[string]int) []table.Row {
	var rows []table.Row
	for _, def := range categories.All {
		if counts[def.ID] == 0 {
			continue
		}
		rows = append(rows, table.Row{def.Label, fmt.Sprintf("%d", counts[def.ID])})
	}
	return rows
}

func sortedRows(counts map[string]int) []table.Row {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var rows []table.Row
	for _, key := range keys {
		rows = append(rows, table.Row{utils.Truncate(key, 28), fmt.Sprintf("%d", counts[key])})
	}
	return rows
}

func renderCounts(title string, rows []table.Row) {
	columns := []table.Column{
		{Title: title, Width: 30},
		{Title: "Icons", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.NoColor{}).
		Bold(false)
	t.SetStyles(s)

	fmt.Println(t.View())
	fmt.Println()
}

func init() {
	statsCmd.Flags().StringP("out", "o", "dist/icons", "Directory of the finished build")
}
