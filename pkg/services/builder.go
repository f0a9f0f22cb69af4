package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"iconpack/pkg/categories"
	"iconpack/pkg/data"
)

// Builder aggregates every adapter's records into the manifest documents.
// The manifest is rebuilt from scratch on each run; there is no incremental
// update path.
type Builder struct {
	outDir string
	now    func() time.Time
}

func NewBuilder(outDir string) *Builder {
	return &Builder{outDir: outDir, now: time.Now}
}

// Build computes the manifest and the derived report from the concatenation
// of all adapters' icon records. It enforces the referential invariants:
// every icon's category must be a known category id and every icon's library
// must appear in the library list.
func (b *Builder) Build(icons []data.IconRecord, libraries []data.LibraryMetadata) (*data.Manifest, *data.Report, error) {
	libIndex := make(map[string]int, len(libraries))
	for i, lib := range libraries {
		libIndex[lib.ID] = i
	}

	report := &data.Report{
		Total:      len(icons),
		ByCategory: make(map[string]int),
		ByLibrary:  make(map[string]int),
		ByType:     make(map[string]int),
	}

	for _, icon := range icons {
		if !categories.IsValid(icon.Category) {
			return nil, nil, fmt.Errorf("icon %s has unknown category %q", icon.ID, icon.Category)
		}
		idx, ok := libIndex[icon.Library]
		if !ok {
			return nil, nil, fmt.Errorf("icon %s references unknown library %q", icon.ID, icon.Library)
		}

		libraries[idx].IconCount++
		report.ByCategory[icon.Category]++
		report.ByLibrary[icon.Library]++
		report.ByType[icon.Type]++
		if icon.Category == categories.Misc {
			report.Uncategorized = append(report.Uncategorized, icon.ID)
		}
	}
	report.Categorized = report.Total - len(report.Uncategorized)

	defs := make([]data.CategoryDefinition, len(categories.All))
	for i, def := range categories.All {
		defs[i] = data.CategoryDefinition{
			ID:    def.ID,
			Label: def.Label,
			Count: report.ByCategory[def.ID],
		}
	}

	manifest := &data.Manifest{
		Version:    data.ManifestVersion,
		Generated:  b.now().UTC(),
		Icons:      icons,
		Categories: defs,
		Libraries:  libraries,
	}
	return manifest, report, nil
}

// Write serializes manifest.json, libraries.json and report.json into the
// output directory, creating it if absent. Any other filesystem failure is
// fatal to the run; this is a one-shot build tool with nothing to retry.
func (b *Builder) Write(manifest *data.Manifest, report *data.Report) error {
	if err := os.MkdirAll(b.outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := b.writeJSON("manifest.json", manifest); err != nil {
		return err
	}
	if err := b.writeJSON("libraries.json", manifest.Libraries); err != nil {
		return err
	}
	return b.writeJSON("report.json", report)
}

func (b *Builder) writeJSON(name string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	path := filepath.Join(b.outDir, name)
	if err := os.WriteFile(path, append(raw, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
