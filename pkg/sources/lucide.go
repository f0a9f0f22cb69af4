package sources

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"iconpack/pkg/data"
)

// Lucide reads the lucide-static package: a flat icons/ directory of
// stroke-based SVGs plus a tags.json sidecar mapping icon name to tag list.
type Lucide struct {
	baseDir string
}

func NewLucide(baseDir string) *Lucide {
	return &Lucide{baseDir: baseDir}
}

func (l *Lucide) Name() string { return "lucide" }

func (l *Lucide) Metadata() data.LibraryMetadata {
	return data.LibraryMetadata{
		ID:          "lucide",
		Name:        "Lucide",
		Version:     "0.525.0",
		URL:         "https://lucide.dev",
		License:     "ISC",
		LicenseURL:  "https://lucide.dev/license",
		Attribution: "Lucide Contributors",
		Description: "Community fork of Feather with a much larger set",
	}
}

func (l *Lucide) Load(outDir string) ([]data.IconRecord, error) {
	iconDir := filepath.Join(l.baseDir, "icons")
	if sourceMissing(iconDir, l.Name()) {
		return nil, nil
	}

	tags, err := l.loadTags()
	if err != nil {
		return nil, err
	}

	names, err := listSVGs(iconDir)
	if err != nil {
		return nil, err
	}

	var icons []data.IconRecord
	for _, name := range names {
		if err := copyIcon(filepath.Join(iconDir, name+".svg"), outDir, l.Name(), "outline", name); err != nil {
			return nil, err
		}
		icons = append(icons, newRecord(l.Name(), "outline", name, "", tags[name]))
	}
	return icons, nil
}

// loadTags reads tags.json; a missing sidecar just means no tags.
func (l *Lucide) loadTags() (map[string][]string, error) {
	raw, err := os.ReadFile(filepath.Join(l.baseDir, "tags.json"))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read lucide tags: %w", err)
	}

	tags := make(map[string][]string)
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil, fmt.Errorf("failed to parse lucide tags: %w", err)
	}
	return tags, nil
}
