package sources

import (
	"path/filepath"
	"strings"

	"iconpack/pkg/data"
)

// Octicons reads the @primer/octicons package. Every icon exists per pixel
// size as name-16.svg / name-24.svg; the 24px asset wins when both exist.
// Brand and logo marks (logo-*, mark-*) are skipped: the icon set carries no
// third-party brand assets.
type Octicons struct {
	baseDir string
}

func NewOcticons(baseDir string) *Octicons {
	return &Octicons{baseDir: baseDir}
}

func (o *Octicons) Name() string { return "octicons" }

func (o *Octicons) Metadata() data.LibraryMetadata {
	return data.LibraryMetadata{
		ID:          "octicons",
		Name:        "Octicons",
		Version:     "19.15.1",
		URL:         "https://primer.style/octicons",
		License:     "MIT",
		LicenseURL:  "https://github.com/primer/octicons/blob/main/LICENSE",
		Attribution: "GitHub",
		Description: "GitHub's icon set, part of the Primer design system",
	}
}

func (o *Octicons) Load(outDir string) ([]data.IconRecord, error) {
	iconDir := filepath.Join(o.baseDir, "build", "svg")
	if sourceMissing(iconDir, o.Name()) {
		return nil, nil
	}

	files, err := listSVGs(iconDir)
	if err != nil {
		return nil, err
	}

	// name -> picked size, 24 preferred over 16
	picked := make(map[string]string)
	var order []string
	for _, file := range files {
		name, size, ok := splitOcticonSize(file)
		if !ok {
			continue
		}
		if strings.HasPrefix(name, "logo-") || strings.HasPrefix(name, "mark-") {
			continue
		}
		if prev, seen := picked[name]; !seen {
			picked[name] = size
			order = append(order, name)
		} else if size == "24" && prev == "16" {
			picked[name] = size
		}
	}

	var icons []data.IconRecord
	for _, name := range order {
		file := name + "-" + picked[name]
		if err := copyIcon(filepath.Join(iconDir, file+".svg"), outDir, o.Name(), "outline", name); err != nil {
			return nil, err
		}
		icons = append(icons, newRecord(o.Name(), "outline", name, "", nil))
	}
	return icons, nil
}

func splitOcticonSize(file string) (name, size string, ok bool) {
	for _, size := range []string{"16", "24"} {
		if trimmed := strings.TrimSuffix(file, "-"+size); trimmed != file {
			return trimmed, size, true
		}
	}
	return "", "", false
}
