package sources

import (
	"path/filepath"
	"strings"

	"iconpack/pkg/data"
)

// Ionicons reads the ionicons package. All styles share one dist/svg
// directory: -outline and -sharp suffixes mark those variants, a bare name
// is the filled default.
type Ionicons struct {
	baseDir string
}

func NewIonicons(baseDir string) *Ionicons {
	return &Ionicons{baseDir: baseDir}
}

func (i *Ionicons) Name() string { return "ionicons" }

func (i *Ionicons) Metadata() data.LibraryMetadata {
	return data.LibraryMetadata{
		ID:          "ionicons",
		Name:        "Ionicons",
		Version:     "7.4.0",
		URL:         "https://ionic.io/ionicons",
		License:     "MIT",
		LicenseURL:  "https://github.com/ionic-team/ionicons/blob/main/LICENSE",
		Attribution: "Ionic Team",
		Description: "Premium icons built for Ionic Framework",
	}
}

func (i *Ionicons) Load(outDir string) ([]data.IconRecord, error) {
	iconDir := filepath.Join(i.baseDir, "dist", "svg")
	if sourceMissing(iconDir, i.Name()) {
		return nil, nil
	}

	files, err := listSVGs(iconDir)
	if err != nil {
		return nil, err
	}

	var icons []data.IconRecord
	for _, file := range files {
		style := "filled"
		switch {
		case strings.HasSuffix(file, "-outline"):
			style = "outline"
		case strings.HasSuffix(file, "-sharp"):
			style = "sharp"
		}
		name := StripStyleSuffix(file)

		if err := copyIcon(filepath.Join(iconDir, file+".svg"), outDir, i.Name(), style, name); err != nil {
			return nil, err
		}
		icons = append(icons, newRecord(i.Name(), style, name, "", nil))
	}
	return icons, nil
}
