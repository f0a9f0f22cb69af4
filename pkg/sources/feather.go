package sources

import (
	"path/filepath"

	"iconpack/pkg/data"
)

// Feather reads the feather-icons package: one flat dist/icons directory,
// every icon a 24px stroke outline, no sidecar metadata.
type Feather struct {
	baseDir string
}

func NewFeather(baseDir string) *Feather {
	return &Feather{baseDir: baseDir}
}

func (f *Feather) Name() string { return "feather" }

func (f *Feather) Metadata() data.LibraryMetadata {
	return data.LibraryMetadata{
		ID:          "feather",
		Name:        "Feather",
		Version:     "4.29.2",
		URL:         "https://feathericons.com",
		License:     "MIT",
		LicenseURL:  "https://github.com/feathericons/feather/blob/main/LICENSE",
		Attribution: "Cole Bemis",
		Description: "Simply beautiful open source icons",
	}
}

func (f *Feather) Load(outDir string) ([]data.IconRecord, error) {
	iconDir := filepath.Join(f.baseDir, "dist", "icons")
	if sourceMissing(iconDir, f.Name()) {
		return nil, nil
	}

	names, err := listSVGs(iconDir)
	if err != nil {
		return nil, err
	}

	var icons []data.IconRecord
	for _, name := range names {
		if err := copyIcon(filepath.Join(iconDir, name+".svg"), outDir, f.Name(), "outline", name); err != nil {
			return nil, err
		}
		icons = append(icons, newRecord(f.Name(), "outline", name, "", nil))
	}
	return icons, nil
}
