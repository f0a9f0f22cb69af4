package sources

import (
	"path/filepath"

	"iconpack/pkg/data"
)

// Tabler reads the @tabler/icons package. Styles live in separate
// icons/outline and icons/filled directories rather than filename suffixes.
type Tabler struct {
	baseDir string
}

func NewTabler(baseDir string) *Tabler {
	return &Tabler{baseDir: baseDir}
}

func (t *Tabler) Name() string { return "tabler" }

func (t *Tabler) Metadata() data.LibraryMetadata {
	return data.LibraryMetadata{
		ID:          "tabler",
		Name:        "Tabler Icons",
		Version:     "3.34.0",
		URL:         "https://tabler.io/icons",
		License:     "MIT",
		LicenseURL:  "https://github.com/tabler/tabler-icons/blob/main/LICENSE",
		Attribution: "Paweł Kuna",
		Description: "Pixel-perfect icons on a 24x24 grid",
	}
}

func (t *Tabler) Load(outDir string) ([]data.IconRecord, error) {
	if sourceMissing(filepath.Join(t.baseDir, "icons"), t.Name()) {
		return nil, nil
	}

	var icons []data.IconRecord
	for _, style := range []string{"outline", "filled"} {
		styleDir := filepath.Join(t.baseDir, "icons", style)
		if sourceMissing(styleDir, t.Name()) {
			continue
		}

		names, err := listSVGs(styleDir)
		if err != nil {
			return nil, err
		}

		for _, name := range names {
			if err := copyIcon(filepath.Join(styleDir, name+".svg"), outDir, t.Name(), style, name); err != nil {
				return nil, err
			}
			icons = append(icons, newRecord(t.Name(), style, name, "", nil))
		}
	}
	return icons, nil
}
