package sources

import (
	"path/filepath"

	"iconpack/pkg/data"
)

// Heroicons reads the heroicons package. The 24px set ships as 24/outline
// and 24/solid directories; the 16px and 20px micro/mini sets are ignored so
// each logical icon appears once per style.
type Heroicons struct {
	baseDir string
}

func NewHeroicons(baseDir string) *Heroicons {
	return &Heroicons{baseDir: baseDir}
}

func (h *Heroicons) Name() string { return "heroicons" }

func (h *Heroicons) Metadata() data.LibraryMetadata {
	return data.LibraryMetadata{
		ID:          "heroicons",
		Name:        "Heroicons",
		Version:     "2.2.0",
		URL:         "https://heroicons.com",
		License:     "MIT",
		LicenseURL:  "https://github.com/tailwindlabs/heroicons/blob/master/LICENSE",
		Attribution: "Tailwind Labs",
		Description: "Hand-crafted icons by the makers of Tailwind CSS",
	}
}

func (h *Heroicons) Load(outDir string) ([]data.IconRecord, error) {
	if sourceMissing(filepath.Join(h.baseDir, "24"), h.Name()) {
		return nil, nil
	}

	var icons []data.IconRecord
	for _, style := range []string{"outline", "solid"} {
		styleDir := filepath.Join(h.baseDir, "24", style)
		if sourceMissing(styleDir, h.Name()) {
			continue
		}

		names, err := listSVGs(styleDir)
		if err != nil {
			return nil, err
		}

		for _, name := range names {
			if err := copyIcon(filepath.Join(styleDir, name+".svg"), outDir, h.Name(), style, name); err != nil {
				return nil, err
			}
			icons = append(icons, newRecord(h.Name(), style, name, "", nil))
		}
	}
	return icons, nil
}
