package sources

import (
	"path/filepath"

	"iconpack/pkg/data"
)

// Phosphor reads the @phosphor-icons/core package. Each weight has its own
// assets directory and the non-regular weights repeat the weight as a
// filename suffix ("acorn-bold.svg"), which is stripped to recover the
// logical name.
type Phosphor struct {
	baseDir string
}

func NewPhosphor(baseDir string) *Phosphor {
	return &Phosphor{baseDir: baseDir}
}

func (p *Phosphor) Name() string { return "phosphor" }

func (p *Phosphor) Metadata() data.LibraryMetadata {
	return data.LibraryMetadata{
		ID:          "phosphor",
		Name:        "Phosphor",
		Version:     "2.1.1",
		URL:         "https://phosphoricons.com",
		License:     "MIT",
		LicenseURL:  "https://github.com/phosphor-icons/core/blob/main/LICENSE",
		Attribution: "Tobias Fried, Helena Zhang",
		Description: "Flexible icon family with multiple weights",
	}
}

// weight directory -> local style tag
var phosphorWeights = []struct {
	dir   string
	style string
}{
	{"regular", "outline"},
	{"bold", "bold"},
	{"fill", "filled"},
}

func (p *Phosphor) Load(outDir string) ([]data.IconRecord, error) {
	if sourceMissing(filepath.Join(p.baseDir, "assets"), p.Name()) {
		return nil, nil
	}

	var icons []data.IconRecord
	for _, weight := range phosphorWeights {
		weightDir := filepath.Join(p.baseDir, "assets", weight.dir)
		if sourceMissing(weightDir, p.Name()) {
			continue
		}

		files, err := listSVGs(weightDir)
		if err != nil {
			return nil, err
		}

		for _, file := range files {
			name := StripStyleSuffix(file)
			if err := copyIcon(filepath.Join(weightDir, file+".svg"), outDir, p.Name(), weight.style, name); err != nil {
				return nil, err
			}
			icons = append(icons, newRecord(p.Name(), weight.style, name, "", nil))
		}
	}
	return icons, nil
}
