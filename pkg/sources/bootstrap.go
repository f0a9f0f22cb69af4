package sources

import (
	"path/filepath"
	"strings"

	"iconpack/pkg/data"
)

// Bootstrap reads the bootstrap-icons package: one flat icons/ directory
// where filled variants carry a -fill suffix next to their outline sibling.
type Bootstrap struct {
	baseDir string
}

func NewBootstrap(baseDir string) *Bootstrap {
	return &Bootstrap{baseDir: baseDir}
}

func (b *Bootstrap) Name() string { return "bootstrap" }

func (b *Bootstrap) Metadata() data.LibraryMetadata {
	return data.LibraryMetadata{
		ID:          "bootstrap",
		Name:        "Bootstrap Icons",
		Version:     "1.13.1",
		URL:         "https://icons.getbootstrap.com",
		License:     "MIT",
		LicenseURL:  "https://github.com/twbs/icons/blob/main/LICENSE",
		Attribution: "The Bootstrap Authors",
		Description: "Official open source icon library for Bootstrap",
	}
}

func (b *Bootstrap) Load(outDir string) ([]data.IconRecord, error) {
	iconDir := filepath.Join(b.baseDir, "icons")
	if sourceMissing(iconDir, b.Name()) {
		return nil, nil
	}

	files, err := listSVGs(iconDir)
	if err != nil {
		return nil, err
	}

	var icons []data.IconRecord
	for _, file := range files {
		style := "outline"
		if strings.HasSuffix(file, "-fill") {
			style = "filled"
		}
		name := StripStyleSuffix(file)

		if err := copyIcon(filepath.Join(iconDir, file+".svg"), outDir, b.Name(), style, name); err != nil {
			return nil, err
		}
		icons = append(icons, newRecord(b.Name(), style, name, "", nil))
	}
	return icons, nil
}
