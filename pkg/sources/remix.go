package sources

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"iconpack/pkg/categories"
	"iconpack/pkg/data"
)

// Remix reads the remixicon package. Icons are grouped into vendor category
// directories (icons/Buildings, icons/Finance, ...) and every icon ships as a
// -line / -fill pair. The vendor directory decides the category through
// remixCategories; the keyword categorizer is only the fallback for
// directories the map does not know.
type Remix struct {
	baseDir string
}

func NewRemix(baseDir string) *Remix {
	return &Remix{baseDir: baseDir}
}

func (r *Remix) Name() string { return "remix" }

func (r *Remix) Metadata() data.LibraryMetadata {
	return data.LibraryMetadata{
		ID:          "remix",
		Name:        "Remix Icon",
		Version:     "4.6.0",
		URL:         "https://remixicon.com",
		License:     "Apache-2.0",
		LicenseURL:  "https://github.com/Remix-Design/RemixIcon/blob/master/License",
		Attribution: "Remix Design",
		Description: "Neutral-style system symbols in line and fill pairs",
	}
}

// remixCategories maps the vendor taxonomy onto the local one. Kept as data
// so new vendor directories are one-line additions.
var remixCategories = map[string]string{
	"Arrows":        "arrows",
	"Buildings":     "infrastructure",
	"Business":      "commerce",
	"Communication": "communication",
	"Device":        "devices",
	"Document":      "files",
	"Editor":        "text",
	"Finance":       "commerce",
	"Food":          "food",
	"Health":        "health",
	"Map":           "maps",
	"Media":         "media",
	"System":        "actions",
	"User":          "people",
	"Weather":       "weather",
}

func (r *Remix) Load(outDir string) ([]data.IconRecord, error) {
	iconDir := filepath.Join(r.baseDir, "icons")
	if sourceMissing(iconDir, r.Name()) {
		return nil, nil
	}

	entries, err := os.ReadDir(iconDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", iconDir, err)
	}

	var groups []string
	for _, entry := range entries {
		if entry.IsDir() {
			groups = append(groups, entry.Name())
		}
	}
	sort.Strings(groups)

	var icons []data.IconRecord
	for _, group := range groups {
		groupDir := filepath.Join(iconDir, group)
		files, err := listSVGs(groupDir)
		if err != nil {
			return nil, err
		}

		for _, file := range files {
			style := "outline"
			if strings.HasSuffix(file, "-fill") {
				style = "filled"
			}
			name := StripStyleSuffix(file)

			category := remixCategories[group]
			if category == "" {
				category = categories.Categorize(name, []string{group})
			}

			if err := copyIcon(filepath.Join(groupDir, file+".svg"), outDir, r.Name(), style, name); err != nil {
				return nil, err
			}
			icons = append(icons, data.IconRecord{
				ID:       r.Name() + "/" + style + "/" + name,
				Name:     DisplayName(name),
				Library:  r.Name(),
				Category: category,
				Type:     style,
				Tags:     []string{group},
			})
		}
	}
	return icons, nil
}
