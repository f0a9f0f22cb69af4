package sources

import (
	"path/filepath"
	"strings"

	"iconpack/pkg/data"
)

// Fluent reads the @fluentui/svg-icons package. Filenames follow
// ic_fluent_{snake_name}_{size}_{style}.svg; only the 24px regular and
// filled variants are kept and underscores become hyphens in the logical
// name.
type Fluent struct {
	baseDir string
}

func NewFluent(baseDir string) *Fluent {
	return &Fluent{baseDir: baseDir}
}

func (f *Fluent) Name() string { return "fluent" }

func (f *Fluent) Metadata() data.LibraryMetadata {
	return data.LibraryMetadata{
		ID:          "fluent",
		Name:        "Fluent UI System Icons",
		Version:     "1.1.302",
		URL:         "https://github.com/microsoft/fluentui-system-icons",
		License:     "MIT",
		LicenseURL:  "https://github.com/microsoft/fluentui-system-icons/blob/main/LICENSE",
		Attribution: "Microsoft",
		Description: "Fluent design system icon set",
	}
}

func (f *Fluent) Load(outDir string) ([]data.IconRecord, error) {
	iconDir := filepath.Join(f.baseDir, "icons")
	if sourceMissing(iconDir, f.Name()) {
		return nil, nil
	}

	files, err := listSVGs(iconDir)
	if err != nil {
		return nil, err
	}

	var icons []data.IconRecord
	for _, file := range files {
		name, style, ok := parseFluentName(file)
		if !ok {
			continue
		}

		if err := copyIcon(filepath.Join(iconDir, file+".svg"), outDir, f.Name(), style, name); err != nil {
			return nil, err
		}
		icons = append(icons, newRecord(f.Name(), style, name, "", nil))
	}
	return icons, nil
}

// parseFluentName extracts the logical name and style from a fluent
// filename, rejecting sizes other than 24.
func parseFluentName(file string) (name, style string, ok bool) {
	snake := strings.TrimPrefix(file, "ic_fluent_")
	if snake == file {
		return "", "", false
	}

	switch {
	case strings.HasSuffix(snake, "_24_regular"):
		name, style = strings.TrimSuffix(snake, "_24_regular"), "outline"
	case strings.HasSuffix(snake, "_24_filled"):
		name, style = strings.TrimSuffix(snake, "_24_filled"), "filled"
	default:
		return "", "", false
	}

	return strings.ReplaceAll(name, "_", "-"), style, true
}
