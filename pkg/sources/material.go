package sources

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"iconpack/pkg/data"
)

// Material reads the @mdi/svg package (Material Design Icons). The svg/
// directory is flat; meta.json carries per-icon tags and a deprecation flag.
// Deprecated entries are skipped so they drop out of the manifest as soon as
// upstream retires them.
type Material struct {
	baseDir string
}

func NewMaterial(baseDir string) *Material {
	return &Material{baseDir: baseDir}
}

func (m *Material) Name() string { return "material" }

func (m *Material) Metadata() data.LibraryMetadata {
	return data.LibraryMetadata{
		ID:          "material",
		Name:        "Material Design Icons",
		Version:     "7.4.47",
		URL:         "https://pictogrammers.com/library/mdi",
		License:     "Apache-2.0",
		LicenseURL:  "https://github.com/Templarian/MaterialDesign/blob/master/LICENSE",
		Attribution: "Pictogrammers",
		Description: "Community-grown Material Design icon collection",
	}
}

type materialMeta struct {
	Name       string   `json:"name"`
	Tags       []string `json:"tags"`
	Deprecated bool     `json:"deprecated"`
}

func (m *Material) Load(outDir string) ([]data.IconRecord, error) {
	iconDir := filepath.Join(m.baseDir, "svg")
	if sourceMissing(iconDir, m.Name()) {
		return nil, nil
	}

	meta, err := m.loadMeta()
	if err != nil {
		return nil, err
	}

	names, err := listSVGs(iconDir)
	if err != nil {
		return nil, err
	}

	var icons []data.IconRecord
	for _, name := range names {
		entry, known := meta[name]
		if known && entry.Deprecated {
			continue
		}

		var tags []string
		if known {
			tags = entry.Tags
		}

		if err := copyIcon(filepath.Join(iconDir, name+".svg"), outDir, m.Name(), "solid", name); err != nil {
			return nil, err
		}
		icons = append(icons, newRecord(m.Name(), "solid", name, "", tags))
	}
	return icons, nil
}

func (m *Material) loadMeta() (map[string]materialMeta, error) {
	raw, err := os.ReadFile(filepath.Join(m.baseDir, "meta.json"))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read material meta: %w", err)
	}

	var entries []materialMeta
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse material meta: %w", err)
	}

	meta := make(map[string]materialMeta, len(entries))
	for _, entry := range entries {
		meta[entry.Name] = entry
	}
	return meta, nil
}
