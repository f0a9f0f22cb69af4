package sources

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"iconpack/pkg/categories"
	"iconpack/pkg/data"
)

// Source is one adapter over a vendor icon package. Load reads the vendor's
// on-disk layout, emits normalized icon records and, as a side effect, writes
// a comment-stripped copy of every SVG to {outDir}/{library}/{type}/{name}.svg.
//
// A missing vendor directory is not an error: the library simply is not
// installed, so Load returns an empty slice.
type Source interface {
	Name() string
	Metadata() data.LibraryMetadata
	Load(outDir string) ([]data.IconRecord, error)
}

// DefaultSources returns every adapter, rooted under vendorDir, in the order
// their records appear in the manifest.
func DefaultSources(vendorDir string) []Source {
	return []Source{
		NewLucide(filepath.Join(vendorDir, "lucide-static")),
		NewFeather(filepath.Join(vendorDir, "feather-icons")),
		NewTabler(filepath.Join(vendorDir, "@tabler", "icons")),
		NewHeroicons(filepath.Join(vendorDir, "heroicons")),
		NewPhosphor(filepath.Join(vendorDir, "@phosphor-icons", "core")),
		NewRemix(filepath.Join(vendorDir, "remixicon")),
		NewBootstrap(filepath.Join(vendorDir, "bootstrap-icons")),
		NewIonicons(filepath.Join(vendorDir, "ionicons")),
		NewOcticons(filepath.Join(vendorDir, "@primer", "octicons")),
		NewFluent(filepath.Join(vendorDir, "@fluentui", "svg-icons")),
		NewMaterial(filepath.Join(vendorDir, "@mdi", "svg")),
		NewBuiltin(),
	}
}

// sourceMissing reports (and logs) an absent vendor directory.
func sourceMissing(dir, library string) bool {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		log.Printf("⚠️  %s: %s not found, skipping library", library, dir)
		return true
	}
	return false
}

// listSVGs returns the sorted base names (without extension) of the .svg
// files directly inside dir.
func listSVGs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".svg") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".svg"))
	}
	sort.Strings(names)
	return names, nil
}

// newRecord builds one icon record. An empty category means "ask the
// categorizer"; adapters pass a non-empty category when the vendor taxonomy
// already resolved one.
func newRecord(library, typ, name, category string, tags []string) data.IconRecord {
	if category == "" {
		category = categories.Categorize(name, tags)
	}
	return data.IconRecord{
		ID:       library + "/" + typ + "/" + name,
		Name:     DisplayName(name),
		Library:  library,
		Category: category,
		Type:     typ,
		Tags:     tags,
	}
}

// writeIcon writes the cleaned SVG for one record into the output tree.
func writeIcon(outDir, library, typ, name string, svg []byte) error {
	dir := filepath.Join(outDir, library, typ)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	path := filepath.Join(dir, name+".svg")
	if err := os.WriteFile(path, CleanSVG(svg), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// copyIcon reads a vendor SVG and writes its cleaned copy.
func copyIcon(srcPath, outDir, library, typ, name string) error {
	svg, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", srcPath, err)
	}
	return writeIcon(outDir, library, typ, name, svg)
}
