package data

import "time"

// ManifestVersion is bumped when the manifest layout changes.
const ManifestVersion = 1

// IconRecord is one classified SVG asset from one source library.
// Records are immutable once produced; ID is "library/type/name".
type IconRecord struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Library  string   `json:"library"`
	Category string   `json:"category"`
	Type     string   `json:"type"`
	Tags     []string `json:"tags,omitempty"`
}

// CategoryDefinition describes one of the twenty fixed semantic buckets.
// Count is derived and recomputed on every manifest build.
type CategoryDefinition struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// LibraryMetadata is static per library except IconCount, which is derived.
type LibraryMetadata struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Version     string `json:"version"`
	URL         string `json:"url"`
	License     string `json:"license"`
	LicenseURL  string `json:"licenseUrl"`
	Attribution string `json:"attribution"`
	IconCount   int    `json:"iconCount"`
	Description string `json:"description"`
}

// Manifest is the aggregated document describing all icons, categories and
// libraries for one build. It is produced fresh on every run and overwrites
// prior output.
type Manifest struct {
	Version    int                  `json:"version"`
	Generated  time.Time            `json:"generated"`
	Icons      []IconRecord         `json:"icons"`
	Categories []CategoryDefinition `json:"categories"`
	Libraries  []LibraryMetadata    `json:"libraries"`
}

// Report holds the derived stats written to report.json. The Uncategorized
// list is the subset of icon ids still in the misc bucket, kept separately
// for manual review.
type Report struct {
	Total         int            `json:"total"`
	Categorized   int            `json:"categorized"`
	Uncategorized []string       `json:"uncategorized"`
	ByCategory    map[string]int `json:"byCategory"`
	ByLibrary     map[string]int `json:"byLibrary"`
	ByType        map[string]int `json:"byType"`
}
