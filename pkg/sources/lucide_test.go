package sources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeFixture(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create fixture dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
}

func TestLucideLoad(t *testing.T) {
	baseDir := t.TempDir()
	outDir := t.TempDir()

	writeFixture(t, filepath.Join(baseDir, "icons", "cloud.svg"),
		"<!-- lucide -->\n<svg><path d=\"M1 1\"/></svg>")
	writeFixture(t, filepath.Join(baseDir, "icons", "arrow-up-right.svg"),
		"<svg><path d=\"M2 2\"/></svg>")
	writeFixture(t, filepath.Join(baseDir, "tags.json"),
		`{"cloud": ["weather", "sky"]}`)

	icons, err := NewLucide(baseDir).Load(outDir)
	assert.NoError(t, err)
	assert.Len(t, icons, 2)

	// Sorted by filename, so arrow-up-right first.
	assert.Equal(t, "lucide/outline/arrow-up-right", icons[0].ID)
	assert.Equal(t, "Arrow Up Right", icons[0].Name)
	assert.Equal(t, "arrows", icons[0].Category)
	assert.Equal(t, "outline", icons[0].Type)

	assert.Equal(t, "lucide/outline/cloud", icons[1].ID)
	assert.Equal(t, []string{"weather", "sky"}, icons[1].Tags)
	assert.Equal(t, "infrastructure", icons[1].Category)

	cleaned, err := os.ReadFile(filepath.Join(outDir, "lucide", "outline", "cloud.svg"))
	assert.NoError(t, err)
	assert.NotContains(t, string(cleaned), "<!--")
}

func TestLucideMissingDir(t *testing.T) {
	icons, err := NewLucide(filepath.Join(t.TempDir(), "not-installed")).Load(t.TempDir())
	assert.NoError(t, err)
	assert.Empty(t, icons)
}

func TestLucideMissingTagsSidecar(t *testing.T) {
	baseDir := t.TempDir()
	writeFixture(t, filepath.Join(baseDir, "icons", "cloud.svg"), "<svg/>")

	icons, err := NewLucide(baseDir).Load(t.TempDir())
	assert.NoError(t, err)
	assert.Len(t, icons, 1)
	assert.Empty(t, icons[0].Tags)
}
