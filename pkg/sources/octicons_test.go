package sources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOcticonsPrefersLargerSize(t *testing.T) {
	baseDir := t.TempDir()
	outDir := t.TempDir()

	writeFixture(t, filepath.Join(baseDir, "build", "svg", "alert-16.svg"), `<svg data-size="16"/>`)
	writeFixture(t, filepath.Join(baseDir, "build", "svg", "alert-24.svg"), `<svg data-size="24"/>`)
	writeFixture(t, filepath.Join(baseDir, "build", "svg", "rocket-16.svg"), `<svg data-size="16"/>`)

	icons, err := NewOcticons(baseDir).Load(outDir)
	assert.NoError(t, err)
	assert.Len(t, icons, 2)

	// alert exists in both sizes: only one record, fed by the 24px asset.
	assert.Equal(t, "octicons/outline/alert", icons[0].ID)
	svg, err := os.ReadFile(filepath.Join(outDir, "octicons", "outline", "alert.svg"))
	assert.NoError(t, err)
	assert.Contains(t, string(svg), `data-size="24"`)

	// rocket only ships 16px; it is still included.
	assert.Equal(t, "octicons/outline/rocket", icons[1].ID)
}

func TestOcticonsSkipsBrandMarks(t *testing.T) {
	baseDir := t.TempDir()

	writeFixture(t, filepath.Join(baseDir, "build", "svg", "logo-github-16.svg"), "<svg/>")
	writeFixture(t, filepath.Join(baseDir, "build", "svg", "mark-github-16.svg"), "<svg/>")
	writeFixture(t, filepath.Join(baseDir, "build", "svg", "zap-16.svg"), "<svg/>")

	icons, err := NewOcticons(baseDir).Load(t.TempDir())
	assert.NoError(t, err)
	assert.Len(t, icons, 1)
	assert.Equal(t, "octicons/outline/zap", icons[0].ID)
}

func TestOcticonsIgnoresUnsizedFiles(t *testing.T) {
	baseDir := t.TempDir()

	writeFixture(t, filepath.Join(baseDir, "build", "svg", "sprite.svg"), "<svg/>")

	icons, err := NewOcticons(baseDir).Load(t.TempDir())
	assert.NoError(t, err)
	assert.Empty(t, icons)
}
