package sources

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFluentName(t *testing.T) {
	name, style, ok := parseFluentName("ic_fluent_arrow_up_24_regular")
	assert.True(t, ok)
	assert.Equal(t, "arrow-up", name)
	assert.Equal(t, "outline", style)

	name, style, ok = parseFluentName("ic_fluent_heart_24_filled")
	assert.True(t, ok)
	assert.Equal(t, "heart", name)
	assert.Equal(t, "filled", style)

	// Other sizes and foreign files are rejected.
	_, _, ok = parseFluentName("ic_fluent_heart_16_regular")
	assert.False(t, ok)
	_, _, ok = parseFluentName("readme")
	assert.False(t, ok)
}

func TestFluentLoad(t *testing.T) {
	baseDir := t.TempDir()
	outDir := t.TempDir()

	writeFixture(t, filepath.Join(baseDir, "icons", "ic_fluent_arrow_up_24_regular.svg"), "<svg/>")
	writeFixture(t, filepath.Join(baseDir, "icons", "ic_fluent_arrow_up_20_regular.svg"), "<svg/>")
	writeFixture(t, filepath.Join(baseDir, "icons", "ic_fluent_heart_24_filled.svg"), "<svg/>")

	icons, err := NewFluent(baseDir).Load(outDir)
	assert.NoError(t, err)
	assert.Len(t, icons, 2)

	assert.Equal(t, "fluent/outline/arrow-up", icons[0].ID)
	assert.Equal(t, "arrows", icons[0].Category)
	assert.Equal(t, "fluent/filled/heart", icons[1].ID)
	assert.Equal(t, "health", icons[1].Category)
}
