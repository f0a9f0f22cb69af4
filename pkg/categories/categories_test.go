package categories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTwentyCategories(t *testing.T) {
	assert.Len(t, All, 20)
	assert.Equal(t, Misc, All[len(All)-1].ID)
}

func TestCategorizeTotality(t *testing.T) {
	names := []string{
		"arrow-up-right", "cloud", "zzz-unknown-glyph", "", "eye",
		"credit-card", "x", "shield-check", "spinner", "widget-9000",
	}
	for _, name := range names {
		cat := Categorize(name, nil)
		assert.True(t, IsValid(cat), "Categorize(%q) returned unknown category %q", name, cat)
	}
}

func TestCategorizeOverrides(t *testing.T) {
	// "download" would resolve to files and "cloud" to infrastructure;
	// the override pins the cloud pair to infrastructure.
	assert.Equal(t, "infrastructure", Categorize("cloud-download", nil))
	assert.Equal(t, "infrastructure", Categorize("cloud-upload", nil))

	// The people "eye-" keyword would claim eye-off before actions could.
	assert.Equal(t, "actions", Categorize("eye-off", nil))
	assert.Equal(t, "people", Categorize("eye", nil))
}

func TestCategorizeByName(t *testing.T) {
	assert.Equal(t, "arrows", Categorize("arrow-up-right", nil))
	assert.Equal(t, "arrows", Categorize("chevron-down", nil))
	assert.Equal(t, "infrastructure", Categorize("cloud", nil))
	assert.Equal(t, "files", Categorize("download", nil))
	assert.Equal(t, "commerce", Categorize("shopping-cart", nil))
	assert.Equal(t, "time", Categorize("calendar", nil))
	assert.Equal(t, "transport", Categorize("rocket", nil))
}

func TestCategorizeDeclarationOrderWins(t *testing.T) {
	// "trending-up" carries both a charts keyword and a files keyword
	// ("up" is not one, but "trending" is); charts wins only because no
	// earlier block matches first. "user-search" shows the opposite:
	// actions precedes people, so "search" claims it.
	assert.Equal(t, "charts", Categorize("trending-up", nil))
	assert.Equal(t, "actions", Categorize("user-search", nil))
}

func TestCategorizePrefixMatch(t *testing.T) {
	// "eye-" matches the bare name "eye" via the trailing-hyphen-stripped
	// prefix rule.
	assert.Equal(t, "people", Categorize("eye", nil))
	assert.Equal(t, "commerce", Categorize("tag", nil))
}

func TestCategorizeByTags(t *testing.T) {
	assert.Equal(t, "weather", Categorize("brightness-high", []string{"Sun", "daylight"}))
	assert.Equal(t, "development", Categorize("octocat", []string{"Git-Hub"}))
	assert.Equal(t, Misc, Categorize("blob", []string{"abstract"}))
}

func TestCategorizeDefault(t *testing.T) {
	assert.Equal(t, Misc, Categorize("zzz-unknown-glyph", nil))
	assert.Equal(t, Misc, Categorize("", nil))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Arrows", Label("arrows"))
	assert.Equal(t, "Miscellaneous", Label(Misc))
	assert.Equal(t, "bogus", Label("bogus"))
}
