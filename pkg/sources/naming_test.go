package sources

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Arrow Up Right", DisplayName("arrow-up-right"))
	assert.Equal(t, "Cloud", DisplayName("cloud"))
	assert.Equal(t, "Battery 50", DisplayName("battery-50"))
	assert.Equal(t, "", DisplayName(""))
}

func TestStripStyleSuffix(t *testing.T) {
	assert.Equal(t, "heart", StripStyleSuffix("heart-fill"))
	assert.Equal(t, "home", StripStyleSuffix("home-outline"))
	assert.Equal(t, "alarm", StripStyleSuffix("alarm-sharp"))
	assert.Equal(t, "acorn", StripStyleSuffix("acorn-bold"))
	assert.Equal(t, "git-branch", StripStyleSuffix("git-branch-line"))
	assert.Equal(t, "arrow-up", StripStyleSuffix("arrow-up_24_regular"))

	// No known suffix: unchanged.
	assert.Equal(t, "cloud", StripStyleSuffix("cloud"))
}

func TestStripStyleSuffixRoundTrip(t *testing.T) {
	suffixes := []string{"-outline", "-fill", "-line", "-sharp", "-bold"}
	names := []string{"cloud", "arrow-up", "credit-card", "x"}

	for _, name := range names {
		for _, suffix := range suffixes {
			assert.Equal(t, name, StripStyleSuffix(name+suffix),
				"round trip failed for %q + %q", name, suffix)
		}
	}
}

func TestStripStyleSuffixIdempotent(t *testing.T) {
	once := StripStyleSuffix("heart-fill")
	assert.Equal(t, once, StripStyleSuffix(once))
}

func TestCleanSVG(t *testing.T) {
	svg := "<!-- license banner -->\n<svg><!-- generator: x --><path d=\"M0 0\"/></svg>"
	cleaned := string(CleanSVG([]byte(svg)))

	assert.Equal(t, `<svg><path d="M0 0"/></svg>`, cleaned)
	assert.NotContains(t, cleaned, "<!--")
}

func TestCleanSVGMultilineComment(t *testing.T) {
	svg := "<svg><!--\nspanning\nlines\n--><circle r=\"1\"/></svg>"
	assert.Equal(t, `<svg><circle r="1"/></svg>`, string(CleanSVG([]byte(svg))))
}
