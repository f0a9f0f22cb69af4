package sources

import (
	"regexp"
	"strings"
)

// styleSuffixes are the filename suffixes vendors use to mark a style
// variant of the same logical icon. Order matters: longer suffixes first so
// "-outline" is stripped before "-line" gets a look at it.
var styleSuffixes = []string{"-outline", "_24_regular", "-sharp", "-bold", "-fill", "-line"}

// StripStyleSuffix removes one known style suffix from a logical icon name.
// Stripping is idempotent for names that carry no suffix.
func StripStyleSuffix(name string) string {
	for _, suffix := range styleSuffixes {
		if trimmed := strings.TrimSuffix(name, suffix); trimmed != name && trimmed != "" {
			return trimmed
		}
	}
	return name
}

// DisplayName turns a logical icon name into its display form:
// hyphens become spaces and every word is capitalized.
func DisplayName(name string) string {
	words := strings.Split(name, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

var commentPattern = regexp.MustCompile(`(?s)<!--.*?-->`)

// CleanSVG strips XML/HTML comments from an SVG document. Vendors ship
// license banners and generator notes as comments; the distributed copies
// carry attribution in libraries.json instead.
func CleanSVG(svg []byte) []byte {
	cleaned := commentPattern.ReplaceAll(svg, nil)
	return []byte(strings.TrimLeft(string(cleaned), "\n\r\t "))
}
