package categories

import "strings"

// Misc is the fallback bucket for icons nothing else claims.
const Misc = "misc"

// Definition is one of the twenty fixed semantic buckets every icon is
// sorted into.
type Definition struct {
	ID    string
	Label string
}

// All lists every category in declaration order. The keyword scan in
// Categorize walks keywordTable in this same order, so earlier categories
// win ties.
var All = []Definition{
	{"arrows", "Arrows"},
	{"actions", "Actions"},
	{"files", "Files"},
	{"communication", "Communication"},
	{"media", "Media"},
	{"commerce", "Commerce"},
	{"people", "People"},
	{"devices", "Devices"},
	{"infrastructure", "Infrastructure"},
	{"weather", "Weather"},
	{"maps", "Maps"},
	{"time", "Date & Time"},
	{"security", "Security"},
	{"text", "Text & Typography"},
	{"charts", "Charts"},
	{"development", "Development"},
	{"health", "Health"},
	{"food", "Food & Drink"},
	{"transport", "Transport"},
	{Misc, "Miscellaneous"},
}

// overrides resolves names whose keywords would otherwise land them in the
// wrong bucket (an earlier category's keyword matches before the intended
// one gets a chance).
var overrides = map[string]string{
	"cloud-download": "infrastructure",
	"cloud-upload":   "infrastructure",
	"eye-off":        "actions",
	"user-check":     "people",
	"user-plus":      "people",
	"user-minus":     "people",
	"calendar-check": "time",
	"calendar-plus":  "time",
	"calendar-minus": "time",
	"file-search":    "files",
	"file-plus":      "files",
	"file-minus":     "files",
	"file-check":     "files",
	"folder-search":  "files",
	"folder-plus":    "files",
	"folder-minus":   "files",
	"shield-check":   "security",
}

type keywordSet struct {
	category string
	keywords []string
}

// keywordTable is scanned linearly, category blocks in declaration order and
// keywords in table order; the first match wins. Matching is deliberately
// fuzzy substring/prefix containment, so a keyword embedded in an unrelated
// name can match. That is the long-standing behavior and changing it would
// reshuffle categorization wholesale.
var keywordTable = []keywordSet{
	{"arrows", []string{"arrow", "chevron", "caret", "corner-", "expand", "collapse", "move-"}},
	{"actions", []string{"check", "close", "cross", "plus", "minus", "edit", "pencil", "trash", "delete", "search", "filter", "refresh", "rotate", "undo", "redo", "settings", "toggle", "power", "drag", "save"}},
	{"files", []string{"file", "folder", "document", "archive", "clipboard", "download", "upload", "attachment", "paperclip", "copy", "paste"}},
	{"communication", []string{"mail", "message", "chat", "phone", "send", "inbox", "bell", "notification", "share", "megaphone", "rss"}},
	{"media", []string{"play", "pause", "music", "video", "camera", "image", "photo", "film", "volume", "mic", "speaker", "headphone", "record", "cast"}},
	{"commerce", []string{"cart", "shop", "store", "credit-card", "wallet", "coin", "currency", "dollar", "euro", "receipt", "gift", "percent", "basket", "tag-"}},
	{"people", []string{"user", "person", "people", "account", "profile", "eye-", "face-", "smile", "frown", "hand-", "thumb"}},
	{"devices", []string{"device", "desktop", "laptop", "tablet", "mobile", "monitor", "keyboard", "printer", "watch", "battery", "bluetooth", "usb", "cpu", "plug"}},
	{"infrastructure", []string{"cloud", "server", "database", "network", "wifi", "signal", "router", "terminal", "container", "hard-drive", "ethernet"}},
	{"weather", []string{"sun", "moon", "rain", "snow", "storm", "wind", "thermometer", "umbrella", "droplet", "fog", "tornado"}},
	{"maps", []string{"map", "location", "pin", "navigation", "compass", "globe", "world", "flag", "route", "milestone"}},
	{"time", []string{"clock", "calendar", "alarm", "timer", "hourglass", "stopwatch", "history"}},
	{"security", []string{"lock", "unlock", "key", "shield", "fingerprint", "password", "incognito", "scan-"}},
	{"text", []string{"text", "font", "bold", "italic", "underline", "strikethrough", "align", "list-", "heading", "paragraph", "quote", "typography"}},
	{"charts", []string{"chart", "graph", "analytics", "trending", "activity", "gauge", "dashboard", "presentation", "statistics"}},
	{"development", []string{"code", "git-", "branch", "commit", "merge", "bug", "bracket", "variable", "function", "api", "webhook", "binary"}},
	{"health", []string{"heart", "health", "medical", "pill", "stethoscope", "first-aid", "bandage", "syringe", "dna"}},
	{"food", []string{"coffee", "cup-", "pizza", "burger", "cake", "beer", "wine", "restaurant", "utensils", "egg", "ice-cream", "cookie"}},
	{"transport", []string{"car", "bus-", "train", "plane", "bike", "truck", "ship", "rocket", "anchor", "fuel", "sailboat"}},
}

// Categorize maps an icon name plus its tags to exactly one category id.
// Resolution order: exact-name override, keyword scan against the name,
// keyword scan against the tags, then misc. It is total; it never fails.
func Categorize(name string, tags []string) string {
	if cat, ok := overrides[name]; ok {
		return cat
	}

	for _, set := range keywordTable {
		for _, kw := range set.keywords {
			if matchName(name, kw) {
				return set.category
			}
		}
	}

	for _, set := range keywordTable {
		for _, kw := range set.keywords {
			for _, tag := range tags {
				if strings.Contains(strings.ToLower(tag), kw) {
					return set.category
				}
			}
		}
	}

	return Misc
}

func matchName(name, kw string) bool {
	return strings.Contains(name, kw) || strings.HasPrefix(name, strings.TrimSuffix(kw, "-"))
}

// IsValid reports whether id is one of the twenty category ids.
func IsValid(id string) bool {
	for _, def := range All {
		if def.ID == id {
			return true
		}
	}
	return false
}

// Label returns the display label for a category id, or the id itself if it
// is unknown.
func Label(id string) string {
	for _, def := range All {
		if def.ID == id {
			return def.Label
		}
	}
	return id
}
