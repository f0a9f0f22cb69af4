package utils

// Truncate shortens s to at most max characters, appending an ellipsis when
// something was cut.
func Truncate(s string, max int) string {
	if max <= 3 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
