package utils

import "testing"

func TestTruncate(t *testing.T) {
	if got := Truncate("arrow-up-right", 10); got != "arrow-u..." {
		t.Errorf("Unexpected truncation: %q", got)
	}
	if got := Truncate("cloud", 10); got != "cloud" {
		t.Errorf("Expected short string unchanged, got %q", got)
	}
	if got := Truncate("abc", 3); got != "abc" {
		t.Errorf("Expected tiny max to pass through, got %q", got)
	}
}
