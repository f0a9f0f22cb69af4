package data

import (
	"os"
	"path/filepath"
	"testing"
)

func setupTestCatalog(t *testing.T) (*Catalog, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "iconpack-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	catalog, err := OpenCatalog(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to open catalog: %v", err)
	}

	cleanup := func() {
		catalog.Close()
		os.RemoveAll(tmpDir)
	}

	return catalog, cleanup
}

func TestSaveAndGetIcon(t *testing.T) {
	catalog, cleanup := setupTestCatalog(t)
	defer cleanup()

	icon := &IconRecord{
		ID:       "lucide/outline/arrow-up",
		Name:     "Arrow Up",
		Library:  "lucide",
		Category: "arrows",
		Type:     "outline",
		Tags:     []string{"direction", "up"},
	}

	if err := catalog.SaveIcon(icon); err != nil {
		t.Fatalf("Failed to save icon: %v", err)
	}

	retrieved, err := catalog.GetIcon("lucide/outline/arrow-up")
	if err != nil {
		t.Fatalf("Failed to get icon: %v", err)
	}

	if retrieved == nil {
		t.Fatal("Expected icon to be found")
	}

	if retrieved.ID != icon.ID {
		t.Errorf("Expected ID %s, got %s", icon.ID, retrieved.ID)
	}

	if retrieved.Category != "arrows" {
		t.Errorf("Expected category arrows, got %s", retrieved.Category)
	}

	if len(retrieved.Tags) != 2 || retrieved.Tags[0] != "direction" {
		t.Errorf("Expected tags [direction up], got %v", retrieved.Tags)
	}
}

func TestGetIconNotFound(t *testing.T) {
	catalog, cleanup := setupTestCatalog(t)
	defer cleanup()

	icon, err := catalog.GetIcon("nope/outline/missing")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if icon != nil {
		t.Error("Expected nil for missing icon")
	}
}

func seedIcons(t *testing.T, catalog *Catalog) {
	t.Helper()

	icons := []IconRecord{
		{ID: "lucide/outline/cloud", Name: "Cloud", Library: "lucide", Category: "infrastructure", Type: "outline"},
		{ID: "lucide/outline/widget", Name: "Widget", Library: "lucide", Category: "misc", Type: "outline"},
		{ID: "tabler/filled/heart", Name: "Heart", Library: "tabler", Category: "health", Type: "filled"},
	}
	if err := catalog.SaveIcons(icons); err != nil {
		t.Fatalf("Failed to seed icons: %v", err)
	}
}

func TestListIcons(t *testing.T) {
	catalog, cleanup := setupTestCatalog(t)
	defer cleanup()

	icons, err := catalog.ListIcons()
	if err != nil {
		t.Fatalf("Failed to list icons: %v", err)
	}
	if len(icons) != 0 {
		t.Errorf("Expected 0 icons, got %d", len(icons))
	}

	seedIcons(t, catalog)

	icons, err = catalog.ListIcons()
	if err != nil {
		t.Fatalf("Failed to list icons: %v", err)
	}
	if len(icons) != 3 {
		t.Errorf("Expected 3 icons, got %d", len(icons))
	}
}

func TestUncategorized(t *testing.T) {
	catalog, cleanup := setupTestCatalog(t)
	defer cleanup()

	seedIcons(t, catalog)

	icons, err := catalog.Uncategorized()
	if err != nil {
		t.Fatalf("Failed to list uncategorized: %v", err)
	}
	if len(icons) != 1 {
		t.Fatalf("Expected 1 uncategorized icon, got %d", len(icons))
	}
	if icons[0].ID != "lucide/outline/widget" {
		t.Errorf("Expected lucide/outline/widget, got %s", icons[0].ID)
	}
}

func TestSetCategory(t *testing.T) {
	catalog, cleanup := setupTestCatalog(t)
	defer cleanup()

	seedIcons(t, catalog)

	if err := catalog.SetCategory("lucide/outline/widget", "devices"); err != nil {
		t.Fatalf("Failed to set category: %v", err)
	}

	icon, err := catalog.GetIcon("lucide/outline/widget")
	if err != nil {
		t.Fatalf("Failed to get icon: %v", err)
	}
	if icon.Category != "devices" {
		t.Errorf("Expected category devices, got %s", icon.Category)
	}

	if err := catalog.SetCategory("missing/outline/x", "devices"); err == nil {
		t.Error("Expected error when setting category of missing icon")
	}
}

func TestCountBy(t *testing.T) {
	catalog, cleanup := setupTestCatalog(t)
	defer cleanup()

	seedIcons(t, catalog)

	byLibrary, err := catalog.CountBy("library")
	if err != nil {
		t.Fatalf("Failed to count by library: %v", err)
	}
	if byLibrary["lucide"] != 2 || byLibrary["tabler"] != 1 {
		t.Errorf("Unexpected library counts: %v", byLibrary)
	}

	byType, err := catalog.CountBy("type")
	if err != nil {
		t.Fatalf("Failed to count by type: %v", err)
	}
	if byType["outline"] != 2 || byType["filled"] != 1 {
		t.Errorf("Unexpected type counts: %v", byType)
	}

	if _, err := catalog.CountBy("name; DROP TABLE icons"); err == nil {
		t.Error("Expected error for disallowed column")
	}
}

func TestReset(t *testing.T) {
	catalog, cleanup := setupTestCatalog(t)
	defer cleanup()

	seedIcons(t, catalog)

	if err := catalog.Reset(); err != nil {
		t.Fatalf("Failed to reset catalog: %v", err)
	}

	icons, err := catalog.ListIcons()
	if err != nil {
		t.Fatalf("Failed to list icons: %v", err)
	}
	if len(icons) != 0 {
		t.Errorf("Expected empty catalog after reset, got %d icons", len(icons))
	}
}
