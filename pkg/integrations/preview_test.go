package integrations

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

const goodSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><rect x="2" y="2" width="20" height="20" fill="#000"/></svg>`

func writeSVG(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write svg: %v", err)
	}
}

func TestRenderSheet(t *testing.T) {
	dir := t.TempDir()
	writeSVG(t, filepath.Join(dir, "outline", "a.svg"), goodSVG)
	writeSVG(t, filepath.Join(dir, "outline", "b.svg"), goodSVG)
	writeSVG(t, filepath.Join(dir, "solid", "c.svg"), goodSVG)

	outPath := filepath.Join(t.TempDir(), "sheet.png")
	r := NewPreviewRenderer()

	rendered, skipped, err := r.RenderSheet(dir, outPath)
	if err != nil {
		t.Fatalf("RenderSheet failed: %v", err)
	}
	if rendered != 3 || skipped != 0 {
		t.Errorf("Expected 3 rendered, 0 skipped; got %d/%d", rendered, skipped)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("Failed to open sheet: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Sheet is not a valid PNG: %v", err)
	}

	// Three cells fit on one row of three columns.
	if img.Bounds().Dx() != 3*r.CellSize || img.Bounds().Dy() != r.CellSize {
		t.Errorf("Unexpected sheet size %v", img.Bounds())
	}
}

func TestRenderSheetSkipsBroken(t *testing.T) {
	dir := t.TempDir()
	writeSVG(t, filepath.Join(dir, "a.svg"), goodSVG)
	writeSVG(t, filepath.Join(dir, "broken.svg"), "<svg<<not-xml")

	rendered, skipped, err := NewPreviewRenderer().RenderSheet(dir, filepath.Join(t.TempDir(), "sheet.png"))
	if err != nil {
		t.Fatalf("RenderSheet failed: %v", err)
	}
	if rendered != 1 || skipped != 1 {
		t.Errorf("Expected 1 rendered, 1 skipped; got %d/%d", rendered, skipped)
	}
}

func TestRenderSheetEmptyDir(t *testing.T) {
	if _, _, err := NewPreviewRenderer().RenderSheet(t.TempDir(), "out.png"); err == nil {
		t.Error("Expected error for directory without svgs")
	}
}
