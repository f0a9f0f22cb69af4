package integrations

import (
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
)

// PreviewRenderer rasterizes cleaned SVGs into a PNG contact sheet for
// visual QA of a library. Icons are rendered at twice the cell size and
// downscaled for cleaner edges.
type PreviewRenderer struct {
	CellSize int
	Columns  int
}

func NewPreviewRenderer() *PreviewRenderer {
	return &PreviewRenderer{CellSize: 48, Columns: 16}
}

// RenderSheet walks every .svg under dir and composes one sheet at outPath.
// An SVG that fails to rasterize is skipped and counted; one broken icon
// must not sink the sheet.
func (r *PreviewRenderer) RenderSheet(dir, outPath string) (rendered, skipped int, err error) {
	var paths []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".svg") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to enumerate svgs under %s: %w", dir, err)
	}
	if len(paths) == 0 {
		return 0, 0, fmt.Errorf("no svgs under %s", dir)
	}
	sort.Strings(paths)

	var cells []image.Image
	for _, path := range paths {
		cell, err := r.rasterize(path)
		if err != nil {
			skipped++
			continue
		}
		cells = append(cells, cell)
	}
	if len(cells) == 0 {
		return 0, skipped, fmt.Errorf("no svg under %s could be rasterized", dir)
	}

	sheet := r.compose(cells)

	out, err := os.Create(outPath)
	if err != nil {
		return 0, skipped, fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer out.Close()

	if err := png.Encode(out, sheet); err != nil {
		return 0, skipped, fmt.Errorf("failed to encode %s: %w", outPath, err)
	}
	return len(cells), skipped, nil
}

func (r *PreviewRenderer) rasterize(path string) (image.Image, error) {
	icon, err := oksvg.ReadIcon(path, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if icon.ViewBox.W == 0 || icon.ViewBox.H == 0 {
		return nil, fmt.Errorf("%s has an empty viewBox", path)
	}

	size := r.CellSize * 2
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)

	// Downscale 2x with CatmullRom for cleaner edges.
	cell := image.NewRGBA(image.Rect(0, 0, r.CellSize, r.CellSize))
	draw.CatmullRom.Scale(cell, cell.Bounds(), img, img.Bounds(), draw.Over, nil)
	return cell, nil
}

func (r *PreviewRenderer) compose(cells []image.Image) image.Image {
	cols := r.Columns
	if len(cells) < cols {
		cols = len(cells)
	}
	rows := (len(cells) + cols - 1) / cols

	sheet := image.NewRGBA(image.Rect(0, 0, cols*r.CellSize, rows*r.CellSize))
	for i, cell := range cells {
		x := (i % cols) * r.CellSize
		y := (i / cols) * r.CellSize
		rect := image.Rect(x, y, x+r.CellSize, y+r.CellSize)
		draw.Draw(sheet, rect, cell, cell.Bounds().Min, draw.Over)
	}
	return sheet
}
