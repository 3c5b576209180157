package text

import (
	"image"
	"testing"
)

func inked(img *image.Alpha, r image.Rectangle) bool {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.AlphaAt(x, y).A != 0 {
				return true
			}
		}
	}
	return false
}

func TestRasterizeEmpty(t *testing.T) {
	img := Rasterize(nil)
	if img.Bounds().Dx() != 1 || img.Bounds().Dy() != 1 {
		t.Fatalf("empty raster: got %v, want 1x1", img.Bounds())
	}
	if inked(img, img.Bounds()) {
		t.Errorf("empty raster has ink")
	}
}

func TestRasterizeBounds(t *testing.T) {
	lines := []string{"pos 0.00 0.00 3.00", "fov 45"}
	img := Rasterize(lines)

	wantW := Measure(lines[0]) + 2*Padding
	wantH := 2*LineHeight() + 2*Padding
	if img.Bounds().Dx() != wantW || img.Bounds().Dy() != wantH {
		t.Fatalf("raster size: got %dx%d, want %dx%d", img.Bounds().Dx(), img.Bounds().Dy(), wantW, wantH)
	}
	if !inked(img, img.Bounds()) {
		t.Fatalf("raster has no ink")
	}
	// padding rows stay clear
	top := image.Rect(0, 0, img.Bounds().Dx(), 1)
	if inked(img, top) {
		t.Errorf("ink in top padding row")
	}
}

func TestMeasureMonospace(t *testing.T) {
	// basicfont 7x13 advances 7px per glyph
	if got := Measure("abcd"); got != 28 {
		t.Errorf("Measure: got %d, want 28", got)
	}
	if got := Measure(""); got != 0 {
		t.Errorf("Measure empty: got %d, want 0", got)
	}
}
