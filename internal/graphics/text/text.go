// Package text rasterizes short HUD readouts into alpha bitmaps on the CPU.
package text

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Padding around the text block, in pixels
const Padding = 4

var face = basicfont.Face7x13

// LineHeight returns the distance between baselines in pixels
func LineHeight() int {
	return face.Metrics().Height.Ceil()
}

// Measure returns the advance width of line in pixels
func Measure(line string) int {
	return font.MeasureString(face, line).Ceil()
}

// Rasterize draws lines top to bottom into a new alpha image sized to fit
// them plus Padding on each side. No lines yields a 1x1 transparent image.
func Rasterize(lines []string) *image.Alpha {
	if len(lines) == 0 {
		return image.NewAlpha(image.Rect(0, 0, 1, 1))
	}

	maxW := 0
	for _, l := range lines {
		if w := Measure(l); w > maxW {
			maxW = w
		}
	}
	lh := LineHeight()
	img := image.NewAlpha(image.Rect(0, 0, maxW+2*Padding, len(lines)*lh+2*Padding))

	d := &font.Drawer{
		Dst:  img,
		Src:  image.Opaque,
		Face: face,
	}
	ascent := face.Metrics().Ascent.Ceil()
	for i, l := range lines {
		d.Dot = fixed.P(Padding, Padding+i*lh+ascent)
		d.DrawString(l)
	}
	return img
}
