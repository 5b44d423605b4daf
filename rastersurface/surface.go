// Package rastersurface is a reference implementation of brush.Surface
// backed by an in-memory RGBA pixel buffer, specialized to what the
// dab simulator needs: dab compositing, a bounding-box dirty tracker,
// and PNG export.
package rastersurface

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/paintcore/brush"
	"golang.org/x/image/draw"
)

// Surface is a fixed-size RGBA canvas that implements brush.Surface.
// It is not safe for concurrent use, matching the Brush/Surface
// contract.
type Surface struct {
	width, height int
	data          []uint8 // RGBA, 4 bytes/pixel, unpremultiplied

	dirty    brush.Rect
	hasDirty bool
}

// New creates a blank (fully transparent) surface of the given size.
func New(width, height int) *Surface {
	return &Surface{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Clear fills the entire surface with c.
func (s *Surface) Clear(c brush.RGBA) {
	r, g, b, a := quantize(c)
	for i := 0; i < len(s.data); i += 4 {
		s.data[i+0], s.data[i+1], s.data[i+2], s.data[i+3] = r, g, b, a
	}
}

func quantize(c brush.RGBA) (r, g, b, a uint8) {
	clamp := func(v float64) uint8 {
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return uint8(v + 0.5)
	}
	return clamp(c.R * 255), clamp(c.G * 255), clamp(c.B * 255), clamp(c.A * 255)
}

func (s *Surface) at(x, y int) brush.RGBA {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return brush.Transparent
	}
	i := (y*s.width + x) * 4
	return brush.RGBA{
		R: float64(s.data[i+0]) / 255,
		G: float64(s.data[i+1]) / 255,
		B: float64(s.data[i+2]) / 255,
		A: float64(s.data[i+3]) / 255,
	}
}

func (s *Surface) set(x, y int, c brush.RGBA) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := (y*s.width + x) * 4
	r, g, b, a := quantize(c)
	s.data[i+0], s.data[i+1], s.data[i+2], s.data[i+3] = r, g, b, a
}

// dabCoverage implements a radial falloff profile parameterized by
// hardness: pixels inside hardness·radius are fully covered, pixels
// between there and radius fall off linearly, matching the shape (if
// not the exact polynomial) of MyPaint's dab hardness curve.
func dabCoverage(distRatio, hardness float64) float64 {
	if distRatio >= 1 {
		return 0
	}
	if hardness >= 1 {
		return 1
	}
	if distRatio <= hardness {
		return 1
	}
	return (1 - distRatio) / (1 - hardness)
}

// DrawDab implements brush.Surface. It composites a circular,
// hardness-profiled dab and reports whether any pixel's coverage was
// non-negligible.
func (s *Surface) DrawDab(x, y, radius float64, c brush.RGBA, opaque, hardness float64) bool {
	if radius <= 0 || opaque <= 0 {
		return false
	}

	x0 := int(math.Floor(x - radius))
	x1 := int(math.Ceil(x + radius))
	y0 := int(math.Floor(y - radius))
	y1 := int(math.Ceil(y + radius))

	painted := false
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			if px < 0 || px >= s.width || py < 0 || py >= s.height {
				continue
			}
			dist := math.Hypot(float64(px)+0.5-x, float64(py)+0.5-y)
			coverage := dabCoverage(dist/radius, hardness)
			alpha := coverage * opaque
			if alpha <= 1e-4 {
				continue
			}

			dst := s.at(px, py)
			src := c
			blended := dst.Lerp(src, alpha)
			blended.A = dst.A + (src.A-dst.A)*alpha
			s.set(px, py, blended)
			painted = true
		}
	}

	if painted {
		s.unionDirty(brush.Rect{
			X: float64(x0), Y: float64(y0),
			W: float64(x1 - x0 + 1), H: float64(y1 - y0 + 1),
		})
	}
	return painted
}

func (s *Surface) unionDirty(r brush.Rect) {
	if !s.hasDirty {
		s.dirty = r
		s.hasDirty = true
		return
	}
	x0 := math.Min(s.dirty.X, r.X)
	y0 := math.Min(s.dirty.Y, r.Y)
	x1 := math.Max(s.dirty.X+s.dirty.W, r.X+r.W)
	y1 := math.Max(s.dirty.Y+s.dirty.H, r.Y+r.H)
	s.dirty = brush.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// ResetBbox implements brush.Surface.
func (s *Surface) ResetBbox() {
	s.dirty = brush.Rect{}
	s.hasDirty = false
}

// Bbox implements brush.Surface.
func (s *Surface) Bbox() brush.Rect {
	return s.dirty
}

// SampleColor implements brush.Surface's smudge sampling by scaling
// the requested circular region's bounding box down to a single
// pixel with x/image/draw's bilinear scaler, which approximates a
// box average for the small radii the smudge mechanism uses.
func (s *Surface) SampleColor(px, py, radius float64) brush.RGBA {
	if radius <= 0 {
		x, y := int(math.Round(px)), int(math.Round(py))
		return s.at(x, y)
	}

	x0 := int(math.Floor(px - radius))
	x1 := int(math.Ceil(px + radius))
	y0 := int(math.Floor(py - radius))
	y1 := int(math.Ceil(py + radius))
	if x1 <= x0 || y1 <= y0 {
		return s.at(int(math.Round(px)), int(math.Round(py)))
	}

	src := s.subImage(x0, y0, x1, y1)
	dst := image.NewRGBA(image.Rect(0, 0, 1, 1))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return brush.FromColor(dst.At(0, 0))
}

func (s *Surface) subImage(x0, y0, x1, y1 int) image.Image {
	rect := image.Rect(0, 0, x1-x0, y1-y0)
	img := image.NewNRGBA(rect)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c := s.at(x, y)
			r, g, b, a := quantize(c)
			img.SetNRGBA(x-x0, y-y0, color.NRGBA{R: r, G: g, B: b, A: a})
		}
	}
	return img
}

// ToImage returns an image.RGBA view of the surface's current pixels.
func (s *Surface) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			c := s.at(x, y)
			img.Set(x, y, c.Color())
		}
	}
	return img
}

// SavePNG writes the surface's current pixels to path as a PNG.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, s.ToImage())
}

// At implements image.Image.
func (s *Surface) At(x, y int) color.Color {
	return s.at(x, y).Color()
}

// Bounds implements image.Image.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements image.Image.
func (s *Surface) ColorModel() color.Model {
	return color.NRGBAModel
}

var _ brush.Surface = (*Surface)(nil)
var _ image.Image = (*Surface)(nil)
