package brush

// fakeSurface is a minimal brush.Surface test double that records
// every DrawDab call instead of rendering pixels.
type fakeSurface struct {
	dabs        []fakeDab
	sample      RGBA
	alwaysPaint bool
	neverPaint  bool

	bbox Rect
}

type fakeDab struct {
	x, y, radius float64
	color        RGBA
	opaque       float64
	hardness     float64
}

func (f *fakeSurface) DrawDab(x, y, radius float64, color RGBA, opaque, hardness float64) bool {
	f.dabs = append(f.dabs, fakeDab{x: x, y: y, radius: radius, color: color, opaque: opaque, hardness: hardness})
	f.unionBbox(Rect{X: x - radius, Y: y - radius, W: 2 * radius, H: 2 * radius})

	if f.neverPaint {
		return false
	}
	return f.alwaysPaint || opaque > 0
}

func (f *fakeSurface) SampleColor(x, y, radius float64) RGBA {
	return f.sample
}

func (f *fakeSurface) ResetBbox() {
	f.bbox = Rect{}
}

func (f *fakeSurface) Bbox() Rect {
	return f.bbox
}

func (f *fakeSurface) unionBbox(r Rect) {
	if f.bbox.W == 0 {
		f.bbox = r
		return
	}
	x0 := min(f.bbox.X, r.X)
	y0 := min(f.bbox.Y, r.Y)
	x1 := max(f.bbox.X+f.bbox.W, r.X+r.W)
	y1 := max(f.bbox.Y+f.bbox.H, r.Y+r.H)
	f.bbox = Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

var _ Surface = (*fakeSurface)(nil)
