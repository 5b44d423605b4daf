package rastersurface

import (
	"testing"

	"github.com/paintcore/brush"
)

func TestDrawDabPaintsWithinRadius(t *testing.T) {
	s := New(20, 20)
	painted := s.DrawDab(10, 10, 5, brush.Red, 1, 0.8)
	if !painted {
		t.Fatal("DrawDab reported nothing painted")
	}
	c := s.at(10, 10)
	if c.A <= 0 {
		t.Errorf("center pixel alpha = %v, want > 0", c.A)
	}
}

func TestDrawDabUpdatesBbox(t *testing.T) {
	s := New(50, 50)
	s.ResetBbox()
	s.DrawDab(25, 25, 4, brush.RGBA{B: 1, A: 1}, 1, 0.5)

	bbox := s.Bbox()
	if bbox.Empty() {
		t.Fatal("Bbox() is empty after a painted dab")
	}
	if bbox.X > 21 || bbox.X+bbox.W < 29 {
		t.Errorf("Bbox() = %+v, expected to cover roughly x in [21,29]", bbox)
	}
}

func TestDrawDabZeroRadiusNoop(t *testing.T) {
	s := New(10, 10)
	if s.DrawDab(5, 5, 0, brush.Red, 1, 1) {
		t.Error("DrawDab with radius 0 should report nothing painted")
	}
}

func TestSampleColorAveragesRegion(t *testing.T) {
	s := New(30, 30)
	s.Clear(brush.White)
	s.DrawDab(15, 15, 3, brush.Black, 1, 1)

	sample := s.SampleColor(15, 15, 8)
	if sample.R >= 1 || sample.R <= 0 {
		t.Errorf("SampleColor() averaged R = %v, want strictly between 0 and 1", sample.R)
	}
}

func TestSampleColorZeroRadiusReadsSinglePixel(t *testing.T) {
	s := New(10, 10)
	s.Clear(brush.Red)
	got := s.SampleColor(5, 5, 0)
	if got.R != 1 || got.G != 0 || got.B != 0 {
		t.Errorf("SampleColor(0 radius) = %v, want pure red", got)
	}
}

func TestResetBboxClearsDirtyRect(t *testing.T) {
	s := New(10, 10)
	s.DrawDab(5, 5, 3, brush.Red, 1, 1)
	if s.Bbox().Empty() {
		t.Fatal("expected non-empty bbox after painting")
	}
	s.ResetBbox()
	if !s.Bbox().Empty() {
		t.Error("Bbox() should be empty right after ResetBbox")
	}
}

func TestSurfaceImplementsImageImage(t *testing.T) {
	s := New(4, 4)
	s.Clear(brush.RGBA{G: 1, A: 1})
	if s.Bounds().Dx() != 4 || s.Bounds().Dy() != 4 {
		t.Errorf("Bounds() = %v", s.Bounds())
	}
	r, g, b, _ := s.At(0, 0).RGBA()
	if r != 0 || b != 0 || g == 0 {
		t.Errorf("At(0,0) = (%d,%d,%d), want pure green", r, g, b)
	}
}
