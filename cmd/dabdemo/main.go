// Command dabdemo demonstrates the brush dab simulator by driving a
// few synthetic pointer strokes across a rastersurface.Surface and
// saving the result as a PNG.
package main

import (
	"flag"
	"log"
	"math"

	"github.com/paintcore/brush"
	"github.com/paintcore/brush/rastersurface"
)

func main() {
	var (
		width  = flag.Int("width", 800, "canvas width")
		height = flag.Int("height", 600, "canvas height")
		output = flag.String("output", "demo.png", "output file")
		seed   = flag.Uint64("seed", 1, "brush RNG seed")
	)
	flag.Parse()

	surf := rastersurface.New(*width, *height)
	surf.Clear(brush.White)

	b := defaultDemoBrush(*seed)

	drawStraightStroke(b, surf, float64(*height)/4)
	drawWobblyStroke(b, surf, float64(*height)/2)
	drawTapDemo(b, surf, float64(*height)*3/4)

	if err := surf.SavePNG(*output); err != nil {
		log.Fatalf("failed to save: %v", err)
	}
	log.Printf("demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// defaultDemoBrush configures a brush with a reasonable soft round
// brush baseline: a basic radius of e≈2.718, two dabs per actual
// radius, full opacity, and fairly soft falloff.
func defaultDemoBrush(seed uint64) *brush.Brush {
	b := brush.NewBrush(brush.WithSeed(seed))
	b.SetBaseValue(brush.RadiusLogarithmic, 1.0)
	b.SetBaseValue(brush.DabsPerActualRadius, 2)
	b.SetBaseValue(brush.Opaque, 1)
	b.SetBaseValue(brush.OpaqueMultiply, 1)
	b.SetBaseValue(brush.Hardness, 0.8)
	b.SetBaseValue(brush.ColorH, 210.0/360.0)
	b.SetBaseValue(brush.ColorS, 0.7)
	b.SetBaseValue(brush.ColorV, 0.9)
	return b
}

func drawStraightStroke(b *brush.Brush, surf brush.Surface, y float64) {
	if err := b.StrokeTo(surf, 50, y, 0.0, 0.1); err != nil {
		log.Printf("prelude event failed: %v", err)
	}
	for x := 50.0; x <= 750; x += 4 {
		if err := b.StrokeTo(surf, x, y, 1.0, 0.02); err != nil {
			log.Printf("stroke event failed: %v", err)
		}
	}
	_ = b.StrokeTo(surf, 750, y, 0.0, 0.1)
}

func drawWobblyStroke(b *brush.Brush, surf brush.Surface, y float64) {
	for i := 0; i <= 200; i++ {
		t := float64(i) / 200
		x := 50 + t*700
		wobble := math.Sin(t*12) * 20
		pressure := 0.3 + 0.7*math.Abs(math.Sin(t*6))
		if err := b.StrokeTo(surf, x, y+wobble, pressure, 0.015); err != nil {
			log.Printf("stroke event failed: %v", err)
		}
	}
	_ = b.StrokeTo(surf, 750, y, 0.0, 0.2)
}

func drawTapDemo(b *brush.Brush, surf brush.Surface, y float64) {
	for _, x := range []float64{100, 200, 300, 400, 500, 600, 700} {
		_ = b.StrokeTo(surf, x, y, 1.0, 0.05)
		_ = b.StrokeTo(surf, x, y, 0.0, 0.05)
		// A pause with no motion runs no dab, so the splitter books it
		// as painting time, not idling; it does not split by itself.
		_ = b.StrokeTo(surf, x, y, 0.0, 2.0)
	}
}
