package brush

import "math"

// prepareAndDrawDab is the dab preparer (C6). It returns whether the
// surface reports any pixel was actually painted.
func (b *Brush) prepareAndDrawDab(surf Surface, values [SettingCount]float64) bool {
	s := &b.state

	opaque := clamp(values[Opaque]*values[OpaqueMultiply], 0, 1)
	if values[OpaqueLinearize] > 0 {
		dpp := math.Max(1, 2*(b.cfg.BaseValue(DabsPerActualRadius)+b.cfg.BaseValue(DabsPerBasicRadius)))
		dpp = 1 + values[OpaqueLinearize]*(dpp-1)
		opaque = 1 - math.Pow(1-opaque, 1/dpp)
	}

	baseRadius := math.Exp(b.cfg.BaseValue(RadiusLogarithmic))
	x := s.ActualX + values[OffsetBySpeed]*0.1*baseRadius*s.NormDxSlow
	y := s.ActualY + values[OffsetBySpeed]*0.1*baseRadius*s.NormDySlow
	x += values[OffsetByRandom] * baseRadius * b.rng.Gauss()
	y += values[OffsetByRandom] * baseRadius * b.rng.Gauss()

	radius := s.ActualRadius
	if values[RadiusByRandom] > 0 {
		jittered := math.Exp(values[RadiusLogarithmic] + b.rng.Gauss()*values[RadiusByRandom])
		jittered = clamp(jittered, actualRadiusMin, actualRadiusMax)
		ratio := radius / jittered
		opaque *= math.Min(1, ratio*ratio)
		radius = jittered
	}

	h, sat, v, _ := b.dabColor(values)

	if values[SmudgeLength] < 1 {
		f := math.Max(0, values[SmudgeLength])
		sampled := surf.SampleColor(math.Round(x), math.Round(y), 5)
		s.SmudgeR = f*s.SmudgeR + (1-f)*sampled.R
		s.SmudgeG = f*s.SmudgeG + (1-f)*sampled.G
		s.SmudgeB = f*s.SmudgeB + (1-f)*sampled.B
		s.SmudgeA = f*s.SmudgeA + (1-f)*sampled.A
	}

	h += values[ChangeColorH]
	sat += values[ChangeColorHSVS]
	v += values[ChangeColorV]

	if values[ChangeColorL] != 0 || values[ChangeColorHSLS] != 0 {
		hh, ss, ll := HSV(h*360, sat, v).Hsl()
		ll += values[ChangeColorL]
		ss += values[ChangeColorHSLS]
		h2, s2, v2 := HSL(hh, clamp(ss, 0, 1), clamp(ll, 0, 1)).Hsv()
		h, sat, v = h2/360, s2, v2
	}

	hQuant := math.Mod(math.Mod(h*360, 360)+360, 360)
	sQuant := clamp(math.Round(sat*255), 0, 255)
	vQuant := clamp(math.Round(v*255), 0, 255)
	rgb := HSV(hQuant, sQuant/255, vQuant/255)

	hardness := clamp(values[Hardness], 0, 1)

	painted := surf.DrawDab(x, y, radius, RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 1}, opaque, hardness)

	if b.debugInputs {
		Logger().Debug("brush: dab",
			"x", x, "y", y, "radius", radius, "opaque", opaque, "hardness", hardness, "painted", painted)
	}
	return painted
}

// dabColor resolves the dab's base HSV color by blending the
// configured base color with the smudge buffer, and the eraser
// strength that goes with that blend. It reads the color settings'
// base values rather than their per-sub-event mapped values:
// brush.hpp:404-406,417-419 read settings[BRUSH_COLOR_H]->base_value
// directly here, bypassing whatever curve those settings have over an
// input.
func (b *Brush) dabColor(values [SettingCount]float64) (h, s, v, eraser float64) {
	smudge := clamp(values[Smudge], 0, 1)
	st := &b.state

	switch {
	case smudge <= 0:
		return b.cfg.BaseValue(ColorH), b.cfg.BaseValue(ColorS), b.cfg.BaseValue(ColorV), 1
	case smudge >= 1:
		hh, ss, vv := RGBA{R: st.SmudgeR, G: st.SmudgeG, B: st.SmudgeB}.Hsv()
		return hh / 360, ss, vv, st.SmudgeA
	default:
		base := HSV(b.cfg.BaseValue(ColorH)*360, b.cfg.BaseValue(ColorS), b.cfg.BaseValue(ColorV))
		r := base.R*(1-smudge) + st.SmudgeR*smudge
		g := base.G*(1-smudge) + st.SmudgeG*smudge
		bch := base.B*(1-smudge) + st.SmudgeB*smudge
		hh, ss, vv := RGBA{R: r, G: g, B: bch}.Hsv()
		return hh / 360, ss, vv, (1-smudge) + smudge*st.SmudgeA
	}
}
