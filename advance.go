package brush

import "math"

// evaluateAndAdvance is the settings evaluator and state advance
// pass. It must run immediately after deriveInputs, which populates
// b.subEvent. It returns the full settings_value array the dab
// preparer consumes.
func (b *Brush) evaluateAndAdvance(inputs [InputCount]float64) [SettingCount]float64 {
	var values [SettingCount]float64
	for s := Setting(0); s < SettingCount; s++ {
		values[s] = b.cfg.value(s, inputs)
	}

	s := &b.state
	d := b.subEvent

	s.ActualX += fac(values[SlowTrackingPerDab], 1.0) * (s.X - s.ActualX)
	s.ActualY += fac(values[SlowTrackingPerDab], 1.0) * (s.Y - s.ActualY)

	s.NormSpeed1Slow += fac(values[Speed1Slowness], d.dtime) * (math.Hypot(d.normDx, d.normDy) - s.NormSpeed1Slow)
	s.NormSpeed2Slow += fac(values[Speed2Slowness], d.dtime) * (math.Hypot(d.normDx, d.normDy) - s.NormSpeed2Slow)

	offsetSlowness := fac(math.Exp(values[OffsetBySpeedSlowness]*0.01)-1, d.dtime)
	s.NormDxSlow += offsetSlowness * (d.normDx - s.NormDxSlow)
	s.NormDySlow += offsetSlowness * (d.normDy - s.NormDySlow)

	s.CustomInput += fac(values[CustomInputSlowness], 0.1) * (values[CustomInput] - s.CustomInput)

	freq := math.Exp(-values[StrokeDurationLogarithmic])
	s.Stroke += d.normDist * freq
	if s.Stroke < 0 {
		// brush.hpp carries this clamp without explaining how stroke
		// could go negative; kept defensively.
		s.Stroke = 0
	}
	wrap := 1 + values[StrokeHoldtime]
	if s.Stroke > wrap {
		if wrap > 10.9 {
			s.Stroke = 1
		} else {
			s.Stroke = math.Mod(s.Stroke, wrap)
		}
	}

	s.ActualRadius = clamp(math.Exp(values[RadiusLogarithmic]), actualRadiusMin, actualRadiusMax)

	return values
}

const (
	actualRadiusMin = 0.2
	actualRadiusMax = 150.0
)

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
