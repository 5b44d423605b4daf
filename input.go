package brush

import "math"

// decay is an exponential low-pass helper: decay(T,t) is the fraction
// of the old value retained after time t with time constant T. Time
// constants at or below 1ms are treated as "no filtering" (decay 0,
// i.e. instant full replacement).
func decay(timeConstant, t float64) float64 {
	if timeConstant <= 1e-3 {
		return 0
	}
	return math.Exp(-t / timeConstant)
}

// fac is the complement of decay: the fraction of the target value
// mixed in by one low-pass update.
func fac(timeConstant, t float64) float64 {
	return 1 - decay(timeConstant, t)
}

// deriveInputs is the input deriver (C5). It mutates state's pressure
// clamp and stroke-phase fields in place (that mutation is genuinely
// part of deriving the input vector, not the later state-advance
// pass) and returns dtime normalized to be strictly positive along
// with the input vector fed to every Mapping.Value call this
// sub-event.
func (b *Brush) deriveInputs(dx, dy, dpressure, dtime float64) (normDtime float64, inputs [InputCount]float64) {
	if dtime <= 0 {
		if dtime < 0 {
			Logger().Warn("brush: negative dtime in sub-event", "dtime", dtime)
		}
		dtime = 1e-5
	}

	s := &b.state
	if s.Pressure < 0 {
		s.Pressure = 0
	} else if s.Pressure > 1 {
		s.Pressure = 1
	}

	threshold := b.cfg.BaseValue(StrokeTreshold)
	switch {
	case !s.StrokeStarted && s.Pressure > threshold+1e-4:
		s.StrokeStarted = true
		s.Stroke = 0
	case s.StrokeStarted && s.Pressure <= 0.9*threshold+1e-4:
		s.StrokeStarted = false
	}

	baseRadius := math.Exp(b.cfg.BaseValue(RadiusLogarithmic))
	normDx := dx / (dtime * baseRadius)
	normDy := dy / (dtime * baseRadius)
	normSpeed := math.Hypot(normDx, normDy)
	normDist := normSpeed * dtime

	speed1 := math.Log(b.cfg.speed[0].gamma+s.NormSpeed1Slow)*b.cfg.speed[0].m + b.cfg.speed[0].q
	speed2 := math.Log(b.cfg.speed[1].gamma+s.NormSpeed2Slow)*b.cfg.speed[1].m + b.cfg.speed[1].q

	strokeInput := s.Stroke
	if strokeInput > 1 {
		strokeInput = 1
	}

	angle := math.Mod(math.Atan2(s.NormDySlow, s.NormDxSlow)/math.Pi+1, 1)
	if angle < 0 {
		angle += 1
	}

	inputs[Pressure] = s.Pressure
	inputs[Speed1] = speed1
	inputs[Speed2] = speed2
	inputs[Random] = b.rng.Uniform()
	inputs[Stroke] = strokeInput
	inputs[Angle] = angle
	inputs[Custom] = s.CustomInput

	// normDist and normDx/normDy are needed by the state-advance pass
	// that immediately follows; stash them on the brush rather than
	// recomputing (they are pure functions of this sub-event's
	// dx,dy,dtime, already consumed here).
	b.subEvent = subEventDerived{
		dtime:      dtime,
		normDx:     normDx,
		normDy:     normDy,
		normDist:   normDist,
		baseRadius: baseRadius,
	}

	return dtime, inputs
}

// subEventDerived holds the §4.5 intermediates the §4.6 advance pass
// needs, computed once per sub-event.
type subEventDerived struct {
	dtime      float64
	normDx     float64
	normDy     float64
	normDist   float64
	baseRadius float64
}
