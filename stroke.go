package brush

import "math"

const (
	maxDiscontinuityDtime = 5.0
	maxDiscontinuityDabs  = 300.0 // arbitrary threshold, kept as documented in brush.hpp
)

// StrokeTo is the stroke driver's entry point (C7). It advances the
// brush by one pointer sample and paints zero or more dabs onto surf.
//
// If the previous stroke's SplitObserver reported failure, StrokeTo
// paints nothing and returns ErrSplitObserverFailed; the latch is
// cleared so the call after that behaves normally.
func (b *Brush) StrokeTo(surf Surface, x, y, pressure, dtime float64) error {
	if b.splitFailed {
		b.splitFailed = false
		return ErrSplitObserverFailed
	}
	if dtime <= 0 {
		if dtime < 0 {
			Logger().Warn("brush: dropped event with negative dtime", "dtime", dtime)
		}
		return nil
	}

	baseRadius := math.Exp(b.cfg.BaseValue(RadiusLogarithmic))
	x += b.rng.Gauss() * b.cfg.BaseValue(TrackingNoise) * baseRadius
	y += b.rng.Gauss() * b.cfg.BaseValue(TrackingNoise) * baseRadius

	s := &b.state
	trackFac := fac(b.cfg.BaseValue(SlowTracking), 100*dtime)
	x = s.X + trackFac*(x-s.X)
	y = s.Y + trackFac*(y-s.Y)

	distMoved := s.Dist
	distTodo := b.countDabsTo(x, y, dtime)

	if dtime > maxDiscontinuityDtime || distTodo > maxDiscontinuityDabs {
		s.reset()
		s.X, s.Y, s.Pressure = x, y, pressure
		s.Stroke = 1
		b.raiseSplit()
		return nil
	}

	x0, y0, p0 := s.X, s.Y, s.Pressure
	dtimeLeft := dtime
	anyPainted := false
	ranAnyDab := false

	for distMoved+distTodo >= 1 {
		var frac float64
		if distMoved > 0 {
			frac = (1 - distMoved) / distTodo
			distMoved = 0
		} else {
			frac = 1 / distTodo
		}

		dx := frac * (x - x0)
		dy := frac * (y - y0)
		dp := frac * (pressure - p0)
		dt := frac * dtimeLeft

		x0 += dx
		y0 += dy
		p0 += dp
		s.X, s.Y, s.Pressure = x0, y0, p0

		_, inputs := b.deriveInputs(dx, dy, dp, dt)
		values := b.evaluateAndAdvance(inputs)
		painted := b.prepareAndDrawDab(surf, values)
		ranAnyDab = true
		anyPainted = anyPainted || painted

		dtimeLeft -= dt
		distTodo = b.countDabsTo(x, y, dtimeLeft)
	}

	dxTail := x - x0
	dyTail := y - y0
	dpTail := pressure - p0
	s.X, s.Y, s.Pressure = x, y, pressure
	_, inputs := b.deriveInputs(dxTail, dyTail, dpTail, dtimeLeft)
	b.evaluateAndAdvance(inputs)
	s.Dist = distMoved + distTodo

	b.telemetry.unionBbox(surf.Bbox())
	surf.ResetBbox()

	// The splitter's painting/idling accumulators advance by the
	// tail's leftover time, not the whole event's dtime — matching
	// brush.hpp, where the tail step reassigns its local dtime to
	// dtime_left before the classification below runs.
	b.classifyAndMaybeSplit(ranAnyDab, anyPainted, dtimeLeft, pressure, dpTail)
	return nil
}

// countDabsTo computes how many dab-units of distance remain between
// the brush's current position and (x, y), combining distance moved,
// distance moved relative to the basic radius, and elapsed time.
// Before a brush's first dab, actual_radius is still its zero value;
// brush.hpp seeds it from the basic radius right here rather than
// waiting for the settings evaluator to run, then clamps it into
// range so the invariant on actual_radius holds from the very first
// call, not just after the first dab.
func (b *Brush) countDabsTo(x, y, dtime float64) float64 {
	s := &b.state
	baseRadius := math.Exp(b.cfg.BaseValue(RadiusLogarithmic))

	if s.ActualRadius == 0 {
		s.ActualRadius = baseRadius
	}
	s.ActualRadius = clamp(s.ActualRadius, actualRadiusMin, actualRadiusMax)

	dist := math.Hypot(x-s.X, y-s.Y)
	actual := dist / s.ActualRadius * b.cfg.BaseValue(DabsPerActualRadius)
	basic := dist / baseRadius * b.cfg.BaseValue(DabsPerBasicRadius)
	timed := dtime * b.cfg.BaseValue(DabsPerSecond)
	return actual + basic + timed
}
