package brush

// classifyAndMaybeSplit is the stroke splitter (C8): it decides
// whether the sub-event loop StrokeTo just ran counts as painting or
// idling, and whether that tips the stroke over into a split.
// ranAnyDab/anyPainted classify the sub-event loop; pressure is the
// event's final pressure, while dtime and dpressure are the tail step's
// leftover time and pressure change after the last whole dab (StrokeTo
// passes its dtimeLeft and dpTail), not the whole event's.
func (b *Brush) classifyAndMaybeSplit(ranAnyDab, anyPainted bool, dtime, pressure, dpressure float64) {
	t := &b.telemetry

	painted := anyPainted
	if !ranAnyDab {
		// "unknown": treat as idling if we were already idling, else
		// as a continuation of painting.
		painted = t.idlingTime <= 0
	}

	switch {
	case painted:
		t.totalPaintingTime += dtime
		t.idlingTime = 0
		if t.totalPaintingTime > 5+10*pressure && dpressure >= 0 {
			b.split()
		}
	default:
		t.idlingTime += dtime
		if t.totalPaintingTime == 0 {
			if t.idlingTime > 1.0 {
				b.split()
			}
		} else if t.totalPaintingTime+t.idlingTime > 1.5+5*pressure {
			b.split()
		}
	}
}

// raiseSplit is called on discontinuity detection, which splits
// unconditionally without going through the painted/idling
// classification.
func (b *Brush) raiseSplit() {
	b.split()
}

// split notifies the configured SplitObserver (if any) and resets
// stroke telemetry. The observer reads Brush.Bbox/TotalPaintingTime
// during the call if it needs them; both are cleared as soon as the
// call returns. A failing observer latches ErrSplitObserverFailed for
// the next StrokeTo call.
func (b *Brush) split() {
	t := &b.telemetry
	if b.splitObserver != nil {
		if err := b.splitObserver.OnSplit(); err != nil {
			Logger().Warn("brush: split observer failed", "err", err)
			b.splitFailed = true
		}
	}
	t.reset()
}
