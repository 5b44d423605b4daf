package brush

import "testing"

func TestClassifyPaintedAccumulatesTime(t *testing.T) {
	b := defaultTestBrush()
	b.classifyAndMaybeSplit(true, true, 0.1, 0.5, 0)

	if b.telemetry.totalPaintingTime != 0.1 {
		t.Errorf("totalPaintingTime = %v, want 0.1", b.telemetry.totalPaintingTime)
	}
	if b.telemetry.idlingTime != 0 {
		t.Errorf("idlingTime = %v, want 0", b.telemetry.idlingTime)
	}
}

func TestClassifyPaintedTriggersSplitPastThreshold(t *testing.T) {
	b := defaultTestBrush()
	obs := &recordingSplitObserver{}
	b.SetSplitObserver(obs)

	b.telemetry.totalPaintingTime = 10 // already > 5 + 10*pressure for small pressure
	b.classifyAndMaybeSplit(true, true, 0.1, 0.1, 0)

	if obs.calls != 1 {
		t.Errorf("split calls = %d, want 1", obs.calls)
	}
	if b.telemetry.totalPaintingTime != 0 {
		t.Errorf("totalPaintingTime after split = %v, want 0", b.telemetry.totalPaintingTime)
	}
}

func TestClassifyPaintedNoSplitWhenPressureDropping(t *testing.T) {
	b := defaultTestBrush()
	obs := &recordingSplitObserver{}
	b.SetSplitObserver(obs)

	b.telemetry.totalPaintingTime = 10
	b.classifyAndMaybeSplit(true, true, 0.1, 0.1, -0.01) // dpressure < 0

	if obs.calls != 0 {
		t.Error("split should not trigger when pressure is decreasing")
	}
}

func TestClassifyNotPaintedIdlingAccumulates(t *testing.T) {
	b := defaultTestBrush()
	b.classifyAndMaybeSplit(true, false, 0.2, 0.5, 0)

	if b.telemetry.idlingTime != 0.2 {
		t.Errorf("idlingTime = %v, want 0.2", b.telemetry.idlingTime)
	}
}

func TestClassifyNotPaintedSplitsOnIdlePrelude(t *testing.T) {
	b := defaultTestBrush()
	obs := &recordingSplitObserver{}
	b.SetSplitObserver(obs)

	// total_painting_time == 0 path: splits once idling exceeds 1.0.
	b.classifyAndMaybeSplit(true, false, 1.1, 0, 0)

	if obs.calls != 1 {
		t.Errorf("split calls = %d, want 1", obs.calls)
	}
}

func TestClassifyNotPaintedSplitsAfterPaintingThenIdling(t *testing.T) {
	b := defaultTestBrush()
	obs := &recordingSplitObserver{}
	b.SetSplitObserver(obs)

	b.telemetry.totalPaintingTime = 1
	b.classifyAndMaybeSplit(true, false, 1, 0, 0) // 1 (painting) + 1 (idling) > 1.5+0

	if obs.calls != 1 {
		t.Errorf("split calls = %d, want 1", obs.calls)
	}
}

func TestClassifyUnknownTreatsAsIdlingWhenAlreadyIdling(t *testing.T) {
	b := defaultTestBrush()
	b.telemetry.idlingTime = 0.5

	b.classifyAndMaybeSplit(false, false, 0.1, 0.5, 0)

	if b.telemetry.idlingTime != 0.6 {
		t.Errorf("idlingTime = %v, want 0.6 (unknown treated as idling)", b.telemetry.idlingTime)
	}
}

func TestClassifyUnknownTreatsAsPaintingWhenNotIdling(t *testing.T) {
	b := defaultTestBrush()
	b.telemetry.idlingTime = 0

	b.classifyAndMaybeSplit(false, false, 0.1, 0.5, 0)

	if b.telemetry.totalPaintingTime != 0.1 {
		t.Errorf("totalPaintingTime = %v, want 0.1 (unknown treated as painting)", b.telemetry.totalPaintingTime)
	}
}

func TestSplitResetsTelemetry(t *testing.T) {
	b := defaultTestBrush()
	b.telemetry.totalPaintingTime = 5
	b.telemetry.idlingTime = 2
	b.telemetry.unionBbox(Rect{X: 1, Y: 1, W: 1, H: 1})

	b.split()

	if b.telemetry.totalPaintingTime != 0 || b.telemetry.idlingTime != 0 || !b.telemetry.bbox.Empty() {
		t.Errorf("telemetry not reset after split: %+v", b.telemetry)
	}
}

func TestSplitWithNoObserverDoesNotPanic(t *testing.T) {
	b := defaultTestBrush()
	b.split() // no observer set
}
