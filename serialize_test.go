package brush

import "testing"

func TestGetStateSetStateRoundtrip(t *testing.T) {
	s := State{
		X: 1.5, Y: -2.25, Pressure: 0.8, Dist: 0.1,
		ActualX: 3, ActualY: 4, ActualRadius: 5,
		NormSpeed1Slow: 0.2, NormSpeed2Slow: 0.3,
		NormDxSlow: 0.4, NormDySlow: 0.5,
		Stroke: 0.6, StrokeStarted: true,
		CustomInput: 0.7,
		SmudgeR:     0.1, SmudgeG: 0.2, SmudgeB: 0.3, SmudgeA: 0.4,
	}

	data := s.GetState()

	var restored State
	if err := restored.SetState(data); err != nil {
		t.Fatalf("SetState() error = %v", err)
	}

	if restored != s {
		t.Errorf("roundtrip mismatch:\n got  %+v\n want %+v", restored, s)
	}
}

func TestGetStateTagIsVersionOne(t *testing.T) {
	var s State
	data := s.GetState()
	if len(data) == 0 || data[0] != '1' {
		t.Fatalf("GetState()[0] = %v, want '1'", data[:1])
	}
	if len(data) != 1+4*StateCount {
		t.Errorf("len(GetState()) = %d, want %d", len(data), 1+4*StateCount)
	}
}

func TestSetStateRejectsBadTag(t *testing.T) {
	var s State
	err := s.SetState([]byte{'2', 0, 0, 0, 0})
	if err != ErrBadStateTag {
		t.Errorf("SetState() error = %v, want ErrBadStateTag", err)
	}
}

func TestSetStateRejectsEmpty(t *testing.T) {
	var s State
	if err := s.SetState(nil); err != ErrBadStateTag {
		t.Errorf("SetState(nil) error = %v, want ErrBadStateTag", err)
	}
}

func TestSetStateTruncatedPayloadZeroFillsTail(t *testing.T) {
	full := State{X: 1, Y: 2, Pressure: 0.5}
	data := full.GetState()

	truncated := data[:1+4*3] // tag + X, Y, Pressure only

	var restored State
	if err := restored.SetState(truncated); err != nil {
		t.Fatalf("SetState() error = %v", err)
	}
	if restored.X != 1 || restored.Y != 2 || restored.Pressure != 0.5 {
		t.Errorf("truncated restore lost leading fields: %+v", restored)
	}
	if restored.Dist != 0 || restored.SmudgeA != 0 {
		t.Errorf("truncated restore should zero-fill trailing fields: %+v", restored)
	}
}

func TestSetStateOverlongPayloadIgnoresExtra(t *testing.T) {
	full := State{X: 9}
	data := full.GetState()
	data = append(data, 0xFF, 0xFF, 0xFF, 0xFF) // extra trailing garbage

	var restored State
	if err := restored.SetState(data); err != nil {
		t.Fatalf("SetState() error = %v", err)
	}
	if restored.X != 9 {
		t.Errorf("restored.X = %v, want 9", restored.X)
	}
}
