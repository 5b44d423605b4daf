package brush

import (
	"math"
	"testing"
)

func TestNewConfigAllZero(t *testing.T) {
	c := newConfig()
	for s := Setting(0); s < SettingCount; s++ {
		if got := c.BaseValue(s); got != 0 {
			t.Errorf("BaseValue(%v) = %v, want 0", s, got)
		}
	}
}

func TestSetBaseValueRoundtrip(t *testing.T) {
	c := newConfig()
	c.SetBaseValue(Opaque, 0.75)
	if got := c.BaseValue(Opaque); got != 0.75 {
		t.Errorf("BaseValue(Opaque) = %v, want 0.75", got)
	}
}

func TestCheckSettingPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on out-of-range setting ordinal")
		}
	}()
	checkSetting(SettingCount)
}

func TestCheckInputPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on out-of-range input ordinal")
		}
	}()
	checkInput(-1)
}

func TestRecomputeSpeedCoeffsMatchesFormula(t *testing.T) {
	c := newConfig()
	c.SetBaseValue(Speed1Gamma, 2.0)

	gamma := math.Exp(2.0)
	c1 := math.Log(45 + gamma)
	wantM := 0.015 * (45 + gamma)
	wantQ := 0.5 - wantM*c1

	got := c.speed[0]
	if math.Abs(got.gamma-gamma) > 1e-9 || math.Abs(got.m-wantM) > 1e-9 || math.Abs(got.q-wantQ) > 1e-9 {
		t.Errorf("speed[0] = %+v, want gamma=%v m=%v q=%v", got, gamma, wantM, wantQ)
	}
}

func TestSetBaseValueOnUnrelatedSettingLeavesSpeedCoeffsStable(t *testing.T) {
	c := newConfig()
	before := c.speed

	c.SetBaseValue(Opaque, 0.3)
	after := c.speed

	if before != after {
		t.Errorf("speed coefficients changed after unrelated SetBaseValue: %+v -> %+v", before, after)
	}
}

func TestSetMappingPointAffectsValue(t *testing.T) {
	c := newConfig()
	c.SetMappingN(Opaque, Pressure, 2)
	c.SetMappingPoint(Opaque, Pressure, 0, 0, 0)
	c.SetMappingPoint(Opaque, Pressure, 1, 1, 1)

	var inputs [InputCount]float64
	inputs[Pressure] = 1
	if got := c.value(Opaque, inputs); got != 1 {
		t.Errorf("value(Opaque) = %v, want 1", got)
	}
}
