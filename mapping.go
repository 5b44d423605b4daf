package brush

import "github.com/paintcore/brush/internal/curve"

// Mapping holds one setting's base value plus its per-input-channel
// piecewise-linear curves (C2). Value computes
//
//	base_value + Σ_i curve(i)(inputs[i])
//
// An empty curve for a given input contributes 0. Mapping is owned
// exclusively by Config; callers reach it through
// Brush.SetBaseValue/SetMappingN/SetMappingPoint.
type Mapping struct {
	baseValue float64
	curves    [InputCount]curve.Curve
}

// Value evaluates the mapping given the current input vector.
func (m *Mapping) Value(inputs [InputCount]float64) float64 {
	v := m.baseValue
	for i := 0; i < int(InputCount); i++ {
		v += m.curves[i].Eval(inputs[i])
	}
	return v
}

// BaseValue returns the mapping's base_value component, independent
// of any input.
func (m *Mapping) BaseValue() float64 {
	return m.baseValue
}

// SetBaseValue writes the base value.
func (m *Mapping) SetBaseValue(v float64) {
	m.baseValue = v
}

// SetN sets the number of control points of the curve for input.
func (m *Mapping) SetN(input Input, n int) {
	m.curves[input].SetN(n)
}

// SetPoint writes control point index of the curve for input.
func (m *Mapping) SetPoint(input Input, index int, x, y float64) {
	m.curves[input].SetPoint(index, x, y)
}
