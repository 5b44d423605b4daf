package brush

import "math"

// speedCoeffs is the precomputed (gamma, m, q) triple used to
// linearize one of the two speed inputs. It is pure cache, always
// derived from Config, never independently settable.
type speedCoeffs struct {
	gamma, m, q float64
}

// Config holds the settings (base values + input mappings) that stay
// constant for the duration of a stroke, plus the coefficients
// derived from them. Config outlives strokes; only explicit calls to
// SetBaseValue/SetMappingN/SetMappingPoint change it.
type Config struct {
	settings [SettingCount]Mapping
	speed    [2]speedCoeffs // index 0: Speed1Gamma-derived, index 1: Speed2Gamma-derived
}

// newConfig returns a Config with every setting at its zero base
// value and empty mappings, with speed coefficients precomputed for
// that all-zero state.
func newConfig() *Config {
	c := &Config{}
	c.recomputeSpeedCoeffs()
	return c
}

// checkSetting panics if s is not a valid ordinal. Out-of-range
// ordinals are a caller precondition violation.
func checkSetting(s Setting) {
	if s < 0 || s >= SettingCount {
		panic("brush: setting ordinal out of range")
	}
}

// checkInput panics if i is not a valid ordinal.
func checkInput(i Input) {
	if i < 0 || i >= InputCount {
		panic("brush: input ordinal out of range")
	}
}

// BaseValue returns the base value of setting s.
func (c *Config) BaseValue(s Setting) float64 {
	checkSetting(s)
	return c.settings[s].BaseValue()
}

// SetBaseValue writes the base value of setting s and recomputes the
// speed-mapping coefficients.
func (c *Config) SetBaseValue(s Setting, v float64) {
	checkSetting(s)
	c.settings[s].SetBaseValue(v)
	c.recomputeSpeedCoeffs()
}

// SetMappingN sets the number of control points of setting s's curve
// over input.
func (c *Config) SetMappingN(s Setting, input Input, n int) {
	checkSetting(s)
	checkInput(input)
	c.settings[s].SetN(input, n)
}

// SetMappingPoint writes control point index of setting s's curve
// over input.
func (c *Config) SetMappingPoint(s Setting, input Input, index int, x, y float64) {
	checkSetting(s)
	checkInput(input)
	c.settings[s].SetPoint(input, index, x, y)
}

// value evaluates setting s's mapping given the current input vector.
func (c *Config) value(s Setting, inputs [InputCount]float64) float64 {
	return c.settings[s].Value(inputs)
}

// recomputeSpeedCoeffs recomputes the (gamma, m, q) triple for speed1
// and speed2 from Speed1Gamma/Speed2Gamma, the hook that runs whenever
// any base value changes.
func (c *Config) recomputeSpeedCoeffs() {
	gammaSettings := [2]Setting{Speed1Gamma, Speed2Gamma}
	for i, gs := range gammaSettings {
		gamma := math.Exp(c.settings[gs].BaseValue())
		c1 := math.Log(45 + gamma)
		m := 0.015 * (45 + gamma)
		q := 0.5 - m*c1
		c.speed[i] = speedCoeffs{gamma: gamma, m: m, q: q}
	}
}
