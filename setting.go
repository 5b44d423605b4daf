package brush

// Setting identifies one of the brush's configurable dynamics. Each
// Setting has a base_value plus, for every Input channel, an optional
// piecewise-linear mapping curve (see Mapping). The ordinal value of a
// Setting is part of this package's public API (hosts address settings
// by ordinal) and must stay stable; new settings are appended, never
// inserted.
type Setting int

const (
	// Opaque is the base opacity of a dab, before OpaqueMultiply and
	// OpaqueLinearize are applied.
	Opaque Setting = iota
	// OpaqueMultiply scales Opaque.
	OpaqueMultiply
	// OpaqueLinearize compensates opacity for overlapping dabs so that
	// many small dabs sum to the configured target alpha.
	OpaqueLinearize
	// RadiusLogarithmic is log(base_radius); the dab radius before
	// random/speed jitter.
	RadiusLogarithmic
	// Hardness controls the dab's radial falloff profile.
	Hardness
	// DabsPerActualRadius scales dab cadence by distance moved in
	// units of the current actual radius.
	DabsPerActualRadius
	// DabsPerBasicRadius scales dab cadence by distance moved in
	// units of the (unjittered) base radius.
	DabsPerBasicRadius
	// DabsPerSecond adds a time-based dab cadence independent of
	// motion.
	DabsPerSecond
	// Speed1Gamma shapes the speed1 input's log-linearization.
	Speed1Gamma
	// Speed2Gamma shapes the speed2 input's log-linearization.
	Speed2Gamma
	// Speed1Slowness is the low-pass time constant for norm_speed1_slow.
	Speed1Slowness
	// Speed2Slowness is the low-pass time constant for norm_speed2_slow.
	Speed2Slowness
	// OffsetBySpeed displaces the dab along the smoothed velocity
	// vector.
	OffsetBySpeed
	// OffsetBySpeedSlowness is the low-pass time constant for the
	// velocity vector used by OffsetBySpeed.
	OffsetBySpeedSlowness
	// OffsetByRandom displaces the dab by Gaussian noise.
	OffsetByRandom
	// RadiusByRandom jitters the dab radius in log space.
	RadiusByRandom
	// StrokeTreshold is the pressure level (hysteresis center) at
	// which the stroke input's phase FSM starts/stops.
	StrokeTreshold
	// StrokeDurationLogarithmic is log(1/stroke_frequency); controls
	// how fast the stroke input accumulates with distance moved.
	StrokeDurationLogarithmic
	// StrokeHoldtime extends how long the stroke input holds near 1
	// before wrapping.
	StrokeHoldtime
	// CustomInput is the target value the custom_input state variable
	// low-pass filters toward.
	CustomInput
	// CustomInputSlowness is the low-pass time constant for
	// custom_input.
	CustomInputSlowness
	// Smudge controls how much of the dab's color comes from the
	// smudge buffer versus the base color.
	Smudge
	// SmudgeLength controls how quickly the smudge buffer forgets
	// previously sampled canvas color.
	SmudgeLength
	// ColorH is the base hue, in [0,1).
	ColorH
	// ColorS is the base HSV saturation, in [0,1].
	ColorS
	// ColorV is the base HSV value, in [0,1].
	ColorV
	// ChangeColorH adds a per-dab hue delta.
	ChangeColorH
	// ChangeColorHSVS adds a per-dab HSV saturation delta.
	ChangeColorHSVS
	// ChangeColorV adds a per-dab HSV value delta.
	ChangeColorV
	// ChangeColorL adds a per-dab HSL lightness delta.
	ChangeColorL
	// ChangeColorHSLS adds a per-dab HSL saturation delta.
	ChangeColorHSLS
	// TrackingNoise adds Gaussian jitter to the raw pointer position
	// before slow tracking.
	TrackingNoise
	// SlowTracking is the low-pass time constant for state.x/state.y
	// tracking the raw pointer position.
	SlowTracking
	// SlowTrackingPerDab is the low-pass time constant for
	// actual_x/actual_y tracking state.x/state.y.
	SlowTrackingPerDab

	// SettingCount is the number of settings. Keep last.
	SettingCount
)

// Input identifies one of the fixed input channels a Mapping curve may
// be defined over. Like Setting, its ordinal is part of the public
// wire/API surface and must stay stable.
type Input int

const (
	// Pressure is the last clamped pressure sample, in [0,1].
	Pressure Input = iota
	// Speed1 is a log-linearized, independently smoothed speed
	// signal.
	Speed1
	// Speed2 is a second, independently smoothed speed signal (same
	// formula as Speed1, different time constant).
	Speed2
	// Random is a fresh uniform draw in [0,1) on every sub-event.
	Random
	// Stroke is the stroke-phase accumulator, clamped to [0,1] for
	// input purposes.
	Stroke
	// Angle is the smoothed direction of travel, mapped to [0,1).
	Angle
	// Custom is the low-pass-filtered custom_input state variable.
	Custom

	// InputCount is the number of input channels. Keep last.
	InputCount
)

// String returns the setting's name.
func (s Setting) String() string {
	if s < 0 || s >= SettingCount {
		return "Setting(invalid)"
	}
	return settingNames[s]
}

// String returns the input channel's name.
func (i Input) String() string {
	if i < 0 || i >= InputCount {
		return "Input(invalid)"
	}
	return inputNames[i]
}

var settingNames = [SettingCount]string{
	Opaque:                     "Opaque",
	OpaqueMultiply:             "OpaqueMultiply",
	OpaqueLinearize:            "OpaqueLinearize",
	RadiusLogarithmic:          "RadiusLogarithmic",
	Hardness:                   "Hardness",
	DabsPerActualRadius:        "DabsPerActualRadius",
	DabsPerBasicRadius:         "DabsPerBasicRadius",
	DabsPerSecond:              "DabsPerSecond",
	Speed1Gamma:                "Speed1Gamma",
	Speed2Gamma:                "Speed2Gamma",
	Speed1Slowness:             "Speed1Slowness",
	Speed2Slowness:             "Speed2Slowness",
	OffsetBySpeed:              "OffsetBySpeed",
	OffsetBySpeedSlowness:      "OffsetBySpeedSlowness",
	OffsetByRandom:             "OffsetByRandom",
	RadiusByRandom:             "RadiusByRandom",
	StrokeTreshold:             "StrokeTreshold",
	StrokeDurationLogarithmic:  "StrokeDurationLogarithmic",
	StrokeHoldtime:             "StrokeHoldtime",
	CustomInput:                "CustomInput",
	CustomInputSlowness:        "CustomInputSlowness",
	Smudge:                     "Smudge",
	SmudgeLength:               "SmudgeLength",
	ColorH:                     "ColorH",
	ColorS:                     "ColorS",
	ColorV:                     "ColorV",
	ChangeColorH:               "ChangeColorH",
	ChangeColorHSVS:            "ChangeColorHSVS",
	ChangeColorV:               "ChangeColorV",
	ChangeColorL:               "ChangeColorL",
	ChangeColorHSLS:            "ChangeColorHSLS",
	TrackingNoise:              "TrackingNoise",
	SlowTracking:               "SlowTracking",
	SlowTrackingPerDab:         "SlowTrackingPerDab",
}

var inputNames = [InputCount]string{
	Pressure: "Pressure",
	Speed1:   "Speed1",
	Speed2:   "Speed2",
	Random:   "Random",
	Stroke:   "Stroke",
	Angle:    "Angle",
	Custom:   "Custom",
}
