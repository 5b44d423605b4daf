package brush

// Brush is a dab-based paint brush: a stateful engine that turns a
// stream of pointer samples into dabs painted onto a Surface. It
// composes an immutable-during-a-stroke Config (base values and
// mappings) with a mutable State (the state vector); the stroke
// telemetry and the RNG are held by Brush itself, not by State. See
// Config and State.
//
// A Brush is not safe for concurrent use: exactly one goroutine may
// call its methods at a time, and none of its methods block.
type Brush struct {
	cfg   *Config
	state State
	rng   randSource

	telemetry strokeTelemetry

	splitObserver SplitObserver
	splitFailed   bool

	debugInputs bool

	// subEvent is scratch state shared between deriveInputs and
	// evaluateAndAdvance within a single sub-event; it is not part of
	// the serialized State.
	subEvent subEventDerived
}

// NewBrush returns a Brush with every setting at its default base
// value, a zeroed state vector, and an RNG seeded from the current
// time. Options can override the RNG seed/source or attach
// a SplitObserver.
func NewBrush(opts ...BrushOption) *Brush {
	o := defaultBrushOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := &Brush{
		cfg:           newConfig(),
		splitObserver: o.splitObserver,
	}
	if o.rand != nil {
		b.rng = o.rand
	} else {
		b.rng = newDefaultRand(o.seed)
	}
	return b
}

// SetBaseValue writes the base value of setting s and recomputes the
// speed-mapping coefficients.
func (b *Brush) SetBaseValue(s Setting, v float64) {
	b.cfg.SetBaseValue(s, v)
}

// BaseValue returns the base value of setting s.
func (b *Brush) BaseValue(s Setting) float64 {
	return b.cfg.BaseValue(s)
}

// SetMappingN sets the number of control points of setting s's curve
// over input.
func (b *Brush) SetMappingN(s Setting, input Input, n int) {
	b.cfg.SetMappingN(s, input, n)
}

// SetMappingPoint writes control point index of setting s's curve
// over input.
func (b *Brush) SetMappingPoint(s Setting, input Input, index int, x, y float64) {
	b.cfg.SetMappingPoint(s, input, index, x, y)
}

// SetSplitObserver replaces the host split callback slot. Passing nil
// clears it.
func (b *Brush) SetSplitObserver(o SplitObserver) {
	b.splitObserver = o
}

// Split forces an immediate split, as if the stroke splitter's
// trigger conditions had just been met. Unlike the splitter's own
// automatic splits, it also resets the state vector.
func (b *Brush) Split() {
	b.split()
	b.state.reset()
}

// State returns a copy of the current state vector.
func (b *Brush) State() State {
	return b.state
}

// Bbox returns the dirty rectangle accumulated across every dab drawn
// since the current stroke began. It is the rectangle a SplitObserver
// should read during OnSplit, before the split clears it.
func (b *Brush) Bbox() Rect {
	return b.telemetry.bbox
}

// TotalPaintingTime returns the accumulated painting time for the
// current stroke, the companion figure to Bbox for a SplitObserver
// reading state during OnSplit.
func (b *Brush) TotalPaintingTime() float64 {
	return b.telemetry.totalPaintingTime
}

// SetState restores the state vector in place and resets stroke
// telemetry, since replacing the state vector from outside always
// starts a fresh stroke.
func (b *Brush) SetState(data []byte) error {
	if err := b.state.SetState(data); err != nil {
		return err
	}
	b.telemetry.reset()
	return nil
}

// GetState serializes the current state vector.
func (b *Brush) GetState() []byte {
	return b.state.GetState()
}

// Reseed replaces the brush's random stream. Intended for
// reproducible tests; production callers normally never need it since
// NewBrush already seeds from the current time.
func (b *Brush) Reseed(seed uint64) {
	if dr, ok := b.rng.(*defaultRand); ok {
		dr.reseed(seed)
		return
	}
	b.rng = newDefaultRand(seed)
}

// SetDebugInputs enables per-dab logging at debug level, mirroring
// brush.hpp's PrintInputs developer switch. Off by default.
func (b *Brush) SetDebugInputs(enabled bool) {
	b.debugInputs = enabled
}

// Random draws one uniform [0,1) sample from the brush's RNG. Exposed
// so hosts implementing a color-picker preview or similar tooling can
// share the brush's stream instead of running their own.
func (b *Brush) Random() float64 {
	return b.rng.Uniform()
}
