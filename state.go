package brush

// StateCount is the number of float32 fields in the serialized state
// vector, in the fixed order documented on State.
const StateCount = 18

// State is the brush's mutable state vector. It is transient:
// settings (Config) outlive strokes, but State is reset on
// Brush.SetState, Brush.Split, or when the stroke driver detects a
// motion discontinuity.
//
// Field order here is the wire order used by GetState/SetState; do
// not reorder without bumping the version tag in serialize.go.
type State struct {
	X, Y                   float64
	Pressure               float64
	Dist                   float64
	ActualX, ActualY       float64
	ActualRadius           float64
	NormSpeed1Slow         float64
	NormSpeed2Slow         float64
	NormDxSlow, NormDySlow float64
	Stroke                 float64
	StrokeStarted          bool
	CustomInput            float64
	SmudgeR, SmudgeG, SmudgeB, SmudgeA float64
}

// reset zeros the entire state vector.
func (s *State) reset() {
	*s = State{}
}

// strokeTelemetry tracks the bookkeeping the stroke splitter (C8)
// uses to decide when to commit a stroke. It lives outside State
// because it has its own reset rules: Brush.split resets it on every
// split, and Brush.SetState also resets it, since restoring the state
// vector from outside always starts a fresh stroke too.
type strokeTelemetry struct {
	totalPaintingTime float64
	idlingTime        float64
	bbox              Rect
}

func (t *strokeTelemetry) reset() {
	*t = strokeTelemetry{}
}

// unionBbox expands the accumulated stroke bbox to include r.
func (t *strokeTelemetry) unionBbox(r Rect) {
	if r.W == 0 {
		return
	}
	if t.bbox.W == 0 {
		t.bbox = r
		return
	}
	x0 := min(t.bbox.X, r.X)
	y0 := min(t.bbox.Y, r.Y)
	x1 := max(t.bbox.X+t.bbox.W, r.X+r.W)
	y1 := max(t.bbox.Y+t.bbox.H, r.Y+r.H)
	t.bbox = Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
