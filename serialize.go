package brush

import (
	"encoding/binary"
	"math"
)

const stateTag = byte('1')

// stateFields returns pointers to the State's float fields in wire
// order, matching the field order documented on State. StrokeStarted
// is a bool, so its slot (index 12) points at a local 0.0/1.0 copy
// rather than at the field itself: writes through that slot do not
// reach s.StrokeStarted, and SetState copies the value back by hand.
func (s *State) stateFields() [StateCount]*float64 {
	var strokeStarted float64
	if s.StrokeStarted {
		strokeStarted = 1
	}
	return [StateCount]*float64{
		&s.X, &s.Y,
		&s.Pressure,
		&s.Dist,
		&s.ActualX, &s.ActualY,
		&s.ActualRadius,
		&s.NormSpeed1Slow, &s.NormSpeed2Slow,
		&s.NormDxSlow, &s.NormDySlow,
		&s.Stroke,
		&strokeStarted,
		&s.CustomInput,
		&s.SmudgeR, &s.SmudgeG, &s.SmudgeB, &s.SmudgeA,
	}
}

// GetState serializes the state vector as an ASCII version tag '1'
// followed by StateCount little-endian IEEE-754 float32 values, in
// the fixed field order documented on State.
func (s *State) GetState() []byte {
	out := make([]byte, 1+4*StateCount)
	out[0] = stateTag

	fields := s.stateFields()
	for i, f := range fields {
		binary.LittleEndian.PutUint32(out[1+4*i:], math.Float32bits(float32(*f)))
	}
	return out
}

// SetState restores the state vector from data previously produced by
// GetState. It tolerates truncated payloads: any field beyond the
// supplied data is zeroed. A payload whose first byte is not the
// version tag leaves the state vector untouched and returns
// ErrBadStateTag.
func (s *State) SetState(data []byte) error {
	if len(data) == 0 || data[0] != stateTag {
		Logger().Warn("brush: unknown state serialization tag, state left unchanged")
		return ErrBadStateTag
	}
	payload := data[1:]

	s.reset()
	fields := s.stateFields()
	n := len(payload) / 4
	if n > StateCount {
		n = StateCount
	}
	for i := 0; i < n; i++ {
		bits := binary.LittleEndian.Uint32(payload[4*i:])
		*fields[i] = float64(math.Float32frombits(bits))
	}
	s.StrokeStarted = *fields[12] != 0
	return nil
}
