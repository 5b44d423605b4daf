package brush

import (
	"math"
	"math/rand/v2"
)

// randSource is the brush's random number source (C1). It is a
// narrow interface rather than a concrete *rand.Rand so tests can
// inject a deterministic or adversarial source; the default
// implementation wraps math/rand/v2.
type randSource interface {
	// Uniform returns a fresh draw in [0,1).
	Uniform() float64
	// Gauss returns a fresh standard-normal draw.
	Gauss() float64
}

// defaultRand is the production randSource, seeded independently of
// the global math/rand/v2 state so multiple Brush values don't share
// a stream.
type defaultRand struct {
	rng *rand.Rand

	haveSpare  bool
	spareGauss float64
}

func newDefaultRand(seed uint64) *defaultRand {
	return &defaultRand{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *defaultRand) Uniform() float64 {
	return r.rng.Float64()
}

// Gauss implements the Box-Muller transform, generating two
// independent standard-normal samples per pair of uniform draws and
// caching the second (brush.hpp's rng_gauss does the same to avoid
// wasting half of every trig evaluation).
func (r *defaultRand) Gauss() float64 {
	if r.haveSpare {
		r.haveSpare = false
		return r.spareGauss
	}
	var u1, u2 float64
	for {
		u1 = r.rng.Float64()
		if u1 > 1e-12 {
			break
		}
	}
	u2 = r.rng.Float64()
	radius := math.Sqrt(-2 * math.Log(u1))
	theta := 2 * math.Pi * u2
	r.spareGauss = radius * math.Sin(theta)
	r.haveSpare = true
	return radius * math.Cos(theta)
}

// reseed replaces the stream in place, discarding any cached spare
// Gaussian sample so the two reseeded streams don't correlate.
func (r *defaultRand) reseed(seed uint64) {
	r.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	r.haveSpare = false
}
