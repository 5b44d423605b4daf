package brush

import "time"

// BrushOption configures a Brush during creation.
// Use functional options to customize Brush behavior.
//
// Example:
//
//	// Default brush, seeded from the current time
//	b := brush.NewBrush()
//
//	// Deterministic brush for tests
//	b := brush.NewBrush(brush.WithSeed(1))
type BrushOption func(*brushOptions)

// brushOptions holds optional configuration for Brush creation.
type brushOptions struct {
	seed          uint64
	rand          randSource
	splitObserver SplitObserver
}

// defaultBrushOptions returns the default brush options: an RNG seed
// derived from the current time and no split observer.
func defaultBrushOptions() brushOptions {
	return brushOptions{
		seed: uint64(time.Now().UnixNano()),
	}
}

// WithSeed seeds the brush's RNG deterministically, for reproducible
// tests. Ignored if WithRandSource is also passed.
func WithSeed(seed uint64) BrushOption {
	return func(o *brushOptions) {
		o.seed = seed
	}
}

// WithRandSource injects a custom random source, for tests that need
// to control or record every draw. Takes precedence over WithSeed.
func WithRandSource(r randSource) BrushOption {
	return func(o *brushOptions) {
		o.rand = r
	}
}

// WithSplitObserver attaches the host split callback at construction
// time, equivalent to calling Brush.SetSplitObserver immediately
// after NewBrush.
func WithSplitObserver(observer SplitObserver) BrushOption {
	return func(o *brushOptions) {
		o.splitObserver = observer
	}
}
