// Package brush implements a pressure-sensitive brush dynamics engine
// for raster painting applications.
//
// # Overview
//
// Given a stream of pointer samples (position, pressure, elapsed time)
// and a configured Brush, the engine decides where, when, how large,
// how opaque, and in what color to deposit circular "dabs" on a
// caller-supplied raster Surface, and when a stroke should be
// committed as a persistent undo step.
//
// # Quick Start
//
//	b := brush.NewBrush()
//	b.SetBaseValue(brush.RadiusLogarithmic, 1.0)
//	b.SetBaseValue(brush.Opaque, 1.0)
//	b.SetBaseValue(brush.Hardness, 0.8)
//
//	surf := rastersurface.New(800, 600)
//	if err := b.StrokeTo(surf, 100, 100, 1.0, 0.016); err != nil {
//	    log.Fatal(err)
//	}
//
// # Architecture
//
// The engine is organized around three collaborating pieces:
//   - Config: base values and input mappings (settings), immutable
//     during a stroke.
//   - State: the state vector, mutated on every pointer sample.
//   - Brush: the composition of Config and State, plus the stroke
//     telemetry, the RNG, and the dab simulator pipeline (input deriver, settings evaluator, dab
//     preparer, stroke driver, stroke splitter).
//
// The raster surface itself is an external collaborator, consumed
// through the narrow Surface interface; package rastersurface ships
// a reference implementation.
//
// # Concurrency
//
// A Brush is single-threaded: exactly one goroutine may call its
// methods at a time, and no method call may overlap another on the
// same Brush. See the Brush doc comment for the precise contract.
package brush

// Version information.
const (
	// Version is the current version of the engine.
	Version = "0.1.0"

	// VersionMajor is the major version.
	VersionMajor = 0

	// VersionMinor is the minor version.
	VersionMinor = 1

	// VersionPatch is the patch version.
	VersionPatch = 0
)
