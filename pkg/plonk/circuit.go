package plonk

import (
	"github.com/enricobottazzi/halo2-intro/pkg/util/field"
)

// Circuit describes a circuit over a configuration type C.  Configure builds
// the circuit shape against a constraint system and is witness-independent,
// so a single configuration can be reused across many instances.  Synthesise
// assigns the concrete witness of one instance through a layouter, and must
// be a pure function of the circuit's inputs: identical inputs must yield
// identical assignments.
type Circuit[F field.Element[F], C any] interface {
	// Configure registers this circuit's columns, selectors, gates and
	// lookups against the given constraint system.
	Configure(meta *ConstraintSystem[F]) (C, error)
	// Synthesise assigns this circuit's witness through the given layouter.
	Synthesise(config C, layouter *Layouter[F]) error
}
