package plonk

import (
	"sort"
	"strings"

	"github.com/enricobottazzi/halo2-intro/pkg/util"
	"github.com/enricobottazzi/halo2-intro/pkg/util/field"
)

// MockProver checks a circuit instance for satisfiability without producing
// a proof.  It pairs a configured constraint system with a finished witness
// assignment, and evaluates every gate and lookup over every row.
type MockProver[F field.Element[F]] struct {
	cs  *ConstraintSystem[F]
	asg *Assignment[F]
}

// Run configures the given circuit, synthesises its witness over 2^k rows,
// and returns a mock prover ready to check satisfiability.  Configuration or
// assignment errors are fatal and reported immediately; satisfiability
// violations are not errors and are reported by Verify.
func Run[F field.Element[F], C any](k uint, circuit Circuit[F, C]) (*MockProver[F], error) {
	cs := NewConstraintSystem[F]()
	// Build circuit shape
	config, err := circuit.Configure(cs)
	//
	if err != nil {
		return nil, err
	}
	// Assign witness
	asg := NewAssignment[F](uint(1) << k)
	//
	if err := circuit.Synthesise(config, NewLayouter(asg)); err != nil {
		return nil, err
	}
	//
	return &MockProver[F]{cs, asg}, nil
}

// New constructs a mock prover directly from a configured constraint system
// and a finished assignment, for callers managing layout themselves.
func New[F field.Element[F]](cs *ConstraintSystem[F], asg *Assignment[F]) *MockProver[F] {
	return &MockProver[F]{cs, asg}
}

// Assignment returns the witness assignment being checked.
func (p *MockProver[F]) Assignment() *Assignment[F] {
	return p.asg
}

// Verify evaluates every gate and every lookup over every row, returning all
// violations found.  Checking never short-circuits, so a single run surfaces
// every broken constraint.  Gates and lookups are checked concurrently, with
// the merged report sorted for stable output.
func (p *MockProver[F]) Verify() []Failure {
	var jobs []func() []Failure
	//
	for _, gate := range p.cs.Gates() {
		jobs = append(jobs, func() []Failure { return p.checkGate(gate) })
	}
	//
	for _, lookup := range p.cs.Lookups() {
		jobs = append(jobs, func() []Failure { return p.checkLookup(lookup) })
	}
	//
	failures := util.ParCollect(jobs, func(job func() []Failure) []Failure {
		return job()
	})
	// Sort report for stable output (order carries no meaning).
	sort.Slice(failures, func(i, j int) bool {
		return strings.Compare(failures[i].Message(), failures[j].Message()) < 0
	})
	//
	return failures
}

// AssertSatisfied is a convenience wrapper around Verify for callers which
// only need a yes/no answer.
func (p *MockProver[F]) AssertSatisfied() bool {
	return len(p.Verify()) == 0
}

// checkGate evaluates every constraint of a gate on every row where the gate
// is active.  A gate with a selector is active exactly where the selector
// evaluates to a nonzero value; a global gate is active everywhere.
func (p *MockProver[F]) checkGate(gate Gate[F]) []Failure {
	var failures []Failure
	//
	for row := 0; row < int(p.asg.Height()); row++ {
		if gate.Selector != nil {
			active, err := p.asg.Selector(*gate.Selector, row)
			//
			if err != nil || active.IsZero() {
				continue
			}
		}
		//
		for _, constraint := range gate.Constraints {
			handle := gate.Name + "/" + constraint.Name
			val, err := constraint.Expr.EvalAt(row, p.asg)
			//
			switch {
			case err != nil:
				failures = append(failures, &InternalFailure{handle, uint(row), err.Error()})
			case !val.IsZero():
				failures = append(failures, &ConstraintFailure{
					gate.Name, constraint.Name, p.asg.RegionOf(uint(row)), uint(row)})
			}
		}
	}
	//
	return failures
}

// checkLookup checks that, on every row, the tuple of input-expression
// values matches the tuple of table-column values on some single row of the
// table.  Table rows are collected into a set keyed on their big-endian
// encodings, then every source row is probed against it.
func (p *MockProver[F]) checkLookup(lookup Lookup[F]) []Failure {
	var (
		failures []Failure
		height   = int(p.asg.Height())
		rows     = make(map[string]bool, height)
	)
	// Add all table rows to the set
	for row := 0; row < height; row++ {
		var key strings.Builder
		//
		for _, pair := range lookup.Pairs {
			// Table cells are always in bounds here.
			val, _ := p.asg.Cell(pair.Table.Inner, row)
			key.Write(val.Bytes())
		}
		//
		rows[key.String()] = true
	}
	// Check all source rows
	for row := 0; row < height; row++ {
		var (
			key    strings.Builder
			broken bool
		)
		//
		for _, pair := range lookup.Pairs {
			val, err := pair.Input.EvalAt(row, p.asg)
			//
			if err != nil {
				failures = append(failures, &InternalFailure{lookup.Name, uint(row), err.Error()})
				broken = true
				//
				break
			}
			//
			key.Write(val.Bytes())
		}
		//
		if !broken && !rows[key.String()] {
			failures = append(failures, &LookupFailure{lookup.Name, p.asg.RegionOf(uint(row)), uint(row)})
		}
	}
	//
	return failures
}
