package plonk

import "fmt"

// Failure provides structural information about a single satisfiability
// violation.  Failures are findings, not errors: the checker accumulates
// every failure across every row rather than halting on the first.
type Failure interface {
	// Message provides a suitable human-readable description.
	Message() string
}

// ConstraintFailure indicates a gate constraint which did not vanish on a
// row where its gate was active.
type ConstraintFailure struct {
	// Gate in which the constraint failed.
	Gate string
	// Constraint which failed.
	Constraint string
	// Region covering the failing row (empty if none).
	Region string
	// Row on which the constraint failed.
	Row uint
}

// Message provides a suitable error message
func (p *ConstraintFailure) Message() string {
	if p.Region == "" {
		return fmt.Sprintf("constraint \"%s/%s\" does not hold (row %d)", p.Gate, p.Constraint, p.Row)
	}
	//
	return fmt.Sprintf("constraint \"%s/%s\" does not hold (region \"%s\", row %d)",
		p.Gate, p.Constraint, p.Region, p.Row)
}

func (p *ConstraintFailure) String() string {
	return p.Message()
}

// LookupFailure indicates a row whose lookup input tuple matched no row of
// the table.
type LookupFailure struct {
	// Handle of the failing lookup.
	Handle string
	// Region covering the failing row (empty if none).
	Region string
	// Row on which the lookup failed.
	Row uint
}

// Message provides a suitable error message
func (p *LookupFailure) Message() string {
	if p.Region == "" {
		return fmt.Sprintf("lookup \"%s\" failed (row %d)", p.Handle, p.Row)
	}
	//
	return fmt.Sprintf("lookup \"%s\" failed (region \"%s\", row %d)", p.Handle, p.Region, p.Row)
}

func (p *LookupFailure) String() string {
	return p.Message()
}

// InternalFailure indicates an expression could not be evaluated at all,
// such as a rotation landing outside the trace.  This signals a bug in
// region bookkeeping rather than an unsatisfied constraint.
type InternalFailure struct {
	// Handle of the constraint or lookup being evaluated.
	Handle string
	// Row on which evaluation failed.
	Row uint
	// Error describing what went wrong.
	Error string
}

// Message provides a suitable error message
func (p *InternalFailure) Message() string {
	return fmt.Sprintf("constraint \"%s\" undefined (row %d): %s", p.Handle, p.Row, p.Error)
}

func (p *InternalFailure) String() string {
	return p.Message()
}
