package plonk

import "fmt"

// ColumnKind distinguishes the three kinds of column a circuit can allocate.
// Advice columns hold witness values chosen per instance; fixed columns hold
// values baked in when the circuit shape is built (e.g. lookup tables);
// instance columns hold publicly known values.
type ColumnKind uint8

const (
	// Advice columns hold private witness values.
	Advice ColumnKind = iota
	// Fixed columns hold values determined by the circuit shape itself.
	Fixed
	// Instance columns hold public inputs.
	Instance
)

func (k ColumnKind) String() string {
	switch k {
	case Advice:
		return "advice"
	case Fixed:
		return "fixed"
	default:
		return "instance"
	}
}

// Column identifies a single column of the circuit.  Columns are allocated by
// the constraint system and are immutable thereafter; gadgets and regions
// refer to them by value.
type Column struct {
	// Kind of this column.
	Kind ColumnKind
	// Index of this column amongst columns of the same kind.
	Index uint
}

func (c Column) String() string {
	return fmt.Sprintf("%s:%d", c.Kind, c.Index)
}

// TableColumn wraps a fixed column which is the target of one or more lookup
// arguments.  Its cells are populated exactly once, via Layouter.AssignTable,
// before any satisfiability check.
type TableColumn struct {
	// Inner is the underlying fixed column.
	Inner Column
}

func (c TableColumn) String() string {
	return fmt.Sprintf("table(%s)", c.Inner)
}

// SelectorKind distinguishes simple selectors, which may only appear
// (linearly) within gate expressions, from complex selectors which may also
// appear within lookup input expressions.
type SelectorKind uint8

const (
	// Simple selectors can gate custom gates but must not appear in lookup
	// input expressions.
	Simple SelectorKind = iota
	// Complex selectors can appear anywhere, including lookup inputs.
	Complex
)

func (k SelectorKind) String() string {
	if k == Simple {
		return "simple"
	}
	//
	return "complex"
}

// Selector is a per-row boolean flag (0 or 1 in the field) controlling which
// gates or lookups are active on that row.
type Selector struct {
	// Index of this selector.
	Index uint
	// Kind of this selector.
	Kind SelectorKind
}

func (s Selector) String() string {
	return fmt.Sprintf("sel:%d", s.Index)
}
