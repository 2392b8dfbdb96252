package plonk

import (
	"github.com/enricobottazzi/halo2-intro/pkg/util/field"
)

// Constraint is a single named expression within a gate which must evaluate
// to zero on every row where the gate is active.
type Constraint[F field.Element[F]] struct {
	// Name of this constraint, for diagnostics only.
	Name string
	// Expr is the expression which must vanish.
	Expr Expr[F]
}

// Gate is a named, selector-gated set of vanishing constraints.  When the
// gate has a selector, its constraints are checked exactly on those rows
// where the selector is enabled; a gate without a selector is checked on
// every row, with its constraints expected to gate themselves (e.g. by
// embedding a selector query as a multiplicative factor).
type Gate[F field.Element[F]] struct {
	// Name of this gate, for diagnostics only.
	Name string
	// Selector activating this gate, or nil for a global gate.
	Selector *Selector
	// Constraints which must vanish wherever this gate is active.
	Constraints []Constraint[F]
}

// LookupPair couples a lookup input expression with the table column it is
// looked up in.
type LookupPair[F field.Element[F]] struct {
	// Input expression evaluated on the looking-up side.
	Input Expr[F]
	// Table column on the looked-up side.
	Table TableColumn
}

// Lookup is a lookup argument: on every row, the tuple of input-expression
// values must equal, component-wise, the tuple of table-column values on some
// single row of the table.  This is exact tuple membership, not a per-element
// bound.
type Lookup[F field.Element[F]] struct {
	// Name of this lookup, for diagnostics only.
	Name string
	// Pairs of (input expression, table column).
	Pairs []LookupPair[F]
}

// GateBuilder constructs the constraints of a gate from a query context.
type GateBuilder[F field.Element[F]] func(*VirtualCells[F]) []Constraint[F]

// LookupBuilder constructs the pairs of a lookup argument from a query
// context.
type LookupBuilder[F field.Element[F]] func(*VirtualCells[F]) []LookupPair[F]

// ConstraintSystem is the configure-time registry for a circuit shape.  It
// allocates columns and selectors, and registers gates and lookup arguments.
// All registration happens before any witness exists; expressions reference
// columns and selectors symbolically.  Once configuration completes the
// system is immutable, and can be shared across any number of witness
// instantiations.
type ConstraintSystem[F field.Element[F]] struct {
	advice    uint
	fixed     uint
	instance  uint
	selectors []SelectorKind
	gates     []Gate[F]
	lookups   []Lookup[F]
}

// NewConstraintSystem constructs an empty constraint system.
func NewConstraintSystem[F field.Element[F]]() *ConstraintSystem[F] {
	return &ConstraintSystem[F]{}
}

// AdviceColumn allocates a fresh advice (witness) column.
func (p *ConstraintSystem[F]) AdviceColumn() Column {
	col := Column{Advice, p.advice}
	p.advice++
	//
	return col
}

// FixedColumn allocates a fresh fixed column.
func (p *ConstraintSystem[F]) FixedColumn() Column {
	col := Column{Fixed, p.fixed}
	p.fixed++
	//
	return col
}

// InstanceColumn allocates a fresh instance (public input) column.
func (p *ConstraintSystem[F]) InstanceColumn() Column {
	col := Column{Instance, p.instance}
	p.instance++
	//
	return col
}

// LookupTableColumn allocates a fresh fixed column for use as the target of
// lookup arguments.
func (p *ConstraintSystem[F]) LookupTableColumn() TableColumn {
	return TableColumn{p.FixedColumn()}
}

// Selector allocates a fresh simple selector.  Simple selectors gate custom
// gates but must not appear within lookup input expressions.
func (p *ConstraintSystem[F]) Selector() Selector {
	return p.allocateSelector(Simple)
}

// ComplexSelector allocates a fresh complex selector, as required wherever a
// selector participates in a lookup input expression.
func (p *ConstraintSystem[F]) ComplexSelector() Selector {
	return p.allocateSelector(Complex)
}

func (p *ConstraintSystem[F]) allocateSelector(kind SelectorKind) Selector {
	sel := Selector{uint(len(p.selectors)), kind}
	p.selectors = append(p.selectors, kind)
	//
	return sel
}

// CreateGate registers a named gate activated by the given selector.  The
// builder maps a query context to the gate's constraints, each of which must
// vanish on every row where the selector is enabled.
func (p *ConstraintSystem[F]) CreateGate(name string, sel Selector, builder GateBuilder[F]) {
	selector := sel
	p.gates = append(p.gates, Gate[F]{name, &selector, builder(p.queryContext())})
}

// CreateGlobalGate registers a named gate which applies to every row.  Its
// constraints are expected to gate themselves, for example by embedding an
// enable expression as a multiplicative factor.  This is the hook gadgets use
// to compose their constraints under a caller-supplied enable condition.
func (p *ConstraintSystem[F]) CreateGlobalGate(name string, builder GateBuilder[F]) {
	p.gates = append(p.gates, Gate[F]{name, nil, builder(p.queryContext())})
}

// Lookup registers a named lookup argument.  The builder maps a query
// context to an ordered list of (input expression, table column) pairs.  An
// input expression which queries a simple selector is a configuration error:
// a complex selector is required there.
func (p *ConstraintSystem[F]) Lookup(name string, builder LookupBuilder[F]) error {
	pairs := builder(p.queryContext())
	// Sanity check selector usage
	for _, pair := range pairs {
		if usesSimpleSelector(pair.Input) {
			return NewConfigurationError(
				"lookup \"%s\": simple selector in lookup input (use a complex selector)", name)
		}
	}
	//
	p.lookups = append(p.lookups, Lookup[F]{name, pairs})
	//
	return nil
}

// Gates returns the gates registered so far.
func (p *ConstraintSystem[F]) Gates() []Gate[F] {
	return p.gates
}

// Lookups returns the lookup arguments registered so far.
func (p *ConstraintSystem[F]) Lookups() []Lookup[F] {
	return p.lookups
}

func (p *ConstraintSystem[F]) queryContext() *VirtualCells[F] {
	return &VirtualCells[F]{p}
}

// ============================================================================
// Query context
// ============================================================================

// VirtualCells is the query context handed to gate and lookup builders.  It
// turns column and selector handles into symbolic expressions.
type VirtualCells[F field.Element[F]] struct {
	cs *ConstraintSystem[F]
}

// QueryAdvice queries an advice column at a given rotation.
func (p *VirtualCells[F]) QueryAdvice(col Column, rotation int) Expr[F] {
	return p.query(col, Advice, rotation)
}

// QueryFixed queries a fixed column at a given rotation.
func (p *VirtualCells[F]) QueryFixed(col Column, rotation int) Expr[F] {
	return p.query(col, Fixed, rotation)
}

// QueryInstance queries an instance column at a given rotation.
func (p *VirtualCells[F]) QueryInstance(col Column, rotation int) Expr[F] {
	return p.query(col, Instance, rotation)
}

// QuerySelector queries a selector on the current row.  Selectors are always
// queried at rotation zero.
func (p *VirtualCells[F]) QuerySelector(sel Selector) Expr[F] {
	return &SelectorQuery[F]{sel}
}

// Constant embeds a literal field element into an expression.
func (p *VirtualCells[F]) Constant(val F) Expr[F] {
	return NewConstant(val)
}

func (p *VirtualCells[F]) query(col Column, kind ColumnKind, rotation int) Expr[F] {
	// Querying a column as the wrong kind is a programming error in the
	// gadget, not a recoverable condition.
	if col.Kind != kind {
		panic(NewConfigurationError("queried %s column as %s", col.Kind, kind).Error())
	}
	//
	return &ColumnQuery[F]{col, rotation}
}
