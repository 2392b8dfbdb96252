package plonk

import (
	"fmt"
	"strings"

	"github.com/enricobottazzi/halo2-intro/pkg/util/field"
)

// ============================================================================
// Expressions
// ============================================================================

// Cells provides the concrete values backing a circuit instance, against
// which expressions are evaluated.  Out-of-bounds row accesses are errors
// (they indicate broken region bookkeeping rather than an invalid witness);
// in-bounds cells which were never assigned read as zero.
type Cells[F field.Element[F]] interface {
	// Cell returns the value held by the given column at the given row.
	Cell(col Column, row int) (F, error)
	// Selector returns 1 if the given selector is enabled on the given row,
	// and 0 otherwise.
	Selector(sel Selector, row int) (F, error)
	// Height returns the number of rows of this instance.
	Height() uint
}

// Expr is an immutable polynomial expression over column queries, selector
// queries and constants.  Expressions are built symbolically when the circuit
// shape is configured, and evaluated row-by-row when a witness is checked.
type Expr[F field.Element[F]] interface {
	// EvalAt evaluates this expression on the given row of the given cells.
	EvalAt(row int, cells Cells[F]) (F, error)
	// Degree returns the multiplicative degree of this expression, where
	// column and selector queries count as degree one.
	Degree() uint
	// String produces a human-readable form of this expression.
	String() string
}

// Constant represents a literal field element.
type Constant[F field.Element[F]] struct{ Val F }

// SelectorQuery represents the value of a selector on the row being
// evaluated.
type SelectorQuery[F field.Element[F]] struct{ Sel Selector }

// ColumnQuery represents the value of a column at a given rotation (signed
// row offset) relative to the row being evaluated.
type ColumnQuery[F field.Element[F]] struct {
	Col Column
	// Rotation is a signed offset relative to the row under evaluation.
	Rotation int
}

// Add represents the sum of its arguments.
type Add[F field.Element[F]] struct{ Args []Expr[F] }

// Sub represents the first argument minus every remaining argument.
type Sub[F field.Element[F]] struct{ Args []Expr[F] }

// Mul represents the product of its arguments.
type Mul[F field.Element[F]] struct{ Args []Expr[F] }

// Neg represents the additive inverse of its argument.
type Neg[F field.Element[F]] struct{ Arg Expr[F] }

// Scaled represents its argument multiplied by a constant scalar.
type Scaled[F field.Element[F]] struct {
	Arg    Expr[F]
	Scalar F
}

// ============================================================================
// Constructors
// ============================================================================

// NewConstant constructs an expression representing a literal field element.
func NewConstant[F field.Element[F]](val F) Expr[F] {
	return &Constant[F]{val}
}

// NewConstantOf constructs a constant expression from a small integer.
func NewConstantOf[F field.Element[F]](val uint64) Expr[F] {
	return &Constant[F]{field.Uint64[F](val)}
}

// Sum constructs an expression representing the sum of the given arguments.
// The empty sum is the constant zero.
func Sum[F field.Element[F]](args ...Expr[F]) Expr[F] {
	if len(args) == 0 {
		return NewConstant(field.Zero[F]())
	}
	//
	return &Add[F]{args}
}

// Product constructs an expression representing the product of the given
// arguments.  The empty product is the constant one.
func Product[F field.Element[F]](args ...Expr[F]) Expr[F] {
	if len(args) == 0 {
		return NewConstant(field.One[F]())
	}
	//
	return &Mul[F]{args}
}

// Subtract constructs an expression representing lhs minus every rhs.
func Subtract[F field.Element[F]](lhs Expr[F], rhs ...Expr[F]) Expr[F] {
	return &Sub[F]{append([]Expr[F]{lhs}, rhs...)}
}

// Negate constructs an expression representing the additive inverse of its
// argument.
func Negate[F field.Element[F]](arg Expr[F]) Expr[F] {
	return &Neg[F]{arg}
}

// Scale constructs an expression representing arg multiplied by a constant
// scalar.
func Scale[F field.Element[F]](arg Expr[F], scalar F) Expr[F] {
	return &Scaled[F]{arg, scalar}
}

// ============================================================================
// Degree
// ============================================================================

// Degree of a constant is zero.
func (e *Constant[F]) Degree() uint { return 0 }

// Degree of a selector query is one.
func (e *SelectorQuery[F]) Degree() uint { return 1 }

// Degree of a column query is one.
func (e *ColumnQuery[F]) Degree() uint { return 1 }

// Degree of a sum is the maximum degree amongst its arguments.
func (e *Add[F]) Degree() uint { return maxDegree(e.Args) }

// Degree of a subtraction is the maximum degree amongst its arguments.
func (e *Sub[F]) Degree() uint { return maxDegree(e.Args) }

// Degree of a product is the sum of the degrees of its arguments.
func (e *Mul[F]) Degree() uint {
	sum := uint(0)
	//
	for _, arg := range e.Args {
		sum += arg.Degree()
	}
	//
	return sum
}

// Degree of a negation is that of its argument.
func (e *Neg[F]) Degree() uint { return e.Arg.Degree() }

// Degree of a scaled expression is that of its argument.
func (e *Scaled[F]) Degree() uint { return e.Arg.Degree() }

func maxDegree[F field.Element[F]](args []Expr[F]) uint {
	degree := uint(0)
	//
	for _, arg := range args {
		degree = max(degree, arg.Degree())
	}
	//
	return degree
}

// ============================================================================
// Stringification
// ============================================================================

func (e *Constant[F]) String() string { return e.Val.String() }

func (e *SelectorQuery[F]) String() string { return e.Sel.String() }

func (e *ColumnQuery[F]) String() string {
	if e.Rotation == 0 {
		return e.Col.String()
	}
	//
	return fmt.Sprintf("(shift %s %d)", e.Col, e.Rotation)
}

func (e *Add[F]) String() string { return naryString("+", e.Args) }

func (e *Sub[F]) String() string { return naryString("-", e.Args) }

func (e *Mul[F]) String() string { return naryString("*", e.Args) }

func (e *Neg[F]) String() string { return fmt.Sprintf("(neg %s)", e.Arg) }

func (e *Scaled[F]) String() string {
	return fmt.Sprintf("(scale %s %s)", e.Scalar, e.Arg)
}

func naryString[F field.Element[F]](op string, args []Expr[F]) string {
	var builder strings.Builder
	//
	builder.WriteString("(")
	builder.WriteString(op)
	//
	for _, arg := range args {
		builder.WriteString(" ")
		builder.WriteString(arg.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

// ============================================================================
// Selector analysis
// ============================================================================

// usesSimpleSelector reports whether a given expression queries a simple
// selector anywhere within it.  Lookup input expressions must not, since
// simple selectors are reserved for gate activation.
func usesSimpleSelector[F field.Element[F]](expr Expr[F]) bool {
	switch e := expr.(type) {
	case *SelectorQuery[F]:
		return e.Sel.Kind == Simple
	case *Add[F]:
		return anyUsesSimpleSelector(e.Args)
	case *Sub[F]:
		return anyUsesSimpleSelector(e.Args)
	case *Mul[F]:
		return anyUsesSimpleSelector(e.Args)
	case *Neg[F]:
		return usesSimpleSelector(e.Arg)
	case *Scaled[F]:
		return usesSimpleSelector(e.Arg)
	default:
		return false
	}
}

func anyUsesSimpleSelector[F field.Element[F]](args []Expr[F]) bool {
	for _, arg := range args {
		if usesSimpleSelector(arg) {
			return true
		}
	}
	//
	return false
}
