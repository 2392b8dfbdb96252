package plonk

import (
	"github.com/enricobottazzi/halo2-intro/pkg/util/field"
)

// EvalAt evaluates a constant at a given row, which simply returns that
// constant.
func (e *Constant[F]) EvalAt(row int, cells Cells[F]) (F, error) {
	return e.Val, nil
}

// EvalAt evaluates a selector query at a given row, returning 1 if the
// selector is enabled there and 0 otherwise.
func (e *SelectorQuery[F]) EvalAt(row int, cells Cells[F]) (F, error) {
	return cells.Selector(e.Sel, row)
}

// EvalAt evaluates a column query, resolving the queried column at the row
// offset by this query's rotation.  A rotation which lands outside the trace
// is an error, since it indicates a bug in region bookkeeping rather than an
// invalid witness.
func (e *ColumnQuery[F]) EvalAt(row int, cells Cells[F]) (F, error) {
	return cells.Cell(e.Col, row+e.Rotation)
}

// EvalAt evaluates a sum at a given row by first evaluating all of its
// arguments at that row.
func (e *Add[F]) EvalAt(row int, cells Cells[F]) (F, error) {
	return evalExprsAt(row, cells, e.Args, func(l F, r F) F { return l.Add(r) })
}

// EvalAt evaluates a subtraction at a given row by first evaluating all of
// its arguments at that row.
func (e *Sub[F]) EvalAt(row int, cells Cells[F]) (F, error) {
	return evalExprsAt(row, cells, e.Args, func(l F, r F) F { return l.Sub(r) })
}

// EvalAt evaluates a product at a given row by first evaluating all of its
// arguments at that row.
func (e *Mul[F]) EvalAt(row int, cells Cells[F]) (F, error) {
	return evalExprsAt(row, cells, e.Args, func(l F, r F) F { return l.Mul(r) })
}

// EvalAt evaluates a negation at a given row by evaluating its argument and
// subtracting the result from zero.
func (e *Neg[F]) EvalAt(row int, cells Cells[F]) (F, error) {
	val, err := e.Arg.EvalAt(row, cells)
	//
	if err != nil {
		return val, err
	}
	//
	return field.Zero[F]().Sub(val), nil
}

// EvalAt evaluates a scaled expression at a given row by evaluating its
// argument and multiplying the result by the scalar.
func (e *Scaled[F]) EvalAt(row int, cells Cells[F]) (F, error) {
	val, err := e.Arg.EvalAt(row, cells)
	//
	if err != nil {
		return val, err
	}
	//
	return val.Mul(e.Scalar), nil
}

// evalExprsAt evaluates a sequence of expressions at a given row, folding the
// results together with a given binary operation.
func evalExprsAt[F field.Element[F]](row int, cells Cells[F], args []Expr[F],
	fn func(F, F) F) (F, error) {
	// Evaluate first argument
	val, err := args[0].EvalAt(row, cells)
	//
	if err != nil {
		return val, err
	}
	// Fold in remaining arguments
	for _, arg := range args[1:] {
		rhs, err := arg.EvalAt(row, cells)
		//
		if err != nil {
			return rhs, err
		}
		//
		val = fn(val, rhs)
	}
	// Done
	return val, nil
}
