// Package iszero provides an equality/zero-test indicator gadget.  Given a
// value expression v, it exposes an indicator expression which evaluates to
// 1 when v = 0 and to 0 otherwise, witnessed via a dedicated advice column
// holding the multiplicative inverse of v (or zero when v = 0).
package iszero

import (
	"github.com/enricobottazzi/halo2-intro/pkg/plonk"
	"github.com/enricobottazzi/halo2-intro/pkg/util/field"
)

// ExprBuilder constructs an expression from a query context.  Callers supply
// builders for the enable condition and the value under test, which is what
// lets this gadget compose inside an arbitrary enclosing gate.
type ExprBuilder[F field.Element[F]] func(*plonk.VirtualCells[F]) plonk.Expr[F]

// Config holds the configured shape of the gadget: the advice column
// witnessing the inverse, and the indicator expression callers embed in
// their own gates.
type Config[F field.Element[F]] struct {
	valueInv plonk.Column
	isZero   plonk.Expr[F]
}

// Expr returns the indicator expression, 1 - value ⋅ value_inv.  It reads 1
// exactly when the value is zero.  The indicator is implicit: callers read
// it through this expression rather than through a separate cell.
func (p *Config[F]) Expr() plonk.Expr[F] {
	return p.isZero
}

// Configure registers the gadget's gate.  The single registered constraint,
//
//	q_enable ⋅ value ⋅ (1 - value ⋅ value_inv) = 0
//
// forces the indicator to 0 whenever the value is nonzero; the indicator's
// defining expression forces it to 1 whenever the value is zero, since the
// inverse is witnessed as zero there.  No branching is needed in the
// constraint itself, for any field.
func Configure[F field.Element[F]](
	meta *plonk.ConstraintSystem[F],
	qEnable ExprBuilder[F],
	value ExprBuilder[F],
	valueInv plonk.Column,
) *Config[F] {
	var isZero plonk.Expr[F]
	//
	meta.CreateGlobalGate("is_zero", func(vc *plonk.VirtualCells[F]) []plonk.Constraint[F] {
		var (
			q   = qEnable(vc)
			v   = value(vc)
			inv = vc.QueryAdvice(valueInv, 0)
			one = plonk.NewConstant(field.One[F]())
		)
		// indicator = 1 - value * value_inv
		isZero = plonk.Subtract(one, plonk.Product(v, inv))
		//
		return []plonk.Constraint[F]{
			{Name: "value ⋅ indicator", Expr: plonk.Product(q, v, isZero)},
		}
	})
	//
	return &Config[F]{valueInv, isZero}
}

// Chip assigns the gadget's witness.
type Chip[F field.Element[F]] struct {
	config *Config[F]
}

// Construct builds a chip from a previously built configuration, enabling
// reuse of one configuration across many witness instantiations.
func Construct[F field.Element[F]](config *Config[F]) *Chip[F] {
	return &Chip[F]{config}
}

// Assign witnesses the multiplicative inverse of the given value at the
// given offset: invert(value) when value is nonzero, and zero otherwise.
func (p *Chip[F]) Assign(region *plonk.Region[F], offset uint, value F) error {
	// Inverse() yields 0 for 0, which is exactly the convention the
	// indicator expression relies upon.
	_, err := region.AssignAdvice("value inverse", p.config.valueInv, offset, value.Inverse())
	//
	return err
}
