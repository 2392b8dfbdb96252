// Package circuits provides the worked circuits built from the gadget
// primitives: the f(a, b, c) function circuit over the is-zero gadget, and
// one circuit per range-check variant.  Each is driven through the mock
// prover, either from tests or from the command line.
package circuits

import (
	"github.com/enricobottazzi/halo2-intro/pkg/gadgets/iszero"
	"github.com/enricobottazzi/halo2-intro/pkg/plonk"
	"github.com/enricobottazzi/halo2-intro/pkg/util/field"
)

// FunctionConfig is the configured shape of the function circuit.
type FunctionConfig[F field.Element[F]] struct {
	selector plonk.Selector
	a        plonk.Column
	b        plonk.Column
	c        plonk.Column
	aEqualsB *iszero.Config[F]
	output   plonk.Column
}

// FunctionCircuit computes f(a, b, c) = if a == b then c else a - b, using
// the is-zero gadget as the equality indicator.  After synthesis, Output
// holds the cell carrying the function's result.
type FunctionCircuit[F field.Element[F]] struct {
	A F
	B F
	C F
	// Output is populated during synthesis.
	Output plonk.AssignedCell[F]
}

// Configure allocates the circuit's columns and registers its gate.  The
// is-zero gadget composes inside the gate via its indicator expression.
func (p *FunctionCircuit[F]) Configure(meta *plonk.ConstraintSystem[F]) (FunctionConfig[F], error) {
	var (
		selector     = meta.Selector()
		a            = meta.AdviceColumn()
		b            = meta.AdviceColumn()
		c            = meta.AdviceColumn()
		output       = meta.AdviceColumn()
		isZeroAdvice = meta.AdviceColumn()
	)
	//
	aEqualsB := iszero.Configure(meta,
		func(vc *plonk.VirtualCells[F]) plonk.Expr[F] {
			return vc.QuerySelector(selector)
		},
		func(vc *plonk.VirtualCells[F]) plonk.Expr[F] {
			return plonk.Subtract(vc.QueryAdvice(a, 0), vc.QueryAdvice(b, 0))
		},
		isZeroAdvice)
	//
	// a  | b  | c  | s | a == b | output
	// ---------------------------------
	// 10 | 12 | 15 | 1 | 0      | a - b
	// 10 | 10 | 15 | 1 | 1      | c
	meta.CreateGate("f(a, b, c) = if a == b {c} else {a - b}", selector,
		func(vc *plonk.VirtualCells[F]) []plonk.Constraint[F] {
			var (
				aExpr   = vc.QueryAdvice(a, 0)
				bExpr   = vc.QueryAdvice(b, 0)
				cExpr   = vc.QueryAdvice(c, 0)
				outExpr = vc.QueryAdvice(output, 0)
				one     = plonk.NewConstant(field.One[F]())
			)
			// Exactly one of the two constraints is non-trivially exercised
			// on any given row; the other is satisfied by a zero factor.
			return []plonk.Constraint[F]{
				{Name: "output == c",
					Expr: plonk.Product(aEqualsB.Expr(), plonk.Subtract(outExpr, cExpr))},
				{Name: "output == a - b",
					Expr: plonk.Product(plonk.Subtract(one, aEqualsB.Expr()),
						plonk.Subtract(outExpr, plonk.Subtract(aExpr, bExpr)))},
			}
		})
	//
	return FunctionConfig[F]{selector, a, b, c, aEqualsB, output}, nil
}

// Synthesise assigns a, b, c, the inverse witnessed by the is-zero chip, and
// the function output on a single row.
func (p *FunctionCircuit[F]) Synthesise(config FunctionConfig[F], layouter *plonk.Layouter[F]) error {
	chip := iszero.Construct(config.aEqualsB)
	//
	return layouter.AssignRegion("f(a, b, c) = if a == b {c} else {a - b}",
		func(region *plonk.Region[F]) error {
			if err := region.EnableSelector(config.selector, 0); err != nil {
				return err
			}
			//
			if _, err := region.AssignAdvice("a", config.a, 0, p.A); err != nil {
				return err
			}
			//
			if _, err := region.AssignAdvice("b", config.b, 0, p.B); err != nil {
				return err
			}
			//
			if _, err := region.AssignAdvice("c", config.c, 0, p.C); err != nil {
				return err
			}
			//
			diff := p.A.Sub(p.B)
			//
			if err := chip.Assign(region, 0, diff); err != nil {
				return err
			}
			//
			output := diff
			//
			if diff.IsZero() {
				output = p.C
			}
			//
			cell, err := region.AssignAdvice("output", config.output, 0, output)
			p.Output = cell
			//
			return err
		})
}
