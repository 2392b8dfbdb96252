package iszero

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/enricobottazzi/halo2-intro/pkg/plonk"
	"github.com/enricobottazzi/halo2-intro/pkg/util/field"
	"github.com/enricobottazzi/halo2-intro/pkg/util/field/bls12_377"
)

type fr = bls12_377.Element

type indicatorConfig struct {
	selector  plonk.Selector
	value     plonk.Column
	indicator plonk.Column
	isZero    *Config[fr]
}

// indicatorCircuit materialises the indicator into its own advice column, so
// tests can constrain what the gadget computes for a given value.
type indicatorCircuit struct {
	value     uint64
	indicator uint64
}

func (p *indicatorCircuit) Configure(meta *plonk.ConstraintSystem[fr]) (indicatorConfig, error) {
	var (
		selector  = meta.Selector()
		value     = meta.AdviceColumn()
		indicator = meta.AdviceColumn()
		valueInv  = meta.AdviceColumn()
	)
	//
	isZero := Configure(meta,
		func(vc *plonk.VirtualCells[fr]) plonk.Expr[fr] {
			return vc.QuerySelector(selector)
		},
		func(vc *plonk.VirtualCells[fr]) plonk.Expr[fr] {
			return vc.QueryAdvice(value, 0)
		},
		valueInv)
	//
	meta.CreateGate("indicator", selector, func(vc *plonk.VirtualCells[fr]) []plonk.Constraint[fr] {
		return []plonk.Constraint[fr]{
			{Name: "indicator matches", Expr: plonk.Subtract(
				vc.QueryAdvice(indicator, 0), isZero.Expr())},
		}
	})
	//
	return indicatorConfig{selector, value, indicator, isZero}, nil
}

func (p *indicatorCircuit) Synthesise(config indicatorConfig, layouter *plonk.Layouter[fr]) error {
	chip := Construct(config.isZero)
	//
	return layouter.AssignRegion("indicator", func(region *plonk.Region[fr]) error {
		if err := region.EnableSelector(config.selector, 0); err != nil {
			return err
		}
		//
		value := field.Uint64[fr](p.value)
		//
		if _, err := region.AssignAdvice("value", config.value, 0, value); err != nil {
			return err
		}
		//
		if err := chip.Assign(region, 0, value); err != nil {
			return err
		}
		//
		_, err := region.AssignAdvice("indicator", config.indicator, 0, field.Uint64[fr](p.indicator))
		//
		return err
	})
}

func TestIndicatorOnZero(t *testing.T) {
	prover, err := plonk.Run(2, &indicatorCircuit{value: 0, indicator: 1})
	require.NoError(t, err)
	require.Empty(t, prover.Verify())
}

func TestIndicatorOnNonZero(t *testing.T) {
	prover, err := plonk.Run(2, &indicatorCircuit{value: 7, indicator: 0})
	require.NoError(t, err)
	require.Empty(t, prover.Verify())
}

func TestIndicatorCannotBeForged(t *testing.T) {
	// Claiming the indicator reads 1 on a nonzero value must fail: there is
	// no inverse witness making both the gadget's constraint and the
	// indicator equation hold.
	prover, err := plonk.Run(2, &indicatorCircuit{value: 7, indicator: 1})
	require.NoError(t, err)
	require.NotEmpty(t, prover.Verify())
}
