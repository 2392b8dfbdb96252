package circuits

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/enricobottazzi/halo2-intro/pkg/plonk"
	"github.com/enricobottazzi/halo2-intro/pkg/util/field"
	"github.com/enricobottazzi/halo2-intro/pkg/util/field/bls12_377"
)

type fr = bls12_377.Element

func TestFunctionCircuitDistinctInputs(t *testing.T) {
	// a != b, so f(10, 12, 15) = a - b = -2.
	circuit := &FunctionCircuit[fr]{
		A: field.Uint64[fr](10),
		B: field.Uint64[fr](12),
		C: field.Uint64[fr](15),
	}
	//
	prover, err := plonk.Run(4, circuit)
	require.NoError(t, err)
	require.Empty(t, prover.Verify())
	//
	expected := field.Uint64[fr](10).Sub(field.Uint64[fr](12))
	require.Equal(t, 0, circuit.Output.Value.Cmp(expected))
}

func TestFunctionCircuitEqualInputs(t *testing.T) {
	// a == b, so f(10, 10, 15) = c = 15.
	circuit := &FunctionCircuit[fr]{
		A: field.Uint64[fr](10),
		B: field.Uint64[fr](10),
		C: field.Uint64[fr](15),
	}
	//
	prover, err := plonk.Run(4, circuit)
	require.NoError(t, err)
	require.True(t, prover.AssertSatisfied())
	require.Equal(t, 0, circuit.Output.Value.Cmp(field.Uint64[fr](15)))
}

func TestFunctionCircuitDeterministic(t *testing.T) {
	circuit := func() *FunctionCircuit[fr] {
		return &FunctionCircuit[fr]{
			A: field.Uint64[fr](7),
			B: field.Uint64[fr](3),
			C: field.Uint64[fr](99),
		}
	}
	//
	first, err := plonk.Run(4, circuit())
	require.NoError(t, err)
	//
	second, err := plonk.Run(4, circuit())
	require.NoError(t, err)
	// Identical inputs must produce identical assignments.
	require.Equal(t, first.Assignment().Cells(), second.Assignment().Cells())
}
