package rangecheck

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/enricobottazzi/halo2-intro/pkg/plonk"
	"github.com/enricobottazzi/halo2-intro/pkg/util/field"
	"github.com/enricobottazzi/halo2-intro/pkg/util/field/bls12_377"
)

type fr = bls12_377.Element

func TestFlatTableContents(t *testing.T) {
	var (
		cs       = plonk.NewConstraintSystem[fr]()
		table    = ConfigureFlatTable[fr](cs, 8)
		asg      = plonk.NewAssignment[fr](16)
		layouter = plonk.NewLayouter(asg)
	)
	//
	require.NoError(t, table.Load(layouter))
	//
	for i := uint64(0); i < 8; i++ {
		val, err := asg.Cell(table.Value.Inner, int(i))
		require.NoError(t, err)
		require.Equal(t, 0, val.Cmp(field.Uint64[fr](i)))
	}
	// Rows beyond the enumeration are zero padding.
	val, err := asg.Cell(table.Value.Inner, 8)
	require.NoError(t, err)
	require.True(t, val.IsZero())
}

func TestFlatTableLoadIdempotent(t *testing.T) {
	var (
		cs       = plonk.NewConstraintSystem[fr]()
		table    = ConfigureFlatTable[fr](cs, 8)
		layouter = plonk.NewLayouter(plonk.NewAssignment[fr](16))
	)
	//
	require.NoError(t, table.Load(layouter))
	require.NoError(t, table.Load(layouter))
}

func TestTieredTableRejectsInconsistentShape(t *testing.T) {
	cs := plonk.NewConstraintSystem[fr]()
	//
	_, err := ConfigureTieredTable[fr](cs, 4, 15)
	require.Error(t, err)
	require.IsType(t, &plonk.ConfigurationError{}, err)
}

func TestTieredTableContents(t *testing.T) {
	var (
		cs       = plonk.NewConstraintSystem[fr]()
		asg      = plonk.NewAssignment[fr](32)
		layouter = plonk.NewLayouter(asg)
	)
	//
	table, err := ConfigureTieredTable[fr](cs, 4, 16)
	require.NoError(t, err)
	require.NoError(t, table.Load(layouter))
	// Row 0 pairs the value zero with the tag 1.
	tag, err := asg.Cell(table.NumBitsColumn.Inner, 0)
	require.NoError(t, err)
	require.Equal(t, 0, tag.Cmp(field.One[fr]()))
	//
	val, err := asg.Cell(table.Value.Inner, 0)
	require.NoError(t, err)
	require.True(t, val.IsZero())
	// Each subsequent row pairs a value with its minimal bit-length, in
	// ascending value order, covering exactly [1, 16).
	row := 1
	//
	for numBits := uint64(1); numBits <= 4; numBits++ {
		for value := uint64(1) << (numBits - 1); value < uint64(1)<<numBits; value++ {
			tag, err := asg.Cell(table.NumBitsColumn.Inner, row)
			require.NoError(t, err)
			require.Equal(t, 0, tag.Cmp(field.Uint64[fr](numBits)))
			//
			val, err := asg.Cell(table.Value.Inner, row)
			require.NoError(t, err)
			require.Equal(t, 0, val.Cmp(field.Uint64[fr](value)))
			//
			row++
		}
	}
	// 2^4 rows in total, padding beyond.
	require.Equal(t, 16, row)
}
