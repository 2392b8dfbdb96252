package plonk

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/enricobottazzi/halo2-intro/pkg/util/field"
)

func TestLayouterRegionsDoNotOverlap(t *testing.T) {
	var (
		asg      = NewAssignment[fr](8)
		layouter = NewLayouter(asg)
		col      = Column{Advice, 0}
		cells    []AssignedCell[fr]
	)
	// Two regions of two rows each over the same column.
	for i := 0; i < 2; i++ {
		err := layouter.AssignRegion("block", func(region *Region[fr]) error {
			for offset := uint(0); offset < 2; offset++ {
				cell, err := region.AssignAdvice("x", col, offset, field.Uint64[fr](uint64(offset)))
				//
				if err != nil {
					return err
				}
				//
				cells = append(cells, cell)
			}
			//
			return nil
		})
		require.NoError(t, err)
	}
	// Successive regions occupy successive rows.
	require.Equal(t, uint(0), cells[0].Cell.Row)
	require.Equal(t, uint(1), cells[1].Cell.Row)
	require.Equal(t, uint(2), cells[2].Cell.Row)
	require.Equal(t, uint(3), cells[3].Cell.Row)
}

func TestLayouterDoubleAssignFails(t *testing.T) {
	var (
		asg      = NewAssignment[fr](4)
		layouter = NewLayouter(asg)
		col      = Column{Advice, 0}
	)
	//
	err := layouter.AssignRegion("block", func(region *Region[fr]) error {
		if _, err := region.AssignAdvice("x", col, 0, field.Uint64[fr](1)); err != nil {
			return err
		}
		// Second write to the same cell, even with the same value.
		_, err := region.AssignAdvice("x", col, 0, field.Uint64[fr](1))
		//
		return err
	})
	//
	require.Error(t, err)
	require.IsType(t, &AssignmentError{}, err)
}

func TestLayouterClosedRegionFails(t *testing.T) {
	var (
		asg      = NewAssignment[fr](4)
		layouter = NewLayouter(asg)
		col      = Column{Advice, 0}
		escaped  *Region[fr]
	)
	//
	err := layouter.AssignRegion("block", func(region *Region[fr]) error {
		escaped = region
		//
		return nil
	})
	require.NoError(t, err)
	// Assigning through a retained handle is assigning outside any open
	// region.
	_, err = escaped.AssignAdvice("x", col, 0, field.Uint64[fr](1))
	require.Error(t, err)
	require.IsType(t, &AssignmentError{}, err)
	//
	err = escaped.EnableSelector(Selector{0, Simple}, 0)
	require.Error(t, err)
}

func TestLayouterColumnKindMismatch(t *testing.T) {
	var (
		asg      = NewAssignment[fr](4)
		layouter = NewLayouter(asg)
		col      = Column{Fixed, 0}
	)
	//
	err := layouter.AssignRegion("block", func(region *Region[fr]) error {
		_, err := region.AssignAdvice("x", col, 0, field.Uint64[fr](1))
		//
		return err
	})
	//
	require.Error(t, err)
}

func TestLayouterTraceHeightExceeded(t *testing.T) {
	var (
		asg      = NewAssignment[fr](2)
		layouter = NewLayouter(asg)
		col      = Column{Advice, 0}
	)
	//
	err := layouter.AssignRegion("block", func(region *Region[fr]) error {
		_, err := region.AssignAdvice("x", col, 2, field.Uint64[fr](1))
		//
		return err
	})
	//
	require.Error(t, err)
	require.IsType(t, &AssignmentError{}, err)
}

func TestLayouterRegionNames(t *testing.T) {
	var (
		asg      = NewAssignment[fr](4)
		layouter = NewLayouter(asg)
		col      = Column{Advice, 0}
	)
	//
	for _, name := range []string{"first", "second"} {
		err := layouter.AssignRegion(name, func(region *Region[fr]) error {
			_, err := region.AssignAdvice("x", col, 0, field.Uint64[fr](1))
			//
			return err
		})
		require.NoError(t, err)
	}
	//
	require.Equal(t, "first", asg.RegionOf(0))
	require.Equal(t, "second", asg.RegionOf(1))
	require.Equal(t, "", asg.RegionOf(2))
}

func TestLayouterTableLoadIdempotent(t *testing.T) {
	var (
		asg      = NewAssignment[fr](4)
		layouter = NewLayouter(asg)
		col      = TableColumn{Column{Fixed, 0}}
	)
	//
	load := func() error {
		return layouter.AssignTable("table", func(table *Table[fr]) error {
			for i := uint(0); i < 3; i++ {
				if err := table.AssignCell("value", col, i, field.Uint64[fr](uint64(i))); err != nil {
					return err
				}
			}
			//
			return nil
		})
	}
	// Loading twice is equivalent to loading once.
	require.NoError(t, load())
	//
	before := asg.Cells()
	require.NoError(t, load())
	require.Equal(t, before, asg.Cells())
}

func TestLayouterTableConflictFails(t *testing.T) {
	var (
		asg      = NewAssignment[fr](4)
		layouter = NewLayouter(asg)
		col      = TableColumn{Column{Fixed, 0}}
	)
	//
	err := layouter.AssignTable("table", func(table *Table[fr]) error {
		return table.AssignCell("value", col, 0, field.Uint64[fr](1))
	})
	require.NoError(t, err)
	// Conflicting reload must fail.
	err = layouter.AssignTable("table", func(table *Table[fr]) error {
		return table.AssignCell("value", col, 0, field.Uint64[fr](2))
	})
	require.Error(t, err)
	require.IsType(t, &AssignmentError{}, err)
}
