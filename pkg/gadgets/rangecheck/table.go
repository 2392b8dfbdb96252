package rangecheck

import (
	"github.com/enricobottazzi/halo2-intro/pkg/plonk"
	"github.com/enricobottazzi/halo2-intro/pkg/util/field"
)

// FlatTable is a single-column lookup table enumerating every value in
// [0, NumRows).  One shared table amortises membership checks for any number
// of range-checked cells.
type FlatTable[F field.Element[F]] struct {
	// NumRows is the size of the enumerated range.
	NumRows uint
	// Value is the table column holding the enumeration.
	Value plonk.TableColumn
}

// ConfigureFlatTable allocates the table's column.
func ConfigureFlatTable[F field.Element[F]](meta *plonk.ConstraintSystem[F], numRows uint) FlatTable[F] {
	return FlatTable[F]{numRows, meta.LookupTableColumn()}
}

// Load writes the complete enumeration {0, 1, ..., NumRows-1} into the
// table.  Loading is idempotent and must complete before any satisfiability
// check reads the table.
func (p FlatTable[F]) Load(layouter *plonk.Layouter[F]) error {
	return layouter.AssignTable("range check table", func(table *plonk.Table[F]) error {
		for i := uint(0); i < p.NumRows; i++ {
			if err := table.AssignCell("value", p.Value, i, field.Uint64[F](uint64(i))); err != nil {
				return err
			}
		}
		//
		return nil
	})
}

// TieredTable is a two-column lookup table whose rows pair each value with
// its bit-length tag: for each b in 1..=NumBits, every value in
// [2^(b-1), 2^b) appears tagged with b.  A single table thereby serves range
// checks for any claimed bit-width up to NumBits.
type TieredTable[F field.Element[F]] struct {
	// NumBits is the maximum supported bit-length.
	NumBits uint
	// NumRows is the total range covered, i.e. 2^NumBits.
	NumRows uint
	// NumBitsColumn is the table column holding the bit-length tags.
	NumBitsColumn plonk.TableColumn
	// Value is the table column holding the tagged values.
	Value plonk.TableColumn
}

// ConfigureTieredTable allocates the table's columns, checking that the
// requested range is consistent with the requested bit-length.
func ConfigureTieredTable[F field.Element[F]](meta *plonk.ConstraintSystem[F],
	numBits uint, numRows uint) (TieredTable[F], error) {
	// Sanity check 2^numBits = numRows
	if uint(1)<<numBits != numRows {
		return TieredTable[F]{}, plonk.NewConfigurationError(
			"tiered table: 2^%d != %d", numBits, numRows)
	}
	//
	return TieredTable[F]{numBits, numRows, meta.LookupTableColumn(), meta.LookupTableColumn()}, nil
}

// Load writes the complete tiered enumeration.  Row 0 is the pair (1, 0):
// the value zero is represented under a 1-bit tag rather than a 0-bit one.
// This is a deliberate convention which downstream circuits may depend on,
// and must be preserved exactly.
func (p TieredTable[F]) Load(layouter *plonk.Layouter[F]) error {
	return layouter.AssignTable("tiered range check table", func(table *plonk.Table[F]) error {
		offset := uint(0)
		// Assign (num_bits = 1, value = 0)
		if err := p.assignRow(table, offset, 1, 0); err != nil {
			return err
		}
		//
		offset++
		//
		for numBits := uint(1); numBits <= p.NumBits; numBits++ {
			for value := uint(1) << (numBits - 1); value < uint(1)<<numBits; value++ {
				if err := p.assignRow(table, offset, numBits, value); err != nil {
					return err
				}
				//
				offset++
			}
		}
		//
		return nil
	})
}

func (p TieredTable[F]) assignRow(table *plonk.Table[F], offset uint, numBits uint, value uint) error {
	if err := table.AssignCell("num_bits", p.NumBitsColumn, offset, field.Uint64[F](uint64(numBits))); err != nil {
		return err
	}
	//
	return table.AssignCell("value", p.Value, offset, field.Uint64[F](uint64(value)))
}
