// Package rangecheck provides three escalating range-membership gadgets: a
// pure polynomial identity for small ranges, a flat lookup table for large
// ranges, and a bit-length-tagged tiered lookup table which lets one shared
// table validate many different sub-ranges.
package rangecheck

import (
	"github.com/enricobottazzi/halo2-intro/pkg/plonk"
	"github.com/enricobottazzi/halo2-intro/pkg/util/field"
)

// rangeExpr builds the product (0 - v)(1 - v)...(range-1 - v), which
// vanishes exactly when v lies within [0, range).  The expression degree
// grows linearly with the range, which is what makes this variant viable
// only below a configured threshold.
func rangeExpr[F field.Element[F]](value plonk.Expr[F], rang uint) plonk.Expr[F] {
	factors := make([]plonk.Expr[F], rang)
	//
	for i := uint(0); i < rang; i++ {
		factors[i] = plonk.Subtract(plonk.NewConstantOf[F](uint64(i)), value)
	}
	//
	return plonk.Product(factors...)
}

// PolyConfig enforces membership of [0, Range) with a single product gate
// under a simple selector.  No table is involved.
type PolyConfig[F field.Element[F]] struct {
	// Range being checked, i.e. legal values are [0, Range).
	Range uint

	value       plonk.Column
	qRangeCheck plonk.Selector
}

// ConfigurePoly registers the range check gate over the given advice
// column.  Advice columns are passed in rather than allocated here, since
// they are typically shared across several configurations.
func ConfigurePoly[F field.Element[F]](meta *plonk.ConstraintSystem[F],
	value plonk.Column, rang uint) PolyConfig[F] {
	//
	qRangeCheck := meta.Selector()
	//
	meta.CreateGate("range check", qRangeCheck, func(vc *plonk.VirtualCells[F]) []plonk.Constraint[F] {
		v := vc.QueryAdvice(value, 0)
		//
		return []plonk.Constraint[F]{
			{Name: "range check", Expr: rangeExpr(v, rang)},
		}
	})
	//
	return PolyConfig[F]{rang, value, qRangeCheck}
}

// Assign witnesses a value in its own region with the range check gate
// enabled.
func (p PolyConfig[F]) Assign(layouter *plonk.Layouter[F], value F) (plonk.AssignedCell[F], error) {
	var cell plonk.AssignedCell[F]
	//
	err := layouter.AssignRegion("assign value", func(region *plonk.Region[F]) error {
		if err := region.EnableSelector(p.qRangeCheck, 0); err != nil {
			return err
		}
		//
		var err error
		cell, err = region.AssignAdvice("value", p.value, 0, value)
		//
		return err
	})
	//
	return cell, err
}

// LookupConfig combines the polynomial gate with a flat lookup table.  The
// claimed range decides which mechanism checks a given value: below the
// threshold the product gate is enabled, otherwise the value is looked up in
// the shared table.  The lookup selector is necessarily complex, since it
// appears within the lookup input expression.
type LookupConfig[F field.Element[F]] struct {
	// Threshold below which the polynomial variant is used.
	Threshold uint
	// Table shared by every looked-up value.
	Table FlatTable[F]

	value       plonk.Column
	qRangeCheck plonk.Selector
	qLookup     plonk.Selector
}

// ConfigureLookup registers both mechanisms over the given advice column.
// The polynomial gate is built with degree equal to the threshold.
func ConfigureLookup[F field.Element[F]](meta *plonk.ConstraintSystem[F],
	value plonk.Column, threshold uint, tableRows uint) (LookupConfig[F], error) {
	//
	if threshold > tableRows {
		return LookupConfig[F]{}, plonk.NewConfigurationError(
			"range check: threshold %d exceeds table capacity %d", threshold, tableRows)
	}
	//
	var (
		qRangeCheck = meta.Selector()
		qLookup     = meta.ComplexSelector()
		table       = ConfigureFlatTable[F](meta, tableRows)
	)
	//
	meta.CreateGate("range check", qRangeCheck, func(vc *plonk.VirtualCells[F]) []plonk.Constraint[F] {
		v := vc.QueryAdvice(value, 0)
		//
		return []plonk.Constraint[F]{
			{Name: "range check", Expr: rangeExpr(v, threshold)},
		}
	})
	// Gating by the selector keeps inactive rows on the all-zero tuple,
	// which the zero-padded table always contains.
	err := meta.Lookup("range check lookup", func(vc *plonk.VirtualCells[F]) []plonk.LookupPair[F] {
		var (
			q = vc.QuerySelector(qLookup)
			v = vc.QueryAdvice(value, 0)
		)
		//
		return []plonk.LookupPair[F]{
			{Input: plonk.Product(q, v), Table: table.Value},
		}
	})
	//
	if err != nil {
		return LookupConfig[F]{}, err
	}
	//
	return LookupConfig[F]{threshold, table, value, qRangeCheck, qLookup}, nil
}

// Assign witnesses a value claimed to lie within [0, claimedRange), using
// the polynomial gate when the claimed range falls below the threshold and
// the lookup table otherwise.  A claimed range beyond the table's total
// capacity is a configuration error, since no mechanism could check it.
func (p LookupConfig[F]) Assign(layouter *plonk.Layouter[F], value F,
	claimedRange uint) (plonk.AssignedCell[F], error) {
	var cell plonk.AssignedCell[F]
	//
	if claimedRange > p.Table.NumRows {
		return cell, plonk.NewConfigurationError(
			"range check: claimed range %d exceeds table capacity %d", claimedRange, p.Table.NumRows)
	}
	//
	selector := p.qLookup
	name := "assign value for lookup range check"
	//
	if claimedRange < p.Threshold {
		selector = p.qRangeCheck
		name = "assign value"
	}
	//
	err := layouter.AssignRegion(name, func(region *plonk.Region[F]) error {
		if err := region.EnableSelector(selector, 0); err != nil {
			return err
		}
		//
		var err error
		cell, err = region.AssignAdvice("value", p.value, 0, value)
		//
		return err
	})
	//
	return cell, err
}

// TieredConfig checks the pair (claimed bit-length, value) against the
// tiered table.  A claimed tag which understates or overstates the true
// minimal bit-length of a value produces no matching table row and is
// rejected.
type TieredConfig[F field.Element[F]] struct {
	// Threshold below which the polynomial variant is used.
	Threshold uint
	// Table shared by every looked-up (num_bits, value) pair.
	Table TieredTable[F]

	value       plonk.Column
	numBits     plonk.Column
	qRangeCheck plonk.Selector
	qLookup     plonk.Selector
}

// ConfigureTiered registers the polynomial gate and the two-column lookup
// over the given advice columns.
func ConfigureTiered[F field.Element[F]](meta *plonk.ConstraintSystem[F],
	value plonk.Column, numBits plonk.Column, threshold uint,
	tableBits uint) (TieredConfig[F], error) {
	//
	var (
		qRangeCheck = meta.Selector()
		qLookup     = meta.ComplexSelector()
	)
	//
	table, err := ConfigureTieredTable[F](meta, tableBits, uint(1)<<tableBits)
	//
	if err != nil {
		return TieredConfig[F]{}, err
	}
	//
	meta.CreateGate("range check", qRangeCheck, func(vc *plonk.VirtualCells[F]) []plonk.Constraint[F] {
		v := vc.QueryAdvice(value, 0)
		//
		return []plonk.Constraint[F]{
			{Name: "range check", Expr: rangeExpr(v, threshold)},
		}
	})
	//
	err = meta.Lookup("tiered range check lookup", func(vc *plonk.VirtualCells[F]) []plonk.LookupPair[F] {
		var (
			q = vc.QuerySelector(qLookup)
			v = vc.QueryAdvice(value, 0)
			b = vc.QueryAdvice(numBits, 0)
		)
		//
		return []plonk.LookupPair[F]{
			{Input: plonk.Product(q, b), Table: table.NumBitsColumn},
			{Input: plonk.Product(q, v), Table: table.Value},
		}
	})
	//
	if err != nil {
		return TieredConfig[F]{}, err
	}
	//
	return TieredConfig[F]{threshold, table, value, numBits, qRangeCheck, qLookup}, nil
}

// Assign witnesses a value together with its claimed bit-length.  Below the
// threshold the polynomial gate is used and the bit-length is witnessed but
// unconstrained; otherwise the (num_bits, value) pair is looked up in the
// tiered table.
func (p TieredConfig[F]) Assign(layouter *plonk.Layouter[F], value F, numBits uint,
	claimedRange uint) (plonk.AssignedCell[F], error) {
	var cell plonk.AssignedCell[F]
	//
	if claimedRange > p.Table.NumRows {
		return cell, plonk.NewConfigurationError(
			"range check: claimed range %d exceeds table capacity %d", claimedRange, p.Table.NumRows)
	}
	//
	selector := p.qLookup
	name := "assign value for tiered range check"
	//
	if claimedRange < p.Threshold {
		selector = p.qRangeCheck
		name = "assign value"
	}
	//
	err := layouter.AssignRegion(name, func(region *plonk.Region[F]) error {
		if err := region.EnableSelector(selector, 0); err != nil {
			return err
		}
		//
		if _, err := region.AssignAdvice("num_bits", p.numBits, 0, field.Uint64[F](uint64(numBits))); err != nil {
			return err
		}
		//
		var err error
		cell, err = region.AssignAdvice("value", p.value, 0, value)
		//
		return err
	})
	//
	return cell, err
}
