package circuits

import (
	"github.com/enricobottazzi/halo2-intro/pkg/gadgets/rangecheck"
	"github.com/enricobottazzi/halo2-intro/pkg/plonk"
	"github.com/enricobottazzi/halo2-intro/pkg/util/field"
)

// PolyRangeCircuit witnesses a single value checked against the polynomial
// range gate, with no lookup table involved.
type PolyRangeCircuit[F field.Element[F]] struct {
	Value F
	// Range of legal values, i.e. [0, Range).
	Range uint
}

// Configure allocates the value column and the polynomial range gate.
func (p *PolyRangeCircuit[F]) Configure(meta *plonk.ConstraintSystem[F]) (rangecheck.PolyConfig[F], error) {
	value := meta.AdviceColumn()
	//
	return rangecheck.ConfigurePoly[F](meta, value, p.Range), nil
}

// Synthesise assigns the value under the range check selector.
func (p *PolyRangeCircuit[F]) Synthesise(config rangecheck.PolyConfig[F], layouter *plonk.Layouter[F]) error {
	_, err := config.Assign(layouter, p.Value)
	//
	return err
}

// RangeClaim pairs a witnessed value with its claimed range.
type RangeClaim[F field.Element[F]] struct {
	Value F
	// Range claimed for this value, i.e. value ∈ [0, Range).
	Range uint
}

// RangeCircuit witnesses any number of values, each claimed to lie within
// its own range, sharing one polynomial gate and one flat lookup table.
// Claims below the threshold use the gate; the rest use the table.
type RangeCircuit[F field.Element[F]] struct {
	Claims []RangeClaim[F]
	// Threshold below which the polynomial variant is used.
	Threshold uint
	// TableRows is the size of the shared lookup table.
	TableRows uint
}

// Configure allocates the value column and both checking mechanisms.
func (p *RangeCircuit[F]) Configure(meta *plonk.ConstraintSystem[F]) (rangecheck.LookupConfig[F], error) {
	value := meta.AdviceColumn()
	//
	return rangecheck.ConfigureLookup[F](meta, value, p.Threshold, p.TableRows)
}

// Synthesise assigns every claimed value and loads the shared table.
func (p *RangeCircuit[F]) Synthesise(config rangecheck.LookupConfig[F], layouter *plonk.Layouter[F]) error {
	for _, claim := range p.Claims {
		if _, err := config.Assign(layouter, claim.Value, claim.Range); err != nil {
			return err
		}
	}
	//
	return config.Table.Load(layouter)
}

// TieredClaim pairs a witnessed value with its claimed bit-length and range.
type TieredClaim[F field.Element[F]] struct {
	Value F
	// NumBits claimed for this value.
	NumBits uint
	// Range claimed for this value.
	Range uint
}

// TieredRangeCircuit witnesses any number of (value, bit-length) claims
// against one shared tiered table.
type TieredRangeCircuit[F field.Element[F]] struct {
	Claims []TieredClaim[F]
	// Threshold below which the polynomial variant is used.
	Threshold uint
	// TableBits is the maximum bit-length the shared table supports.
	TableBits uint
}

// Configure allocates the value and bit-length columns and the tiered
// checking mechanisms.
func (p *TieredRangeCircuit[F]) Configure(meta *plonk.ConstraintSystem[F]) (rangecheck.TieredConfig[F], error) {
	var (
		value   = meta.AdviceColumn()
		numBits = meta.AdviceColumn()
	)
	//
	return rangecheck.ConfigureTiered[F](meta, value, numBits, p.Threshold, p.TableBits)
}

// Synthesise assigns every claim and loads the shared table.
func (p *TieredRangeCircuit[F]) Synthesise(config rangecheck.TieredConfig[F], layouter *plonk.Layouter[F]) error {
	for _, claim := range p.Claims {
		if _, err := config.Assign(layouter, claim.Value, claim.NumBits, claim.Range); err != nil {
			return err
		}
	}
	//
	return config.Table.Load(layouter)
}
