package plonk

import (
	"github.com/enricobottazzi/halo2-intro/pkg/util/field"
)

// Layouter allocates contiguous blocks of rows ("regions") in which gadgets
// assign their witness values, and loads lookup tables.  An internal row
// cursor guarantees distinct regions never reuse the same rows; lookup
// tables live in their own fixed columns and always start from row zero.
type Layouter[F field.Element[F]] struct {
	asg    *Assignment[F]
	cursor uint
}

// NewLayouter constructs a layouter writing into the given assignment.  The
// row cursor starts at row zero.
func NewLayouter[F field.Element[F]](asg *Assignment[F]) *Layouter[F] {
	return &Layouter[F]{asg, 0}
}

// AssignRegion opens a region at the next free row, passes it to the given
// function to be filled in, and on success advances the row cursor past
// every row the region touched.  The region name is diagnostic only; it is
// attached to failures reported against the region's rows.
func (p *Layouter[F]) AssignRegion(name string, fn func(*Region[F]) error) error {
	region := &Region[F]{name, p.cursor, 0, p.asg, true}
	//
	if err := fn(region); err != nil {
		return err
	}
	// Close the region so late assignments through a retained handle fail.
	region.open = false
	//
	p.asg.regions = append(p.asg.regions, regionSpan{name, p.cursor, p.cursor + region.rows})
	p.cursor += region.rows
	//
	return nil
}

// AssignTable loads a lookup table, passing a table context to the given
// function.  Table cells are written from absolute row zero in their own
// fixed columns, so loading commutes with region allocation.  Loading is
// idempotent: re-assigning a table cell with the identical value is a no-op,
// whilst a conflicting value is an assignment error.
func (p *Layouter[F]) AssignTable(name string, fn func(*Table[F]) error) error {
	table := &Table[F]{name, p.asg, true}
	//
	if err := fn(table); err != nil {
		return err
	}
	//
	table.open = false
	//
	return nil
}

// Region is a contiguous block of rows scoped to a single gadget
// invocation.  All offsets are relative to the region's starting row.
type Region[F field.Element[F]] struct {
	name  string
	start uint
	// rows records how many rows this region touched (maximum offset + 1).
	rows uint
	asg  *Assignment[F]
	open bool
}

// EnableSelector sets the given selector to 1 at the given offset within
// this region.
func (p *Region[F]) EnableSelector(sel Selector, offset uint) error {
	if !p.open {
		return NewAssignmentError("region \"%s\" is no longer open", p.name)
	}
	//
	p.grow(offset)
	//
	return p.asg.enable(sel, p.start+offset)
}

// AssignAdvice writes a witness value into an advice column at the given
// offset within this region, failing if that cell was already assigned.
func (p *Region[F]) AssignAdvice(name string, col Column, offset uint, val F) (AssignedCell[F], error) {
	return p.assign(name, col, Advice, offset, val)
}

// AssignFixed writes a value into a fixed column at the given offset within
// this region, failing if that cell was already assigned.
func (p *Region[F]) AssignFixed(name string, col Column, offset uint, val F) (AssignedCell[F], error) {
	return p.assign(name, col, Fixed, offset, val)
}

// AssignInstance writes a public value into an instance column at the given
// offset within this region, failing if that cell was already assigned.
func (p *Region[F]) AssignInstance(name string, col Column, offset uint, val F) (AssignedCell[F], error) {
	return p.assign(name, col, Instance, offset, val)
}

func (p *Region[F]) assign(name string, col Column, kind ColumnKind, offset uint, val F) (AssignedCell[F], error) {
	var cell AssignedCell[F]
	//
	if !p.open {
		return cell, NewAssignmentError("region \"%s\" is no longer open (assigning \"%s\")", p.name, name)
	} else if col.Kind != kind {
		return cell, NewAssignmentError("cannot assign \"%s\": %s is not an %s column", name, col, kind)
	}
	//
	row := p.start + offset
	//
	if err := p.asg.set(col, row, val, false); err != nil {
		return cell, err
	}
	//
	p.grow(offset)
	//
	return AssignedCell[F]{CellRef{col, row}, val}, nil
}

func (p *Region[F]) grow(offset uint) {
	p.rows = max(p.rows, offset+1)
}

// Table is the context in which a lookup table is loaded.  Offsets are
// absolute table rows, starting from zero.
type Table[F field.Element[F]] struct {
	name string
	asg  *Assignment[F]
	open bool
}

// AssignCell writes a value into a table column at the given row.
// Rewriting a cell with the identical value is a no-op, so that loading a
// table twice is equivalent to loading it once.
func (p *Table[F]) AssignCell(name string, col TableColumn, offset uint, val F) error {
	if !p.open {
		return NewAssignmentError("table \"%s\" is no longer open (assigning \"%s\")", p.name, name)
	}
	//
	return p.asg.set(col.Inner, offset, val, true)
}
