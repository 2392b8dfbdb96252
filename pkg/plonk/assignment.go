package plonk

import (
	"sort"

	"github.com/enricobottazzi/halo2-intro/pkg/util/field"
)

// CellRef identifies a single cell of a circuit instance.
type CellRef struct {
	// Column of this cell.
	Column Column
	// Row (absolute) of this cell.
	Row uint
}

type selectorRef struct {
	selector uint
	row      uint
}

// AssignedCell is the handle returned by a cell assignment.  Downstream
// logic can read it to chain gadgets, feeding one gadget's output cell into
// another's input.
type AssignedCell[F field.Element[F]] struct {
	// Cell which was assigned.
	Cell CellRef
	// Value which was assigned to it.
	Value F
}

// Assignment holds the complete concrete assignment of a single circuit
// instance: cell values, enabled selectors and the row spans of the regions
// which produced them.  Cells which were never assigned read as zero.
// Assignments are created fresh per instance and discarded after checking.
type Assignment[F field.Element[F]] struct {
	height    uint
	cells     map[CellRef]F
	selectors map[selectorRef]bool
	regions   []regionSpan
}

type regionSpan struct {
	name  string
	start uint
	end   uint
}

// NewAssignment constructs an empty assignment with the given number of
// rows.
func NewAssignment[F field.Element[F]](height uint) *Assignment[F] {
	return &Assignment[F]{
		height:    height,
		cells:     make(map[CellRef]F),
		selectors: make(map[selectorRef]bool),
	}
}

// Height returns the number of rows of this instance.
func (p *Assignment[F]) Height() uint {
	return p.height
}

// Cell returns the value held by the given column at the given row, or an
// error if the row lies outside the trace.
func (p *Assignment[F]) Cell(col Column, row int) (F, error) {
	var zero F
	//
	if row < 0 || uint(row) >= p.height {
		return zero, NewAssignmentError("out-of-bounds access of %s (row %d)", col, row)
	}
	//
	return p.cells[CellRef{col, uint(row)}], nil
}

// Selector returns 1 if the given selector is enabled on the given row, and
// 0 otherwise.
func (p *Assignment[F]) Selector(sel Selector, row int) (F, error) {
	var zero F
	//
	if row < 0 || uint(row) >= p.height {
		return zero, NewAssignmentError("out-of-bounds access of %s (row %d)", sel, row)
	}
	//
	if p.selectors[selectorRef{sel.Index, uint(row)}] {
		return field.One[F](), nil
	}
	//
	return zero, nil
}

// RegionOf returns the name of the region which covers a given row, or the
// empty string if no region does.
func (p *Assignment[F]) RegionOf(row uint) string {
	for _, region := range p.regions {
		if region.start <= row && row < region.end {
			return region.name
		}
	}
	//
	return ""
}

// Cells returns every assigned cell, sorted by column and row.  This gives a
// canonical view of the witness, e.g. for comparing two assignment runs.
func (p *Assignment[F]) Cells() []AssignedCell[F] {
	cells := make([]AssignedCell[F], 0, len(p.cells))
	//
	for ref, val := range p.cells {
		cells = append(cells, AssignedCell[F]{ref, val})
	}
	//
	sort.Slice(cells, func(i, j int) bool {
		l, r := cells[i].Cell, cells[j].Cell
		//
		if l.Column != r.Column {
			if l.Column.Kind != r.Column.Kind {
				return l.Column.Kind < r.Column.Kind
			}
			//
			return l.Column.Index < r.Column.Index
		}
		//
		return l.Row < r.Row
	})
	//
	return cells
}

// set writes a value into a cell, enforcing the write-at-most-once
// discipline.  When idempotent holds (i.e. for table loading), rewriting a
// cell with the identical value is a no-op; a conflicting rewrite is always
// an error.
func (p *Assignment[F]) set(col Column, row uint, val F, idempotent bool) error {
	if row >= p.height {
		return NewAssignmentError("cannot assign %s (row %d): trace has %d rows", col, row, p.height)
	}
	//
	ref := CellRef{col, row}
	//
	if existing, ok := p.cells[ref]; ok {
		if idempotent && existing.Cmp(val) == 0 {
			return nil
		}
		//
		return NewAssignmentError("cell %s (row %d) already assigned", col, row)
	}
	//
	p.cells[ref] = val
	//
	return nil
}

// enable switches a selector on for a given row.  Enabling an already
// enabled selector is harmless.
func (p *Assignment[F]) enable(sel Selector, row uint) error {
	if row >= p.height {
		return NewAssignmentError("cannot enable %s (row %d): trace has %d rows", sel, row, p.height)
	}
	//
	p.selectors[selectorRef{sel.Index, row}] = true
	//
	return nil
}
