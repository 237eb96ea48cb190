package buffer

import "github.com/dshills/gridterm/core"

// Run is a horizontal run of adjacent changed cells: one cursor move plus a
// burst of cell content. Coalescing changes into runs keeps the emitted
// update volume small.
type Run struct {
	X, Y  int
	Cells []core.Cell
}

// Width returns the number of columns the run covers.
func (r Run) Width() int {
	return len(r.Cells)
}

// Diff computes the minimal edit script that turns prev into cur.
//
// Runs are emitted in row-major, left-to-right top-to-bottom order. A wide
// character's lead and continuation cells always land in the same run, never
// split across two, so no half glyph is ever written to the terminal.
//
// If the two buffers cover different areas every cell of cur is emitted,
// which is the full-redraw case after a resize.
func Diff(prev, cur *Buffer) []Run {
	if !prev.Area.Equals(cur.Area) {
		return FullRuns(cur)
	}

	var runs []Run
	area := cur.Area
	changed := make([]bool, area.Width)

	for y := area.Top(); y < area.Bottom(); y++ {
		rowStart := (y - area.Y) * area.Width
		anyChanged := false
		for col := 0; col < area.Width; col++ {
			i := rowStart + col
			changed[col] = !cur.Cells[i].Equals(prev.Cells[i])
			anyChanged = anyChanged || changed[col]
		}
		if !anyChanged {
			continue
		}

		// A wide pair changes as a unit: pull the partner into the run.
		for col := 0; col < area.Width; col++ {
			i := rowStart + col
			if changed[col] && cur.Cells[i].Width == 2 && col+1 < area.Width {
				changed[col+1] = true
			}
		}
		for col := area.Width - 1; col > 0; col-- {
			i := rowStart + col
			if changed[col] && cur.Cells[i].IsContinuation() {
				changed[col-1] = true
			}
		}

		runs = appendRowRuns(runs, cur, y, changed)
	}
	return runs
}

// appendRowRuns coalesces the changed flags of one row into runs.
func appendRowRuns(runs []Run, cur *Buffer, y int, changed []bool) []Run {
	area := cur.Area
	col := 0
	for col < area.Width {
		if !changed[col] {
			col++
			continue
		}
		start := col
		for col < area.Width && changed[col] {
			col++
		}
		cells := make([]core.Cell, col-start)
		rowStart := (y - area.Y) * area.Width
		copy(cells, cur.Cells[rowStart+start:rowStart+col])
		runs = append(runs, Run{X: area.X + start, Y: y, Cells: cells})
	}
	return runs
}

// FullRuns emits every row of the buffer as one run, the full-redraw edit
// script used when the previous screen content cannot be trusted.
func FullRuns(cur *Buffer) []Run {
	area := cur.Area
	if area.IsEmpty() {
		return nil
	}
	runs := make([]Run, 0, area.Height)
	for y := area.Top(); y < area.Bottom(); y++ {
		rowStart := (y - area.Y) * area.Width
		cells := make([]core.Cell, area.Width)
		copy(cells, cur.Cells[rowStart:rowStart+area.Width])
		runs = append(runs, Run{X: area.X, Y: y, Cells: cells})
	}
	return runs
}

// Apply writes the runs of an edit script into the buffer verbatim. Applying
// Diff(prev, cur) onto a clone of prev reproduces cur exactly.
func (b *Buffer) Apply(runs []Run) {
	for _, run := range runs {
		for i, cell := range run.Cells {
			if j, ok := b.index(run.X+i, run.Y); ok {
				b.Cells[j] = cell
			}
		}
	}
}
