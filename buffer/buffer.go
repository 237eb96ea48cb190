// Package buffer provides the screen-cell grid that widgets render into.
//
// A Buffer is a row-major grid of core.Cell covering a rectangular area.
// Widgets write into it freely: out-of-area writes are dropped rather than
// rejected, so a widget can render against an assumed rectangle without
// bounds-checking every write. The terminal package diffs consecutive
// buffers to emit the minimal update for a frame.
package buffer

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/dshills/gridterm/core"
	"github.com/dshills/gridterm/text"
)

// Buffer is a 2-D grid of cells representing the desired terminal content
// for one render pass.
//
// The invariant len(Cells) == Area.Width*Area.Height always holds; Resize
// reallocates. A Buffer is owned by the Terminal that created it and is
// never shared across render passes except by swap.
type Buffer struct {
	// Area is the rectangle of the screen this buffer maps to. Cell
	// coordinates are global: a buffer with Area.X == 5 starts at column 5.
	Area core.Rect

	// Cells holds the content in row-major order.
	Cells []core.Cell
}

// New returns a buffer for the given area with all cells blank.
func New(area core.Rect) *Buffer {
	return Filled(area, core.EmptyCell())
}

// Filled returns a buffer with every cell initialized to the given cell.
func Filled(area core.Rect, cell core.Cell) *Buffer {
	cells := make([]core.Cell, area.Area())
	for i := range cells {
		cells[i] = cell
	}
	return &Buffer{Area: area, Cells: cells}
}

// WithLines returns a buffer sized to fit the given lines, for building
// expected results in tests.
func WithLines(lines ...string) *Buffer {
	height := len(lines)
	width := 0
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l))
	}
	buf := New(core.NewRect(width, height))
	for y, l := range lines {
		buf.SetString(0, y, l, core.Style{})
	}
	return buf
}

// index returns the slice index for global coordinates, and whether the
// coordinates lie inside the buffer's area.
func (b *Buffer) index(x, y int) (int, bool) {
	if !b.Area.Contains(x, y) {
		return 0, false
	}
	return (y-b.Area.Y)*b.Area.Width + (x - b.Area.X), true
}

// Get returns the cell at the given coordinates, or a blank cell if the
// coordinates lie outside the buffer's area.
func (b *Buffer) Get(x, y int) core.Cell {
	i, ok := b.index(x, y)
	if !ok {
		return core.EmptyCell()
	}
	return b.Cells[i]
}

// Set writes a cell at the given coordinates. Writes outside the buffer's
// area are silently dropped.
//
// Continuation bookkeeping for wide characters is automatic: writing a
// width-2 cell claims the following slot as a continuation, overwriting a
// continuation blanks its lead, and overwriting a lead blanks its orphaned
// continuation. A wide cell whose continuation would fall outside the area
// is dropped entirely rather than left as half a glyph.
func (b *Buffer) Set(x, y int, cell core.Cell) {
	i, ok := b.index(x, y)
	if !ok {
		return
	}

	if cell.Width == 2 && !b.Area.Contains(x+1, y) {
		return
	}

	// Repair neighbors broken by this write.
	if b.Cells[i].IsContinuation() {
		b.blankLead(x, y)
	}
	if b.Cells[i].Width == 2 {
		b.blankContinuation(x, y)
	}

	b.Cells[i] = cell
	if cell.Width == 2 {
		j, _ := b.index(x+1, y)
		old := b.Cells[j]
		if old.Width == 2 {
			b.blankContinuation(x+1, y)
		}
		b.Cells[j] = core.ContinuationCell(cell)
	}
}

// blankLead blanks the lead cell of the continuation at (x, y).
func (b *Buffer) blankLead(x, y int) {
	if i, ok := b.index(x-1, y); ok && b.Cells[i].Width == 2 {
		blank := core.EmptyCell()
		blank.FG = b.Cells[i].FG
		blank.BG = b.Cells[i].BG
		blank.Attrs = b.Cells[i].Attrs
		b.Cells[i] = blank
	}
}

// blankContinuation blanks the continuation of the wide lead at (x, y).
func (b *Buffer) blankContinuation(x, y int) {
	if i, ok := b.index(x+1, y); ok && b.Cells[i].IsContinuation() {
		blank := core.EmptyCell()
		blank.FG = b.Cells[i].FG
		blank.BG = b.Cells[i].BG
		blank.Attrs = b.Cells[i].Attrs
		b.Cells[i] = blank
	}
}

// SetString writes a string at the given position, applying the style patch
// to every cell it touches. Returns the column after the last cell written.
func (b *Buffer) SetString(x, y int, s string, style core.Style) int {
	return b.SetStringN(x, y, s, b.Area.Right()-x, style)
}

// SetStringN writes at most maxWidth display columns of a string. The string
// is walked grapheme cluster by grapheme cluster so combining marks stay
// attached to their base rune and wide glyphs claim two cells.
func (b *Buffer) SetStringN(x, y int, s string, maxWidth int, style core.Style) int {
	remaining := min(maxWidth, b.Area.Right()-x)

	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		width := runewidth.StringWidth(cluster)
		if width == 0 {
			continue
		}
		if width > remaining {
			break
		}

		runes := g.Runes()
		cell := core.Cell{Rune: runes[0], Width: width}
		if len(runes) > 1 {
			cell.Comb = runes[1:]
		}
		cell.ApplyStyle(style)

		b.Set(x, y, cell)
		x += width
		remaining -= width
	}
	return x
}

// SetLine writes a styled line at the given position, clipped to maxWidth
// display columns. Returns the column after the last cell written.
func (b *Buffer) SetLine(x, y int, line text.Line, maxWidth int) int {
	remaining := maxWidth
	for _, span := range line.Spans {
		if remaining <= 0 {
			break
		}
		next := b.SetStringN(x, y, span.Content, remaining, span.Style)
		remaining -= next - x
		x = next
	}
	return x
}

// SetStyle patches the given style onto every cell in the rectangle,
// clipped to the buffer's area.
func (b *Buffer) SetStyle(area core.Rect, style core.Style) {
	clipped := b.Area.Intersection(area)
	for y := clipped.Top(); y < clipped.Bottom(); y++ {
		for x := clipped.Left(); x < clipped.Right(); x++ {
			i, _ := b.index(x, y)
			b.Cells[i].ApplyStyle(style)
		}
	}
}

// Fill sets every cell in the rectangle to the given cell, clipped to the
// buffer's area.
func (b *Buffer) Fill(area core.Rect, cell core.Cell) {
	clipped := b.Area.Intersection(area)
	for y := clipped.Top(); y < clipped.Bottom(); y++ {
		for x := clipped.Left(); x < clipped.Right(); x++ {
			b.Set(x, y, cell)
		}
	}
}

// Merge overlays another buffer's content onto this one, offset by
// (dx, dy), clipped to this buffer's area. Used to composite a widget that
// rendered into a temporary buffer.
func (b *Buffer) Merge(other *Buffer, dx, dy int) {
	for y := other.Area.Top(); y < other.Area.Bottom(); y++ {
		for x := other.Area.Left(); x < other.Area.Right(); x++ {
			i, _ := other.index(x, y)
			cell := other.Cells[i]
			if cell.IsContinuation() {
				continue // re-created by the lead cell's Set
			}
			b.Set(x+dx, y+dy, cell)
		}
	}
}

// Resize reallocates the buffer for a new area. Content is discarded; the
// caller is expected to redraw.
func (b *Buffer) Resize(area core.Rect) {
	if b.Area.Equals(area) {
		return
	}
	b.Area = area
	b.Cells = make([]core.Cell, area.Area())
	b.Reset()
}

// Reset blanks every cell in the buffer.
func (b *Buffer) Reset() {
	blank := core.EmptyCell()
	for i := range b.Cells {
		b.Cells[i] = blank
	}
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	cells := make([]core.Cell, len(b.Cells))
	copy(cells, b.Cells)
	return &Buffer{Area: b.Area, Cells: cells}
}

// Equals returns true if two buffers have the same area and content.
func (b *Buffer) Equals(other *Buffer) bool {
	if !b.Area.Equals(other.Area) {
		return false
	}
	for i := range b.Cells {
		if !b.Cells[i].Equals(other.Cells[i]) {
			return false
		}
	}
	return true
}
