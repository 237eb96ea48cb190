package backend

import (
	"strings"

	"github.com/dshills/gridterm/core"
)

// TestBackend is an in-memory Backend for tests. It keeps a cell grid that
// writes land in only on Flush, mirroring the buffered behavior of the real
// backends, and counts the operations performed so tests can assert on how
// much work a frame did.
type TestBackend struct {
	width  int
	height int
	cells  []core.Cell

	cursorX int
	cursorY int
	pen     core.Style

	pending []pendingCell

	cursorVisible bool
	cursorShownX  int
	cursorShownY  int
	raw           bool
	altScreen     bool
	closed        bool

	onResize func(width, height int)

	// FlushErr, when set, is returned by the next Flush and then cleared.
	// Buffered writes are kept so a retried frame still lands.
	FlushErr error

	// Flushes counts successful flushes, Writes counts cells written.
	Flushes int
	Writes  int
}

type pendingCell struct {
	x    int
	y    int
	cell core.Cell
}

// NewTestBackend creates a test backend with the given grid size.
func NewTestBackend(width, height int) *TestBackend {
	tb := &TestBackend{width: width, height: height}
	tb.cells = blankGrid(width, height)
	return tb
}

func blankGrid(width, height int) []core.Cell {
	cells := make([]core.Cell, width*height)
	for i := range cells {
		cells[i] = core.EmptyCell()
	}
	return cells
}

func (tb *TestBackend) Size() (int, int) { return tb.width, tb.height }

// Resize changes the grid size, blanks the content and fires the resize
// callback, the way a real terminal resize behaves.
func (tb *TestBackend) Resize(width, height int) {
	tb.width = width
	tb.height = height
	tb.cells = blankGrid(width, height)
	tb.pending = tb.pending[:0]
	if tb.onResize != nil {
		tb.onResize(width, height)
	}
}

func (tb *TestBackend) MoveCursor(x, y int) {
	tb.cursorX = x
	tb.cursorY = y
}

func (tb *TestBackend) SetStyle(style core.Style) {
	tb.pen = style
}

func (tb *TestBackend) WriteCell(cell core.Cell) {
	tb.pending = append(tb.pending, pendingCell{x: tb.cursorX, y: tb.cursorY, cell: cell})
	tb.Writes++
	if cell.Width > 1 {
		tb.cursorX += cell.Width
	} else {
		tb.cursorX++
	}
}

func (tb *TestBackend) WriteRun(cell core.Cell, count int) {
	for i := 0; i < count; i++ {
		tb.WriteCell(cell)
	}
}

func (tb *TestBackend) Flush() error {
	if tb.FlushErr != nil {
		err := tb.FlushErr
		tb.FlushErr = nil
		return err
	}
	for _, pc := range tb.pending {
		if pc.x < 0 || pc.x >= tb.width || pc.y < 0 || pc.y >= tb.height {
			continue
		}
		tb.cells[pc.y*tb.width+pc.x] = pc.cell
	}
	tb.pending = tb.pending[:0]
	tb.Flushes++
	return nil
}

func (tb *TestBackend) EnterRawMode() error {
	tb.raw = true
	return nil
}

func (tb *TestBackend) LeaveRawMode() error {
	tb.raw = false
	return nil
}

func (tb *TestBackend) EnterAltScreen() { tb.altScreen = true }
func (tb *TestBackend) LeaveAltScreen() { tb.altScreen = false }

func (tb *TestBackend) ShowCursor(x, y int) {
	tb.cursorVisible = true
	tb.cursorShownX = x
	tb.cursorShownY = y
}

func (tb *TestBackend) HideCursor() {
	tb.cursorVisible = false
}

func (tb *TestBackend) OnResize(callback func(width, height int)) {
	tb.onResize = callback
}

func (tb *TestBackend) Close() error {
	tb.closed = true
	tb.raw = false
	tb.altScreen = false
	return nil
}

// CellAt returns the flushed cell at (x, y).
func (tb *TestBackend) CellAt(x, y int) core.Cell {
	if x < 0 || x >= tb.width || y < 0 || y >= tb.height {
		return core.EmptyCell()
	}
	return tb.cells[y*tb.width+x]
}

// Row returns the flushed text content of row y, continuation cells
// omitted.
func (tb *TestBackend) Row(y int) string {
	var b strings.Builder
	for x := 0; x < tb.width; x++ {
		cell := tb.CellAt(x, y)
		if cell.IsContinuation() {
			continue
		}
		b.WriteString(cell.Content())
	}
	return b.String()
}

// InRawMode reports whether the backend is currently in raw mode.
func (tb *TestBackend) InRawMode() bool { return tb.raw }

// InAltScreen reports whether the alternate screen is active.
func (tb *TestBackend) InAltScreen() bool { return tb.altScreen }

// Closed reports whether Close was called.
func (tb *TestBackend) Closed() bool { return tb.closed }

// CursorVisible reports cursor visibility and its last shown position.
func (tb *TestBackend) CursorVisible() (bool, int, int) {
	return tb.cursorVisible, tb.cursorShownX, tb.cursorShownY
}
