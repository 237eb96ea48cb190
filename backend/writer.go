package backend

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/dshills/gridterm/core"
)

// DefaultWidth and DefaultHeight are used when the output is not a real
// terminal and the host has not reported a size.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// WriterBackend renders through ANSI escape sequences to any io.Writer.
//
// When the writer is a real terminal (an *os.File that is a tty) it uses
// golang.org/x/term for raw mode and size queries. For anything else, such
// as a host-provided virtual byte stream, raw mode is a no-op and the size
// comes from SetSize.
//
// Output is accumulated in an internal buffer and written in a single Write
// on Flush, so the channel never sees a torn frame.
type WriterBackend struct {
	w    io.Writer
	file *os.File

	buf      bytes.Buffer
	pen      core.Style
	penValid bool

	width    int
	height   int
	rawState *term.State
	onResize func(width, height int)
}

// NewWriterBackend creates an ANSI backend writing to w.
func NewWriterBackend(w io.Writer) *WriterBackend {
	wb := &WriterBackend{
		w:      w,
		width:  DefaultWidth,
		height: DefaultHeight,
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		wb.file = f
	}
	return wb
}

// SetSize records the output area size for non-terminal writers and
// notifies the resize callback. On a real terminal the reported size always
// comes from the tty and SetSize only fires the callback.
func (wb *WriterBackend) SetSize(width, height int) {
	wb.width = width
	wb.height = height
	if wb.onResize != nil {
		w, h := wb.Size()
		wb.onResize(w, h)
	}
}

// Size returns the output area size in cells.
func (wb *WriterBackend) Size() (int, int) {
	if wb.file != nil {
		if w, h, err := term.GetSize(int(wb.file.Fd())); err == nil {
			return w, h
		}
	}
	return wb.width, wb.height
}

// MoveCursor buffers a cursor move to the 0-indexed position.
func (wb *WriterBackend) MoveCursor(x, y int) {
	wb.buf.WriteString(moveTo(x, y))
}

// SetStyle buffers a pen change. Repeated calls with the current pen emit
// nothing.
func (wb *WriterBackend) SetStyle(style core.Style) {
	if wb.penValid && style.Equals(wb.pen) {
		return
	}
	wb.buf.WriteString(sgr(style))
	wb.pen = style
	wb.penValid = true
}

// WriteCell buffers one cell's glyph in the cell's style. Continuation
// cells are skipped; the lead cell's glyph already covers their column.
func (wb *WriterBackend) WriteCell(cell core.Cell) {
	if cell.IsContinuation() {
		return
	}
	wb.SetStyle(cell.Style())
	wb.buf.WriteString(cell.Content())
}

// WriteRun buffers the same cell count times.
func (wb *WriterBackend) WriteRun(cell core.Cell, count int) {
	if count <= 0 || cell.IsContinuation() {
		return
	}
	wb.SetStyle(cell.Style())
	wb.buf.WriteString(strings.Repeat(cell.Content(), count))
}

// Flush writes everything buffered since the last flush. The buffer is
// drained regardless of the outcome; on error the caller re-renders the
// frame, which rebuilds the output from scratch.
func (wb *WriterBackend) Flush() error {
	defer wb.buf.Reset()
	if _, err := wb.w.Write(wb.buf.Bytes()); err != nil {
		wb.penValid = false
		return fmt.Errorf("%w: %v", ErrBackendIO, err)
	}
	return nil
}

// EnterRawMode puts the tty into raw mode. A no-op for non-terminal
// writers.
func (wb *WriterBackend) EnterRawMode() error {
	if wb.file == nil || wb.rawState != nil {
		return nil
	}
	state, err := term.MakeRaw(int(wb.file.Fd()))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBackendIO, err)
	}
	wb.rawState = state
	return nil
}

// LeaveRawMode restores the tty mode saved by EnterRawMode.
func (wb *WriterBackend) LeaveRawMode() error {
	if wb.file == nil || wb.rawState == nil {
		return nil
	}
	err := term.Restore(int(wb.file.Fd()), wb.rawState)
	wb.rawState = nil
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBackendIO, err)
	}
	return nil
}

// EnterAltScreen buffers the switch to the alternate screen and clears it.
func (wb *WriterBackend) EnterAltScreen() {
	wb.buf.WriteString(seqEnterAlt)
	wb.buf.WriteString(seqClear)
	wb.penValid = false
}

// LeaveAltScreen buffers the return to the primary screen.
func (wb *WriterBackend) LeaveAltScreen() {
	wb.buf.WriteString(seqReset)
	wb.buf.WriteString(seqLeaveAlt)
	wb.penValid = false
}

// ShowCursor buffers a cursor move followed by making it visible.
func (wb *WriterBackend) ShowCursor(x, y int) {
	wb.buf.WriteString(moveTo(x, y))
	wb.buf.WriteString(seqShowCursor)
}

// HideCursor buffers hiding the cursor.
func (wb *WriterBackend) HideCursor() {
	wb.buf.WriteString(seqHideCursor)
}

// OnResize registers the resize callback fired by SetSize.
func (wb *WriterBackend) OnResize(callback func(width, height int)) {
	wb.onResize = callback
}

// Close restores the tty mode and flushes any remaining output.
func (wb *WriterBackend) Close() error {
	if err := wb.Flush(); err != nil {
		wb.LeaveRawMode() //nolint:errcheck // best effort on teardown
		return err
	}
	return wb.LeaveRawMode()
}
