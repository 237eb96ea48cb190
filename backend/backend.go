// Package backend provides the output-channel abstraction the terminal
// renders through.
//
// The diff/render logic in the terminal package is written against the
// Backend interface only, so the identical engine can target a real OS
// terminal (TcellBackend), a host-provided virtual byte stream
// (WriterBackend) or an in-memory grid for tests (TestBackend).
//
// Backends buffer everything and emit only on Flush, at end of frame, so a
// partially written frame is never visible. A failed Flush is reported to
// the caller and must leave the backend usable for a retry.
package backend

import (
	"errors"

	"github.com/dshills/gridterm/core"
)

// ErrBackendIO reports a failure writing to the output channel. Errors
// returned from Flush wrap it so callers can match with errors.Is.
var ErrBackendIO = errors.New("backend io failure")

// Backend is the capability set the renderer needs from an output channel.
//
// Implementations are not required to be safe for concurrent use; the
// terminal serializes all access.
type Backend interface {
	// Size returns the current width and height of the output area in
	// cells.
	Size() (width, height int)

	// MoveCursor positions the output cursor (0-indexed, top-left origin).
	// Cursor moves always precede the cell content they govern.
	MoveCursor(x, y int)

	// SetStyle switches the pen style for subsequent writes.
	SetStyle(style core.Style)

	// WriteCell writes one cell at the cursor and advances it by the
	// cell's width. Continuation cells are ignored; their lead cell's
	// glyph covers both columns.
	WriteCell(cell core.Cell)

	// WriteRun writes the same cell count times.
	WriteRun(cell core.Cell, count int)

	// Flush pushes everything buffered since the last flush to the output
	// channel. On error the backend stays usable and the frame can be
	// retried.
	Flush() error

	// EnterRawMode puts the channel into raw mode (no echo, no line
	// buffering). A no-op for channels that have no mode, such as plain
	// byte streams.
	EnterRawMode() error

	// LeaveRawMode restores the channel's normal mode.
	LeaveRawMode() error

	// EnterAltScreen switches to the alternate screen, when supported.
	EnterAltScreen()

	// LeaveAltScreen returns to the primary screen.
	LeaveAltScreen()

	// ShowCursor makes the cursor visible at the given position.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// OnResize registers a callback invoked when the output area changes
	// size.
	OnResize(callback func(width, height int))

	// Close releases the channel, restoring any mode it changed.
	Close() error
}
