package terminal

import (
	"github.com/dshills/gridterm/buffer"
	"github.com/dshills/gridterm/core"
	"github.com/dshills/gridterm/widget"
)

// cursorRequest is a frame's request to show the hardware cursor.
type cursorRequest struct {
	x, y int
}

// Frame is one frame under construction. It is only valid inside the Draw
// closure that received it.
type Frame struct {
	buf    *buffer.Buffer
	cursor *cursorRequest
}

// Size returns the full area of the frame.
func (f *Frame) Size() core.Rect {
	return f.buf.Area
}

// Buffer exposes the frame's cell buffer for direct writes.
func (f *Frame) Buffer() *buffer.Buffer {
	return f.buf
}

// RenderWidget draws a widget into the given area of the frame.
func (f *Frame) RenderWidget(w widget.Widget, area core.Rect) {
	w.Render(area, f.buf)
}

// SetCursor asks for the hardware cursor to be shown at (x, y) after the
// frame is flushed. Without a request the cursor stays hidden.
func (f *Frame) SetCursor(x, y int) {
	f.cursor = &cursorRequest{x: x, y: y}
}

// RenderStatefulWidget draws a stateful widget into the given area of the
// frame, updating the caller-owned state.
func RenderStatefulWidget[S any](f *Frame, w widget.StatefulWidget[S], area core.Rect, state *S) {
	w.RenderStateful(area, f.buf, state)
}
