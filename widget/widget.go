// Package widget provides an immediate-mode widget set rendering into cell
// buffers.
//
// Widgets are cheap value types, configured with chained With methods and
// rebuilt every frame. They hold no state between frames; the few widgets
// that need continuity (List, Scrollbar) take a caller-owned state struct.
package widget

import (
	"github.com/dshills/gridterm/buffer"
	"github.com/dshills/gridterm/core"
)

// Widget renders itself into the given area of the buffer. Writes outside
// the area are clipped by the buffer, but well-behaved widgets stay inside.
type Widget interface {
	Render(area core.Rect, buf *buffer.Buffer)
}

// StatefulWidget renders with caller-owned state that persists across
// frames, such as a list's scroll offset and selection.
type StatefulWidget[S any] interface {
	RenderStateful(area core.Rect, buf *buffer.Buffer, state *S)
}
