package widget

import (
	"github.com/dshills/gridterm/buffer"
	"github.com/dshills/gridterm/core"
)

// Clear resets an area to blank cells in the default style. Render it
// before a widget that overlaps earlier content, such as a popup.
type Clear struct{}

// Render blanks the area.
func (Clear) Render(area core.Rect, buf *buffer.Buffer) {
	buf.Fill(area, core.EmptyCell())
}
