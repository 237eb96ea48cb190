package widget

import (
	"github.com/dshills/gridterm/buffer"
	"github.com/dshills/gridterm/core"
	"github.com/dshills/gridterm/text"
)

// ListState carries a list's scroll offset and selection across frames.
// The zero value has no selection.
type ListState struct {
	// Offset is the index of the first visible item.
	Offset int
	// Selected is the index of the selected item, or -1 for none.
	Selected int
}

// NewListState creates a state with no selection.
func NewListState() *ListState {
	return &ListState{Selected: -1}
}

// Select moves the selection to index, or clears it when index is negative.
func (s *ListState) Select(index int) {
	if index < 0 {
		s.Selected = -1
		return
	}
	s.Selected = index
}

// Next moves the selection down, clamped to the last of n items.
func (s *ListState) Next(n int) {
	if n == 0 {
		return
	}
	if s.Selected < 0 {
		s.Selected = 0
		return
	}
	if s.Selected < n-1 {
		s.Selected++
	}
}

// Prev moves the selection up, stopping at the first item.
func (s *ListState) Prev(n int) {
	if n == 0 {
		return
	}
	if s.Selected < 0 {
		s.Selected = 0
		return
	}
	if s.Selected > 0 {
		s.Selected--
	}
}

// List renders items one per row, scrolling to keep the selection visible
// and highlighting it.
type List struct {
	items           []text.Line
	block           Block
	hasBlock        bool
	style           core.Style
	highlightStyle  core.Style
	highlightSymbol string
}

// NewList creates a list from plain item labels.
func NewList(items ...string) List {
	return List{
		items:          text.Lines(items...),
		highlightStyle: core.Style{}.Reverse(),
	}
}

// NewListLines creates a list from styled lines.
func NewListLines(items ...text.Line) List {
	return List{
		items:          items,
		highlightStyle: core.Style{}.Reverse(),
	}
}

// Len returns the number of items.
func (l List) Len() int { return len(l.items) }

// WithBlock wraps the list in a block.
func (l List) WithBlock(b Block) List {
	l.block = b
	l.hasBlock = true
	return l
}

// WithStyle sets the base style for the whole area.
func (l List) WithStyle(style core.Style) List {
	l.style = style
	return l
}

// WithHighlightStyle sets the style patched onto the selected row.
func (l List) WithHighlightStyle(style core.Style) List {
	l.highlightStyle = style
	return l
}

// WithHighlightSymbol sets a prefix drawn in front of the selected item.
// Unselected items are indented by the same width to keep columns aligned.
func (l List) WithHighlightSymbol(symbol string) List {
	l.highlightSymbol = symbol
	return l
}

// Render draws the list without selection state.
func (l List) Render(area core.Rect, buf *buffer.Buffer) {
	l.RenderStateful(area, buf, &ListState{Selected: -1})
}

// RenderStateful draws the list, adjusting state.Offset so the selected
// item stays visible.
func (l List) RenderStateful(area core.Rect, buf *buffer.Buffer, state *ListState) {
	inner := area
	if l.hasBlock {
		l.block.Render(area, buf)
		inner = l.block.Inner(area)
	}
	if inner.IsEmpty() || len(l.items) == 0 {
		return
	}

	buf.SetStyle(inner, l.style)

	visible := inner.Height
	if state.Offset > len(l.items)-1 {
		state.Offset = len(l.items) - 1
	}
	if state.Offset < 0 {
		state.Offset = 0
	}
	if state.Selected >= 0 {
		if state.Selected < state.Offset {
			state.Offset = state.Selected
		}
		if state.Selected >= state.Offset+visible {
			state.Offset = state.Selected - visible + 1
		}
	}

	symbolWidth := core.StringWidth(l.highlightSymbol)

	y := inner.Top()
	for i := state.Offset; i < len(l.items) && y < inner.Bottom(); i++ {
		x := inner.Left()
		selected := i == state.Selected
		if symbolWidth > 0 {
			if selected {
				x = buf.SetStringN(x, y, l.highlightSymbol, inner.Right()-x, core.Style{})
			} else {
				x += symbolWidth
			}
		}
		buf.SetLine(x, y, l.items[i], inner.Right()-x)
		if selected {
			buf.SetStyle(core.RectAt(inner.Left(), y, inner.Width, 1), l.highlightStyle)
		}
		y++
	}
}
