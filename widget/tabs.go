package widget

import (
	"github.com/dshills/gridterm/buffer"
	"github.com/dshills/gridterm/core"
	"github.com/dshills/gridterm/text"
)

// Tabs renders tab titles on one row, separated by a divider, with the
// selected title highlighted.
type Tabs struct {
	titles         []text.Line
	block          Block
	hasBlock       bool
	selected       int
	divider        string
	style          core.Style
	highlightStyle core.Style
}

// NewTabs creates a tab bar from plain titles.
func NewTabs(titles ...string) Tabs {
	return Tabs{
		titles:         text.Lines(titles...),
		divider:        "│",
		highlightStyle: core.Style{}.Reverse(),
	}
}

// WithBlock wraps the tab bar in a block.
func (t Tabs) WithBlock(b Block) Tabs {
	t.block = b
	t.hasBlock = true
	return t
}

// WithSelected sets the index of the highlighted tab.
func (t Tabs) WithSelected(selected int) Tabs {
	t.selected = selected
	return t
}

// WithDivider sets the separator drawn between titles.
func (t Tabs) WithDivider(divider string) Tabs {
	t.divider = divider
	return t
}

// WithStyle sets the base style for the whole area.
func (t Tabs) WithStyle(style core.Style) Tabs {
	t.style = style
	return t
}

// WithHighlightStyle sets the style patched onto the selected title.
func (t Tabs) WithHighlightStyle(style core.Style) Tabs {
	t.highlightStyle = style
	return t
}

// Render draws the tab bar into the buffer.
func (t Tabs) Render(area core.Rect, buf *buffer.Buffer) {
	inner := area
	if t.hasBlock {
		t.block.Render(area, buf)
		inner = t.block.Inner(area)
	}
	if inner.IsEmpty() {
		return
	}

	buf.SetStyle(inner, t.style)

	x := inner.Left()
	y := inner.Top()
	for i, title := range t.titles {
		if x >= inner.Right() {
			break
		}
		x = buf.SetStringN(x, y, " ", inner.Right()-x, core.Style{})

		start := x
		x = buf.SetLine(x, y, title, inner.Right()-x)
		if i == t.selected {
			buf.SetStyle(core.RectAt(start, y, x-start, 1), t.highlightStyle)
		}

		x = buf.SetStringN(x, y, " ", inner.Right()-x, core.Style{})
		if i < len(t.titles)-1 {
			x = buf.SetStringN(x, y, t.divider, inner.Right()-x, core.Style{})
		}
	}
}
