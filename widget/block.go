package widget

import (
	"github.com/dshills/gridterm/buffer"
	"github.com/dshills/gridterm/core"
	"github.com/dshills/gridterm/text"
)

// Borders selects which sides of a Block are drawn.
type Borders uint8

// Border side flags.
const (
	BorderNone   Borders = 0
	BorderTop    Borders = 1 << iota
	BorderRight          // Right side
	BorderBottom         // Bottom side
	BorderLeft           // Left side

	BorderAll = BorderTop | BorderRight | BorderBottom | BorderLeft
)

// Has reports whether all sides in b are set.
func (b Borders) Has(side Borders) bool {
	return b&side == side
}

// BorderType selects the glyph set used to draw borders.
type BorderType int

const (
	// BorderPlain draws single thin lines. This is the default.
	BorderPlain BorderType = iota
	// BorderRounded draws thin lines with rounded corners.
	BorderRounded
	// BorderDouble draws doubled lines.
	BorderDouble
	// BorderThick draws heavy lines.
	BorderThick
)

// borderSet holds the glyphs for one border type.
type borderSet struct {
	topLeft     rune
	topRight    rune
	bottomLeft  rune
	bottomRight rune
	vertical    rune
	horizontal  rune
}

var borderSets = map[BorderType]borderSet{
	BorderPlain:   {'┌', '┐', '└', '┘', '│', '─'},
	BorderRounded: {'╭', '╮', '╰', '╯', '│', '─'},
	BorderDouble:  {'╔', '╗', '╚', '╝', '║', '═'},
	BorderThick:   {'┏', '┓', '┗', '┛', '┃', '━'},
}

// Padding is extra blank space between a Block's border and its inner area.
type Padding struct {
	Left   int
	Right  int
	Top    int
	Bottom int
}

// UniformPadding pads all four sides equally.
func UniformPadding(n int) Padding {
	return Padding{Left: n, Right: n, Top: n, Bottom: n}
}

// Block is a box with optional borders, a title and padding. Other widgets
// embed a Block and render their content into its Inner area.
type Block struct {
	title       text.Line
	borders     Borders
	borderType  BorderType
	borderStyle core.Style
	style       core.Style
	padding     Padding
}

// NewBlock creates an empty block with no borders.
func NewBlock() Block {
	return Block{}
}

// WithTitle sets the title rendered in the top border.
func (b Block) WithTitle(title string) Block {
	b.title = text.NewLine(title)
	return b
}

// WithTitleLine sets a styled title.
func (b Block) WithTitleLine(title text.Line) Block {
	b.title = title
	return b
}

// WithBorders selects which sides are drawn.
func (b Block) WithBorders(borders Borders) Block {
	b.borders = borders
	return b
}

// WithBorderType selects the border glyph set.
func (b Block) WithBorderType(bt BorderType) Block {
	b.borderType = bt
	return b
}

// WithBorderStyle sets the style of the border glyphs.
func (b Block) WithBorderStyle(style core.Style) Block {
	b.borderStyle = style
	return b
}

// WithStyle sets the base style applied to the whole block area.
func (b Block) WithStyle(style core.Style) Block {
	b.style = style
	return b
}

// WithPadding sets the inner padding.
func (b Block) WithPadding(p Padding) Block {
	b.padding = p
	return b
}

// Inner returns the area left for content after borders and padding.
func (b Block) Inner(area core.Rect) core.Rect {
	x := area.X
	y := area.Y
	w := area.Width
	h := area.Height

	if b.borders.Has(BorderLeft) {
		x++
		w--
	}
	if b.borders.Has(BorderRight) {
		w--
	}
	if b.borders.Has(BorderTop) {
		y++
		h--
	}
	if b.borders.Has(BorderBottom) {
		h--
	}

	x += b.padding.Left
	y += b.padding.Top
	w -= b.padding.Left + b.padding.Right
	h -= b.padding.Top + b.padding.Bottom

	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return core.RectAt(x, y, w, h)
}

// Render draws the block into the buffer.
func (b Block) Render(area core.Rect, buf *buffer.Buffer) {
	if area.IsEmpty() {
		return
	}

	buf.SetStyle(area, b.style)

	set := borderSets[b.borderType]
	left := area.Left()
	right := area.Right() - 1
	top := area.Top()
	bottom := area.Bottom() - 1

	if b.borders.Has(BorderTop) {
		for x := left; x <= right; x++ {
			buf.Set(x, top, core.NewStyledCell(set.horizontal, b.borderStyle))
		}
	}
	if b.borders.Has(BorderBottom) {
		for x := left; x <= right; x++ {
			buf.Set(x, bottom, core.NewStyledCell(set.horizontal, b.borderStyle))
		}
	}
	if b.borders.Has(BorderLeft) {
		for y := top; y <= bottom; y++ {
			buf.Set(left, y, core.NewStyledCell(set.vertical, b.borderStyle))
		}
	}
	if b.borders.Has(BorderRight) {
		for y := top; y <= bottom; y++ {
			buf.Set(right, y, core.NewStyledCell(set.vertical, b.borderStyle))
		}
	}

	if b.borders.Has(BorderTop | BorderLeft) {
		buf.Set(left, top, core.NewStyledCell(set.topLeft, b.borderStyle))
	}
	if b.borders.Has(BorderTop | BorderRight) {
		buf.Set(right, top, core.NewStyledCell(set.topRight, b.borderStyle))
	}
	if b.borders.Has(BorderBottom | BorderLeft) {
		buf.Set(left, bottom, core.NewStyledCell(set.bottomLeft, b.borderStyle))
	}
	if b.borders.Has(BorderBottom | BorderRight) {
		buf.Set(right, bottom, core.NewStyledCell(set.bottomRight, b.borderStyle))
	}

	if len(b.title.Spans) > 0 && b.borders.Has(BorderTop) && area.Width > 2 {
		buf.SetLine(left+1, top, b.title, area.Width-2)
	}
}
