package core

import "github.com/mattn/go-runewidth"

// Cell represents a single terminal cell: one display-width grapheme plus its
// resolved visual attributes.
//
// A wide (double-width) glyph occupies two adjacent cells: the lead cell
// carries the rune with Width 2, and the following cell is a continuation
// cell with Rune 0 and Width 0. Continuation cells are managed by the buffer;
// widgets never need to emit them directly.
type Cell struct {
	// Rune is the base character to display.
	// A value of 0 indicates a continuation cell.
	Rune rune

	// Comb holds combining runes that complete the grapheme cluster.
	Comb []rune

	// Width is the display width: 0 for continuation cells, 1 for normal
	// characters, 2 for wide (CJK, emoji) characters.
	Width int

	// FG and BG are the resolved colors for this cell.
	FG Color
	BG Color

	// Attrs is the resolved attribute set for this cell.
	Attrs Attribute
}

// EmptyCell returns a blank cell with default colors and no attributes.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1}
}

// NewCell creates a cell with the given rune and default style.
func NewCell(r rune) Cell {
	return Cell{Rune: r, Width: RuneWidth(r)}
}

// NewStyledCell creates a cell with the given rune and style patch applied
// over the default style.
func NewStyledCell(r rune, style Style) Cell {
	c := NewCell(r)
	c.ApplyStyle(style)
	return c
}

// ContinuationCell returns the trailing half of a wide character, styled to
// match the given lead cell.
func ContinuationCell(lead Cell) Cell {
	return Cell{FG: lead.FG, BG: lead.BG, Attrs: lead.Attrs}
}

// IsContinuation returns true if this is the trailing half of a wide
// character.
func (c Cell) IsContinuation() bool {
	return c.Rune == 0 && c.Width == 0
}

// ApplyStyle patches the given style onto the cell's resolved attributes.
func (c *Cell) ApplyStyle(style Style) {
	if !style.FG.IsDefault() {
		c.FG = style.FG
	}
	if !style.BG.IsDefault() {
		c.BG = style.BG
	}
	c.Attrs = style.Attributes(c.Attrs)
}

// Style returns the cell's resolved attributes as a style patch.
func (c Cell) Style() Style {
	return Style{FG: c.FG, BG: c.BG, Add: c.Attrs}
}

// Reset restores the cell to the blank default.
func (c *Cell) Reset() {
	*c = EmptyCell()
}

// Equals returns true if two cells render identically.
func (c Cell) Equals(other Cell) bool {
	if c.Rune != other.Rune || c.Width != other.Width ||
		c.FG != other.FG || c.BG != other.BG || c.Attrs != other.Attrs {
		return false
	}
	if len(c.Comb) != len(other.Comb) {
		return false
	}
	for i, r := range c.Comb {
		if other.Comb[i] != r {
			return false
		}
	}
	return true
}

// Content returns the full grapheme cluster held by the cell.
func (c Cell) Content() string {
	if c.Rune == 0 {
		return ""
	}
	if len(c.Comb) == 0 {
		return string(c.Rune)
	}
	runes := make([]rune, 0, 1+len(c.Comb))
	runes = append(runes, c.Rune)
	runes = append(runes, c.Comb...)
	return string(runes)
}

// RuneWidth returns the display width of a rune: 0 for control characters
// and combining marks, 1 for normal characters, 2 for wide characters.
func RuneWidth(r rune) int {
	if r < 32 || r == 0x7F {
		return 0
	}
	return runewidth.RuneWidth(r)
}

// StringWidth returns the display width of a string.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}
