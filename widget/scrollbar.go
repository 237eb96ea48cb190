package widget

import (
	"github.com/dshills/gridterm/buffer"
	"github.com/dshills/gridterm/core"
)

// ScrollbarState carries a scrollbar's position across frames.
// ContentLength must be set for the scrollbar to render at all.
type ScrollbarState struct {
	// ContentLength is the total number of scrollable positions.
	ContentLength int
	// Position is the current position, in [0, ContentLength).
	Position int
}

// NewScrollbarState creates a state for content of the given length.
func NewScrollbarState(contentLength int) *ScrollbarState {
	return &ScrollbarState{ContentLength: contentLength}
}

// Next advances the position, clamped to the end of the content.
func (s *ScrollbarState) Next() {
	if s.Position < s.ContentLength-1 {
		s.Position++
	}
}

// Prev moves the position back, stopping at zero.
func (s *ScrollbarState) Prev() {
	if s.Position > 0 {
		s.Position--
	}
}

// First jumps to the start of the content.
func (s *ScrollbarState) First() { s.Position = 0 }

// Last jumps to the end of the content.
func (s *ScrollbarState) Last() {
	if s.ContentLength > 0 {
		s.Position = s.ContentLength - 1
	}
}

// ScrollbarOrientation places the scrollbar on one edge of its area.
type ScrollbarOrientation int

const (
	// ScrollbarVerticalRight draws along the right edge. The default.
	ScrollbarVerticalRight ScrollbarOrientation = iota
	// ScrollbarVerticalLeft draws along the left edge.
	ScrollbarVerticalLeft
	// ScrollbarHorizontalBottom draws along the bottom edge.
	ScrollbarHorizontalBottom
	// ScrollbarHorizontalTop draws along the top edge.
	ScrollbarHorizontalTop
)

func (o ScrollbarOrientation) vertical() bool {
	return o == ScrollbarVerticalRight || o == ScrollbarVerticalLeft
}

// Scrollbar renders a track with a proportional thumb marking the position
// within scrollable content.
type Scrollbar struct {
	orientation ScrollbarOrientation
	thumb       rune
	track       rune
	style       core.Style
	thumbStyle  core.Style
}

// NewScrollbar creates a vertical scrollbar on the right edge.
func NewScrollbar() Scrollbar {
	return Scrollbar{
		thumb: '█',
		track: '║',
	}
}

// WithOrientation places the scrollbar on a different edge. Horizontal
// orientations swap the default glyphs for their horizontal forms.
func (sb Scrollbar) WithOrientation(o ScrollbarOrientation) Scrollbar {
	sb.orientation = o
	if !o.vertical() && sb.track == '║' {
		sb.track = '═'
	}
	return sb
}

// WithSymbols sets the thumb and track glyphs.
func (sb Scrollbar) WithSymbols(thumb, track rune) Scrollbar {
	sb.thumb = thumb
	sb.track = track
	return sb
}

// WithStyle sets the track style.
func (sb Scrollbar) WithStyle(style core.Style) Scrollbar {
	sb.style = style
	return sb
}

// WithThumbStyle sets the thumb style.
func (sb Scrollbar) WithThumbStyle(style core.Style) Scrollbar {
	sb.thumbStyle = style
	return sb
}

// RenderStateful draws the scrollbar. Nothing is drawn for empty content.
func (sb Scrollbar) RenderStateful(area core.Rect, buf *buffer.Buffer, state *ScrollbarState) {
	if area.IsEmpty() || state.ContentLength <= 0 {
		return
	}

	length := area.Height
	if !sb.orientation.vertical() {
		length = area.Width
	}
	if length <= 0 {
		return
	}

	thumbLen := length * length / max(state.ContentLength, length)
	if thumbLen < 1 {
		thumbLen = 1
	}
	maxStart := length - thumbLen
	var thumbStart int
	if state.ContentLength > 1 {
		thumbStart = maxStart * state.Position / (state.ContentLength - 1)
	}

	for i := 0; i < length; i++ {
		glyph := sb.track
		style := sb.style
		if i >= thumbStart && i < thumbStart+thumbLen {
			glyph = sb.thumb
			style = sb.thumbStyle
		}
		x, y := sb.cellAt(area, i)
		buf.Set(x, y, core.NewStyledCell(glyph, style))
	}
}

func (sb Scrollbar) cellAt(area core.Rect, i int) (int, int) {
	switch sb.orientation {
	case ScrollbarVerticalLeft:
		return area.Left(), area.Top() + i
	case ScrollbarHorizontalBottom:
		return area.Left() + i, area.Bottom() - 1
	case ScrollbarHorizontalTop:
		return area.Left() + i, area.Top()
	default:
		return area.Right() - 1, area.Top() + i
	}
}
