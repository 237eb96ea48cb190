// Package text provides the styled-text model consumed by widgets: spans of
// uniformly styled content grouped into lines.
package text

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/dshills/gridterm/core"
)

// Alignment controls horizontal placement of a line within its area.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Span is a run of text with a single style patch.
type Span struct {
	Content string
	Style   core.Style
}

// NewSpan creates an unstyled span.
func NewSpan(content string) Span {
	return Span{Content: content}
}

// StyledSpan creates a span with the given style.
func StyledSpan(content string, style core.Style) Span {
	return Span{Content: content, Style: style}
}

// Width returns the display width of the span.
func (s Span) Width() int {
	return core.StringWidth(s.Content)
}

// PatchStyle returns a copy of the span with an extra style patch applied
// over its own.
func (s Span) PatchStyle(style core.Style) Span {
	s.Style = s.Style.Patch(style)
	return s
}

// Line is a sequence of spans rendered on one row.
type Line struct {
	Spans     []Span
	Alignment Alignment
}

// NewLine creates a line from a plain string.
func NewLine(content string) Line {
	return Line{Spans: []Span{NewSpan(content)}}
}

// StyledLine creates a single-span line with the given style.
func StyledLine(content string, style core.Style) Line {
	return Line{Spans: []Span{StyledSpan(content, style)}}
}

// FromSpans creates a line from the given spans.
func FromSpans(spans ...Span) Line {
	return Line{Spans: spans}
}

// Aligned returns a copy of the line with the given alignment.
func (l Line) Aligned(a Alignment) Line {
	l.Alignment = a
	return l
}

// Width returns the total display width of the line.
func (l Line) Width() int {
	width := 0
	for _, s := range l.Spans {
		width += s.Width()
	}
	return width
}

// String returns the line's content without styling.
func (l Line) String() string {
	var b strings.Builder
	for _, s := range l.Spans {
		b.WriteString(s.Content)
	}
	return b.String()
}

// PatchStyle returns a copy of the line with an extra style patch applied
// over every span.
func (l Line) PatchStyle(style core.Style) Line {
	spans := make([]Span, len(l.Spans))
	for i, s := range l.Spans {
		spans[i] = s.PatchStyle(style)
	}
	l.Spans = spans
	return l
}

// Masked wraps a string that displays as repeated mask runes, one per
// grapheme cluster. Useful for password prompts and other sensitive input.
type Masked struct {
	content string
	mask    rune
}

// NewMasked creates a masked string using the given mask rune.
func NewMasked(content string, mask rune) Masked {
	return Masked{content: content, mask: mask}
}

// MaskRune returns the rune substituted for each cluster.
func (m Masked) MaskRune() rune {
	return m.mask
}

// Value returns the masked form of the content.
func (m Masked) Value() string {
	var b strings.Builder
	g := uniseg.NewGraphemes(m.content)
	for g.Next() {
		b.WriteRune(m.mask)
	}
	return b.String()
}

// String returns the masked form, so a Masked never leaks its content
// through printing.
func (m Masked) String() string {
	return m.Value()
}

// Line converts the masked value into an unstyled line.
func (m Masked) Line() Line {
	return NewLine(m.Value())
}

// Lines converts plain strings into unstyled lines.
func Lines(strs ...string) []Line {
	lines := make([]Line, len(strs))
	for i, s := range strs {
		lines[i] = NewLine(s)
	}
	return lines
}
