package widget

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/dshills/gridterm/buffer"
	"github.com/dshills/gridterm/core"
	"github.com/dshills/gridterm/text"
)

// Paragraph renders styled lines of text, optionally word-wrapped to the
// area width, with vertical and horizontal scrolling.
type Paragraph struct {
	lines     []text.Line
	block     Block
	hasBlock  bool
	style     core.Style
	alignment text.Alignment
	wrap      bool
	trim      bool
	scrollX   int
	scrollY   int
}

// NewParagraph creates a paragraph from plain text, one line per newline.
func NewParagraph(content string) Paragraph {
	return Paragraph{lines: text.Lines(strings.Split(content, "\n")...)}
}

// NewParagraphLines creates a paragraph from styled lines.
func NewParagraphLines(lines ...text.Line) Paragraph {
	return Paragraph{lines: lines}
}

// WithBlock wraps the paragraph in a block.
func (p Paragraph) WithBlock(b Block) Paragraph {
	p.block = b
	p.hasBlock = true
	return p
}

// WithStyle sets the base style for the whole area.
func (p Paragraph) WithStyle(style core.Style) Paragraph {
	p.style = style
	return p
}

// WithAlignment sets the default alignment for lines that do not carry
// their own.
func (p Paragraph) WithAlignment(a text.Alignment) Paragraph {
	p.alignment = a
	return p
}

// Wrapped enables word wrapping. When trim is true, leading whitespace is
// dropped from continuation rows.
func (p Paragraph) Wrapped(trim bool) Paragraph {
	p.wrap = true
	p.trim = trim
	return p
}

// WithScroll sets the vertical and horizontal scroll offsets in rows and
// columns. Negative offsets are treated as zero. Horizontal scroll only
// applies when wrapping is off.
func (p Paragraph) WithScroll(y, x int) Paragraph {
	p.scrollY = max(y, 0)
	p.scrollX = max(x, 0)
	return p
}

// Render draws the paragraph into the buffer.
func (p Paragraph) Render(area core.Rect, buf *buffer.Buffer) {
	inner := area
	if p.hasBlock {
		p.block.Render(area, buf)
		inner = p.block.Inner(area)
	}
	if inner.IsEmpty() {
		return
	}

	buf.SetStyle(inner, p.style)

	var rows []text.Line
	if p.wrap {
		for _, line := range p.lines {
			rows = append(rows, wrapLine(line, inner.Width, p.trim)...)
		}
	} else {
		rows = p.lines
	}

	y := inner.Top()
	for i := p.scrollY; i < len(rows) && y < inner.Bottom(); i++ {
		row := rows[i]
		if !p.wrap && p.scrollX > 0 {
			row = trimLeading(row, p.scrollX)
		}

		x := inner.Left()
		switch p.rowAlignment(row) {
		case text.AlignCenter:
			x += (inner.Width - row.Width()) / 2
		case text.AlignRight:
			x += inner.Width - row.Width()
		}
		if x < inner.Left() {
			x = inner.Left()
		}

		buf.SetLine(x, y, row, inner.Right()-x)
		y++
	}
}

func (p Paragraph) rowAlignment(row text.Line) text.Alignment {
	if row.Alignment != text.AlignLeft {
		return row.Alignment
	}
	return p.alignment
}

// styledCluster is one grapheme cluster tagged with its span's style,
// the unit the wrapper works in.
type styledCluster struct {
	content string
	width   int
	style   core.Style
	space   bool
}

func clusters(line text.Line) []styledCluster {
	var out []styledCluster
	for _, span := range line.Spans {
		g := uniseg.NewGraphemes(span.Content)
		for g.Next() {
			s := g.Str()
			out = append(out, styledCluster{
				content: s,
				width:   runewidth.StringWidth(s),
				style:   span.Style,
				space:   s == " ",
			})
		}
	}
	return out
}

// wrapLine greedily wraps a line into rows of at most width columns,
// breaking at the last space when one fits and hard-breaking words longer
// than a row. The row alignment is inherited from the line.
func wrapLine(line text.Line, width int, trim bool) []text.Line {
	if width <= 0 {
		return nil
	}

	cs := clusters(line)
	var rows []text.Line

	row := make([]styledCluster, 0, len(cs))
	rowWidth := 0
	lastSpace := -1

	flush := func(upto int) {
		rows = append(rows, lineFromClusters(row[:upto]).Aligned(line.Alignment))
		rest := row[upto:]
		if len(rest) > 0 && rest[0].space {
			rest = rest[1:]
		}
		if trim {
			for len(rest) > 0 && rest[0].space {
				rest = rest[1:]
			}
		}
		row = append(row[:0], rest...)
		rowWidth = 0
		for _, c := range row {
			rowWidth += c.width
		}
		lastSpace = -1
		for i, c := range row {
			if c.space {
				lastSpace = i
			}
		}
	}

	for _, c := range cs {
		if trim && len(row) == 0 && c.space {
			continue
		}
		if rowWidth+c.width > width {
			if c.space {
				flush(len(row))
				continue
			}
			if lastSpace >= 0 {
				flush(lastSpace)
			} else {
				flush(len(row))
			}
			if rowWidth+c.width > width {
				flush(len(row))
			}
		}
		row = append(row, c)
		rowWidth += c.width
		if c.space {
			lastSpace = len(row) - 1
		}
	}
	rows = append(rows, lineFromClusters(row).Aligned(line.Alignment))

	return rows
}

// trimLeading drops the first cols display columns from a line. A wide
// glyph straddling the cut is replaced by a space.
func trimLeading(line text.Line, cols int) text.Line {
	cs := clusters(line)
	i := 0
	for i < len(cs) && cols > 0 {
		cols -= cs[i].width
		i++
	}
	rest := cs[i:]
	if cols < 0 {
		pad := styledCluster{content: " ", width: 1, style: cs[i-1].style, space: true}
		rest = append([]styledCluster{pad}, rest...)
	}
	return lineFromClusters(rest).Aligned(line.Alignment)
}

// lineFromClusters rebuilds a Line, coalescing runs of equal style back
// into spans.
func lineFromClusters(cs []styledCluster) text.Line {
	var spans []text.Span
	var b strings.Builder
	var cur core.Style

	for i, c := range cs {
		if i > 0 && !c.style.Equals(cur) {
			spans = append(spans, text.StyledSpan(b.String(), cur))
			b.Reset()
		}
		cur = c.style
		b.WriteString(c.content)
	}
	if b.Len() > 0 {
		spans = append(spans, text.StyledSpan(b.String(), cur))
	}
	return text.FromSpans(spans...)
}
