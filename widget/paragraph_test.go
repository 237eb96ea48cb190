package widget

import (
	"testing"

	"github.com/dshills/gridterm/buffer"
	"github.com/dshills/gridterm/core"
	"github.com/dshills/gridterm/text"
)

func TestParagraphPlain(t *testing.T) {
	buf := buffer.New(core.NewRect(10, 2))
	NewParagraph("hello\nworld").Render(buf.Area, buf)

	assertRows(t, buf, []string{
		"hello     ",
		"world     ",
	})
}

func TestParagraphTruncatesWithoutWrap(t *testing.T) {
	buf := buffer.New(core.NewRect(5, 1))
	NewParagraph("hello world").Render(buf.Area, buf)

	assertRows(t, buf, []string{"hello"})
}

func TestParagraphWrap(t *testing.T) {
	tests := []struct {
		name    string
		content string
		width   int
		want    []string
	}{
		{
			name:    "breaks at space",
			content: "hello world",
			width:   6,
			want:    []string{"hello ", "world "},
		},
		{
			name:    "hard breaks long words",
			content: "abcdefgh",
			width:   4,
			want:    []string{"abcd", "efgh"},
		},
		{
			name:    "exact fit",
			content: "ab cd",
			width:   5,
			want:    []string{"ab cd"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := buffer.New(core.NewRect(tt.width, len(tt.want)))
			NewParagraph(tt.content).Wrapped(true).Render(buf.Area, buf)
			for i, w := range tt.want {
				got := rowText(buf, i)
				want := w + blanks(tt.width-core.StringWidth(w))
				if got != want {
					t.Errorf("row %d = %q, want %q", i, got, want)
				}
			}
		})
	}
}

func blanks(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

func TestParagraphAlignment(t *testing.T) {
	tests := []struct {
		align text.Alignment
		want  string
	}{
		{text.AlignLeft, "hi        "},
		{text.AlignCenter, "    hi    "},
		{text.AlignRight, "        hi"},
	}
	for _, tt := range tests {
		buf := buffer.New(core.NewRect(10, 1))
		NewParagraph("hi").WithAlignment(tt.align).Render(buf.Area, buf)
		if got := rowText(buf, 0); got != tt.want {
			t.Errorf("alignment %v: row = %q, want %q", tt.align, got, tt.want)
		}
	}
}

func TestParagraphVerticalScroll(t *testing.T) {
	buf := buffer.New(core.NewRect(3, 2))
	NewParagraph("one\ntwo\nsix").WithScroll(1, 0).Render(buf.Area, buf)

	assertRows(t, buf, []string{"two", "six"})
}

func TestParagraphHorizontalScroll(t *testing.T) {
	buf := buffer.New(core.NewRect(5, 1))
	NewParagraph("abcdefgh").WithScroll(0, 2).Render(buf.Area, buf)

	assertRows(t, buf, []string{"cdefg"})
}

func TestParagraphNegativeScrollTreatedAsZero(t *testing.T) {
	buf := buffer.New(core.NewRect(5, 2))
	NewParagraph("one\ntwo").WithScroll(-1, -3).Render(buf.Area, buf)

	assertRows(t, buf, []string{
		"one  ",
		"two  ",
	})
}

func TestParagraphInsideBlock(t *testing.T) {
	buf := buffer.New(core.NewRect(7, 3))
	NewParagraph("hi").WithBlock(NewBlock().WithBorders(BorderAll)).Render(buf.Area, buf)

	assertRows(t, buf, []string{
		"┌─────┐",
		"│hi   │",
		"└─────┘",
	})
}

func TestParagraphKeepsSpanStyles(t *testing.T) {
	line := text.FromSpans(
		text.NewSpan("ab"),
		text.StyledSpan("cd", core.Style{FG: core.ColorRed}),
	)
	buf := buffer.New(core.NewRect(4, 1))
	NewParagraphLines(line).Render(buf.Area, buf)

	if got := buf.Get(1, 0).FG; got != core.ColorDefault {
		t.Errorf("cell 1 FG = %v, want default", got)
	}
	if got := buf.Get(2, 0).FG; got != core.ColorRed {
		t.Errorf("cell 2 FG = %v, want red", got)
	}
}

func TestWrapLinePreservesStylesAcrossRows(t *testing.T) {
	line := text.FromSpans(
		text.NewSpan("aa "),
		text.StyledSpan("bb", core.Style{FG: core.ColorRed}),
	)
	rows := wrapLine(line, 3, true)
	if len(rows) != 2 {
		t.Fatalf("wrapLine produced %d rows, want 2", len(rows))
	}
	if got := rows[1].String(); got != "bb" {
		t.Errorf("second row = %q, want %q", got, "bb")
	}
	if got := rows[1].Spans[0].Style.FG; got != core.ColorRed {
		t.Errorf("second row FG = %v, want red", got)
	}
}
