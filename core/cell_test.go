package core

import "testing"

func TestNewCellWidth(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want int
	}{
		{"ascii", 'A', 1},
		{"space", ' ', 1},
		{"cjk wide", '称', 2},
		{"hangul wide", '한', 2},
		{"control", '\x01', 0},
		{"delete", '\x7F', 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewCell(tt.r).Width; got != tt.want {
				t.Errorf("width of %q: expected %d, got %d", tt.r, tt.want, got)
			}
		})
	}
}

func TestContinuationCell(t *testing.T) {
	lead := NewStyledCell('称', NewStyle(ColorRed).Bold())
	cont := ContinuationCell(lead)

	if !cont.IsContinuation() {
		t.Error("continuation cell should report IsContinuation")
	}
	if cont.FG != lead.FG || cont.Attrs != lead.Attrs {
		t.Error("continuation cell should inherit the lead cell's style")
	}
	if lead.IsContinuation() {
		t.Error("lead cell must not report IsContinuation")
	}
}

func TestCellApplyStyle(t *testing.T) {
	c := EmptyCell()
	c.ApplyStyle(NewStyle(ColorRed).Bold())
	c.ApplyStyle(Style{}.WithBackground(ColorBlue).Without(AttrBold).Underline())

	if c.FG != ColorRed {
		t.Errorf("fg should survive a patch without fg, got %v", c.FG)
	}
	if c.BG != ColorBlue {
		t.Errorf("expected bg blue, got %v", c.BG)
	}
	if c.Attrs.Has(AttrBold) {
		t.Error("bold should have been removed")
	}
	if !c.Attrs.Has(AttrUnderline) {
		t.Error("underline should have been added")
	}
}

func TestCellEquals(t *testing.T) {
	a := NewStyledCell('x', NewStyle(ColorRed))
	b := NewStyledCell('x', NewStyle(ColorRed))
	if !a.Equals(b) {
		t.Error("identical cells should be equal")
	}

	b.Comb = []rune{0x0301}
	if a.Equals(b) {
		t.Error("cells with different combining runes should differ")
	}
}

func TestCellContent(t *testing.T) {
	c := NewCell('e')
	c.Comb = []rune{0x0301}
	if got := c.Content(); got != "é" {
		t.Errorf("expected combined grapheme, got %q", got)
	}

	if got := ContinuationCell(EmptyCell()).Content(); got != "" {
		t.Errorf("continuation cell content should be empty, got %q", got)
	}
}

func TestCellReset(t *testing.T) {
	c := NewStyledCell('x', NewStyle(ColorRed).Bold())
	c.Reset()
	if !c.Equals(EmptyCell()) {
		t.Errorf("reset should restore the blank default, got %+v", c)
	}
}
