package text

import (
	"testing"

	"github.com/dshills/gridterm/core"
)

func TestSpanWidth(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"ascii", "hello", 5},
		{"empty", "", 0},
		{"wide", "称号", 4},
		{"mixed", "a称b", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewSpan(tt.content).Width(); got != tt.want {
				t.Errorf("expected width %d, got %d", tt.want, got)
			}
		})
	}
}

func TestLineWidthAndString(t *testing.T) {
	l := FromSpans(NewSpan("ab"), StyledSpan("cd", core.NewStyle(core.ColorRed)))

	if got := l.Width(); got != 4 {
		t.Errorf("expected width 4, got %d", got)
	}
	if got := l.String(); got != "abcd" {
		t.Errorf("expected \"abcd\", got %q", got)
	}
}

func TestLinePatchStyle(t *testing.T) {
	l := FromSpans(StyledSpan("ab", core.NewStyle(core.ColorRed)), NewSpan("cd"))

	patched := l.PatchStyle(core.Style{}.Bold())

	for i, s := range patched.Spans {
		if !s.Style.Add.Has(core.AttrBold) {
			t.Errorf("span %d should be bold after patch", i)
		}
	}
	if patched.Spans[0].Style.FG != core.ColorRed {
		t.Error("patch must not clobber an existing span color")
	}

	// The original line is unchanged (value semantics).
	if l.Spans[1].Style.Add.Has(core.AttrBold) {
		t.Error("PatchStyle must not mutate the receiver")
	}
}

func TestLinesHelper(t *testing.T) {
	lines := Lines("a", "b")
	if len(lines) != 2 || lines[0].String() != "a" || lines[1].String() != "b" {
		t.Errorf("unexpected lines: %+v", lines)
	}
}

func TestMaskedValue(t *testing.T) {
	tests := []struct {
		name    string
		content string
		mask    rune
		want    string
	}{
		{"ascii", "12345", 'x', "xxxxx"},
		{"empty", "", '*', ""},
		{"wide", "称号", '*', "**"},
		{"combining mark masks as one", "éa", '*', "**"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMasked(tt.content, tt.mask)
			if got := m.Value(); got != tt.want {
				t.Errorf("Value() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMaskedNeverPrintsContent(t *testing.T) {
	m := NewMasked("hunter2", '*')

	if got := m.String(); got != "*******" {
		t.Errorf("String() = %q, want masked form", got)
	}
	if got := m.Line().String(); got != "*******" {
		t.Errorf("Line() content = %q, want masked form", got)
	}
	if m.MaskRune() != '*' {
		t.Errorf("MaskRune() = %q, want '*'", m.MaskRune())
	}
}
