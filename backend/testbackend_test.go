package backend

import (
	"errors"
	"testing"

	"github.com/dshills/gridterm/core"
)

func TestTestBackendFlushAppliesWrites(t *testing.T) {
	tb := NewTestBackend(10, 3)

	tb.MoveCursor(2, 1)
	tb.WriteCell(core.NewCell('h'))
	tb.WriteCell(core.NewCell('i'))

	if got := tb.CellAt(2, 1).Rune; got == 'h' {
		t.Fatal("write visible before Flush")
	}
	if err := tb.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if got := tb.CellAt(2, 1).Rune; got != 'h' {
		t.Errorf("CellAt(2, 1) = %q, want 'h'", got)
	}
	if got := tb.CellAt(3, 1).Rune; got != 'i' {
		t.Errorf("CellAt(3, 1) = %q, want 'i'", got)
	}
}

func TestTestBackendFlushErrKeepsPending(t *testing.T) {
	tb := NewTestBackend(5, 1)
	tb.MoveCursor(0, 0)
	tb.WriteCell(core.NewCell('x'))

	tb.FlushErr = errors.New("boom")
	if err := tb.Flush(); err == nil {
		t.Fatal("Flush() with FlushErr set returned nil")
	}
	if err := tb.Flush(); err != nil {
		t.Fatalf("retried Flush() error = %v", err)
	}
	if got := tb.CellAt(0, 0).Rune; got != 'x' {
		t.Errorf("CellAt(0, 0) = %q after retry, want 'x'", got)
	}
}

func TestTestBackendResizeBlanksGrid(t *testing.T) {
	tb := NewTestBackend(4, 2)
	tb.MoveCursor(0, 0)
	tb.WriteCell(core.NewCell('z'))
	if err := tb.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	var gotW, gotH int
	tb.OnResize(func(w, h int) { gotW, gotH = w, h })
	tb.Resize(8, 4)

	if gotW != 8 || gotH != 4 {
		t.Errorf("resize callback got %dx%d, want 8x4", gotW, gotH)
	}
	if got := tb.CellAt(0, 0).Rune; got != ' ' {
		t.Errorf("CellAt(0, 0) after resize = %q, want blank", got)
	}
}

func TestTestBackendRow(t *testing.T) {
	tb := NewTestBackend(6, 1)
	tb.MoveCursor(0, 0)
	tb.WriteCell(core.NewCell('a'))
	lead := core.NewCell('世')
	tb.WriteCell(lead)
	tb.MoveCursor(2, 0)
	tb.WriteCell(core.ContinuationCell(lead))
	if err := tb.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	if got := tb.Row(0); got != "a世   " {
		t.Errorf("Row(0) = %q", got)
	}
}
