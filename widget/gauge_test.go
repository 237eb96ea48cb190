package widget

import (
	"testing"

	"github.com/dshills/gridterm/buffer"
	"github.com/dshills/gridterm/core"
)

func TestGaugeDefaultLabel(t *testing.T) {
	buf := buffer.New(core.NewRect(10, 1))
	NewGauge().WithRatio(0.5).Render(buf.Area, buf)

	if got := rowText(buf, 0); got != "   50%    " {
		t.Errorf("row = %q", got)
	}
}

func TestGaugeCustomLabel(t *testing.T) {
	buf := buffer.New(core.NewRect(10, 1))
	NewGauge().WithPercent(30).WithLabel("3/10").Render(buf.Area, buf)

	if got := rowText(buf, 0); got != "   3/10   " {
		t.Errorf("row = %q", got)
	}
}

func TestGaugeFilledStyle(t *testing.T) {
	buf := buffer.New(core.NewRect(10, 1))
	style := core.Style{BG: core.ColorGreen}
	NewGauge().WithRatio(0.5).WithGaugeStyle(style).Render(buf.Area, buf)

	if got := buf.Get(4, 0).BG; got != core.ColorGreen {
		t.Errorf("cell 4 BG = %v, want green (filled)", got)
	}
	if got := buf.Get(5, 0).BG; got != core.ColorDefault {
		t.Errorf("cell 5 BG = %v, want default (unfilled)", got)
	}
}

func TestGaugeRatioClamped(t *testing.T) {
	buf := buffer.New(core.NewRect(6, 1))
	NewGauge().WithRatio(2.5).Render(buf.Area, buf)

	if got := rowText(buf, 0); got != " 100% " {
		t.Errorf("row = %q", got)
	}
}

func TestGaugeInsideBlock(t *testing.T) {
	buf := buffer.New(core.NewRect(8, 3))
	NewGauge().WithRatio(0).WithBlock(NewBlock().WithBorders(BorderAll)).Render(buf.Area, buf)

	assertRows(t, buf, []string{
		"┌──────┐",
		"│  0%  │",
		"└──────┘",
	})
}
