package widget

import (
	"testing"

	"github.com/dshills/gridterm/buffer"
	"github.com/dshills/gridterm/core"
)

func TestTabsRender(t *testing.T) {
	buf := buffer.New(core.NewRect(14, 1))
	NewTabs("one", "two").Render(buf.Area, buf)

	assertRows(t, buf, []string{" one │ two    "})
}

func TestTabsHighlight(t *testing.T) {
	buf := buffer.New(core.NewRect(12, 1))
	style := core.Style{BG: core.ColorBlue}
	NewTabs("aa", "bb").WithSelected(1).WithHighlightStyle(style).Render(buf.Area, buf)

	// " aa │ bb    ": the selected title occupies columns 6-7.
	if got := buf.Get(6, 0).BG; got != core.ColorBlue {
		t.Errorf("selected title BG = %v, want blue", got)
	}
	if got := buf.Get(1, 0).BG; got != core.ColorDefault {
		t.Errorf("unselected title BG = %v, want default", got)
	}
}

func TestTabsCustomDivider(t *testing.T) {
	buf := buffer.New(core.NewRect(10, 1))
	NewTabs("a", "b").WithDivider("|").Render(buf.Area, buf)

	assertRows(t, buf, []string{" a | b    "})
}

func TestTabsClippedToArea(t *testing.T) {
	buf := buffer.New(core.NewRect(6, 1))
	NewTabs("long", "more", "tabs").Render(buf.Area, buf)

	assertRows(t, buf, []string{" long "})
}
