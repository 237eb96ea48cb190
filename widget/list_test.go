package widget

import (
	"testing"

	"github.com/dshills/gridterm/buffer"
	"github.com/dshills/gridterm/core"
)

func TestListRender(t *testing.T) {
	buf := buffer.New(core.NewRect(5, 3))
	NewList("one", "two", "three").Render(buf.Area, buf)

	assertRows(t, buf, []string{
		"one  ",
		"two  ",
		"three",
	})
}

func TestListHighlightSymbol(t *testing.T) {
	buf := buffer.New(core.NewRect(7, 2))
	state := NewListState()
	state.Select(1)
	NewList("one", "two").WithHighlightSymbol("> ").RenderStateful(buf.Area, buf, state)

	assertRows(t, buf, []string{
		"  one  ",
		"> two  ",
	})
}

func TestListHighlightStyle(t *testing.T) {
	buf := buffer.New(core.NewRect(3, 2))
	state := NewListState()
	state.Select(0)
	style := core.Style{BG: core.ColorBlue}
	NewList("aa", "bb").WithHighlightStyle(style).RenderStateful(buf.Area, buf, state)

	if got := buf.Get(0, 0).BG; got != core.ColorBlue {
		t.Errorf("selected row BG = %v, want blue", got)
	}
	if got := buf.Get(0, 1).BG; got != core.ColorDefault {
		t.Errorf("unselected row BG = %v, want default", got)
	}
}

func TestListScrollsToSelection(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	t.Run("selection below window", func(t *testing.T) {
		buf := buffer.New(core.NewRect(1, 2))
		state := NewListState()
		state.Select(3)
		NewList(items...).RenderStateful(buf.Area, buf, state)

		if state.Offset != 2 {
			t.Errorf("Offset = %d, want 2", state.Offset)
		}
		assertRows(t, buf, []string{"c", "d"})
	})

	t.Run("selection above window", func(t *testing.T) {
		buf := buffer.New(core.NewRect(1, 2))
		state := &ListState{Offset: 3, Selected: 1}
		NewList(items...).RenderStateful(buf.Area, buf, state)

		if state.Offset != 1 {
			t.Errorf("Offset = %d, want 1", state.Offset)
		}
		assertRows(t, buf, []string{"b", "c"})
	})
}

func TestListStateNavigation(t *testing.T) {
	s := NewListState()

	s.Next(3)
	if s.Selected != 0 {
		t.Errorf("first Next: Selected = %d, want 0", s.Selected)
	}
	s.Next(3)
	s.Next(3)
	s.Next(3)
	if s.Selected != 2 {
		t.Errorf("Next clamps at %d, want 2", s.Selected)
	}
	s.Prev(3)
	s.Prev(3)
	s.Prev(3)
	if s.Selected != 0 {
		t.Errorf("Prev clamps at %d, want 0", s.Selected)
	}
	s.Select(-1)
	if s.Selected != -1 {
		t.Errorf("Select(-1): Selected = %d, want -1", s.Selected)
	}
}

func TestListEmpty(t *testing.T) {
	buf := buffer.New(core.NewRect(3, 2))
	NewList().RenderStateful(buf.Area, buf, NewListState())

	assertRows(t, buf, []string{"   ", "   "})
}
