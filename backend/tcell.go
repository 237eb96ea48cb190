package backend

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gridterm/core"
)

// TcellBackend renders through a tcell.Screen.
//
// tcell addresses cells by coordinate rather than by cursor, so the backend
// tracks the cursor position itself and advances it as cells are written.
// Raw mode, the alternate screen and damage tracking are all handled by
// tcell; EnterAltScreen and LeaveAltScreen are no-ops here.
type TcellBackend struct {
	screen tcell.Screen

	mu            sync.Mutex
	cursorX       int
	cursorY       int
	pen           core.Style
	running       bool
	resizeHandler func(width, height int)
}

// NewTcellBackend creates a backend on a fresh tcell screen.
func NewTcellBackend() (*TcellBackend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendIO, err)
	}
	return &TcellBackend{screen: screen}, nil
}

// NewTcellBackendFor wraps an existing screen, such as a SimulationScreen.
func NewTcellBackendFor(screen tcell.Screen) *TcellBackend {
	return &TcellBackend{screen: screen}
}

func (t *TcellBackend) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *TcellBackend) MoveCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cursorX = x
	t.cursorY = y
}

func (t *TcellBackend) SetStyle(style core.Style) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.pen = style
}

func (t *TcellBackend) WriteCell(cell core.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.writeCell(cell)
}

func (t *TcellBackend) WriteRun(cell core.Cell, count int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := 0; i < count; i++ {
		t.writeCell(cell)
	}
}

// writeCell places one cell at the tracked cursor. Continuation cells
// advance the cursor without touching the screen; tcell manages trailing
// columns of wide runes itself.
func (t *TcellBackend) writeCell(cell core.Cell) {
	if cell.IsContinuation() {
		t.cursorX++
		return
	}
	t.screen.SetContent(t.cursorX, t.cursorY, cell.Rune, cell.Comb, convertStyle(cell.Style()))
	if cell.Width > 1 {
		t.cursorX += cell.Width
	} else {
		t.cursorX++
	}
}

func (t *TcellBackend) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
	return nil
}

// EnterRawMode initializes the screen on first use and resumes it after a
// suspend.
func (t *TcellBackend) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		if err := t.screen.Resume(); err != nil {
			return fmt.Errorf("%w: %v", ErrBackendIO, err)
		}
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("%w: %v", ErrBackendIO, err)
	}
	t.running = true
	return nil
}

func (t *TcellBackend) LeaveRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return nil
	}
	if err := t.screen.Suspend(); err != nil {
		return fmt.Errorf("%w: %v", ErrBackendIO, err)
	}
	return nil
}

// EnterAltScreen is a no-op; tcell switches screens during Init.
func (t *TcellBackend) EnterAltScreen() {}

// LeaveAltScreen is a no-op; tcell restores the screen during Fini.
func (t *TcellBackend) LeaveAltScreen() {}

func (t *TcellBackend) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

func (t *TcellBackend) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

func (t *TcellBackend) OnResize(callback func(width, height int)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.resizeHandler = callback
}

// PollEvent returns the next tcell event, firing the resize callback for
// resize events. Hosts that read input call this in their event loop and
// handle the returned event themselves.
func (t *TcellBackend) PollEvent() tcell.Event {
	ev := t.screen.PollEvent()
	if resize, ok := ev.(*tcell.EventResize); ok {
		t.mu.Lock()
		handler := t.resizeHandler
		t.mu.Unlock()
		if handler != nil {
			handler(resize.Size())
		}
	}
	return ev
}

func (t *TcellBackend) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		t.screen.Fini()
		t.running = false
	}
	return nil
}

// convertStyle converts a resolved style to tcell.Style.
func convertStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault

	style = style.Foreground(convertColor(s.FG))
	style = style.Background(convertColor(s.BG))

	attrs := s.Attributes(core.AttrNone)
	if attrs.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if attrs.Has(core.AttrDim) {
		style = style.Dim(true)
	}
	if attrs.Has(core.AttrItalic) {
		style = style.Italic(true)
	}
	if attrs.Has(core.AttrUnderline) {
		style = style.Underline(true)
	}
	if attrs.Has(core.AttrBlink) {
		style = style.Blink(true)
	}
	if attrs.Has(core.AttrReverse) {
		style = style.Reverse(true)
	}
	if attrs.Has(core.AttrStrikethrough) {
		style = style.StrikeThrough(true)
	}

	return style
}

// convertColor converts a Color to tcell.Color.
func convertColor(c core.Color) tcell.Color {
	switch c.Kind {
	case core.ColorKindIndexed:
		return tcell.PaletteColor(int(c.Index()))
	case core.ColorKindRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	default:
		return tcell.ColorDefault
	}
}
