// Package terminal owns the frame lifecycle: double-buffered rendering,
// diff-based redraw and the state machine that keeps a real terminal
// recoverable on every exit path.
package terminal

import (
	"errors"
	"fmt"

	"github.com/dshills/gridterm/backend"
	"github.com/dshills/gridterm/buffer"
	"github.com/dshills/gridterm/core"
	"github.com/dshills/gridterm/logging"
)

// Terminal lifecycle errors.
var (
	// ErrNotReady is returned when Draw is called before Start or while
	// suspended.
	ErrNotReady = errors.New("terminal not ready")
	// ErrTornDown is returned for any operation after Stop.
	ErrTornDown = errors.New("terminal torn down")
	// ErrDrawInProgress is returned when Draw re-enters itself, such as
	// from inside a render closure.
	ErrDrawInProgress = errors.New("draw already in progress")
)

// state tracks the terminal lifecycle.
type state int

const (
	stateUninitialized state = iota
	stateReady
	stateSuspended
	stateTornDown
)

func (s state) String() string {
	switch s {
	case stateUninitialized:
		return "uninitialized"
	case stateReady:
		return "ready"
	case stateSuspended:
		return "suspended"
	case stateTornDown:
		return "torn down"
	default:
		return "unknown"
	}
}

// Terminal renders frames through a backend. It is not safe for concurrent
// use; all calls must come from one goroutine.
type Terminal struct {
	backend backend.Backend
	log     *logging.Logger

	altScreen  bool
	showCursor bool

	st   state
	cur  *buffer.Buffer
	prev *buffer.Buffer

	drawing    bool
	fullRedraw bool
	// pending is the edit script of a frame whose flush failed, retried
	// before anything else on the next Draw.
	pending       []buffer.Run
	pendingCursor *cursorRequest

	frames uint64
}

// Option configures a Terminal.
type Option func(*Terminal)

// WithLogger attaches a logger for render diagnostics.
func WithLogger(l *logging.Logger) Option {
	return func(t *Terminal) {
		t.log = l.WithComponent("terminal")
	}
}

// WithoutAltScreen renders on the primary screen instead of switching to
// the alternate screen on Start.
func WithoutAltScreen() Option {
	return func(t *Terminal) { t.altScreen = false }
}

// New creates a terminal on the given backend. The terminal does nothing
// until Start.
func New(b backend.Backend, opts ...Option) *Terminal {
	t := &Terminal{
		backend:   b,
		log:       logging.NullLogger,
		altScreen: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start takes over the terminal: raw mode, alternate screen, cursor hidden.
// It also resumes a suspended terminal. The first Draw after Start is a
// full redraw.
func (t *Terminal) Start() error {
	switch t.st {
	case stateTornDown:
		return ErrTornDown
	case stateReady:
		return nil
	}

	if err := t.backend.EnterRawMode(); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	if t.altScreen {
		t.backend.EnterAltScreen()
	}
	t.backend.HideCursor()

	w, h := t.backend.Size()
	area := core.NewRect(w, h)
	if t.cur == nil {
		t.cur = buffer.New(area)
		t.prev = buffer.New(area)
		t.backend.OnResize(func(width, height int) {
			t.log.Debug("resize reported: %dx%d", width, height)
		})
	}

	t.st = stateReady
	t.fullRedraw = true
	t.pending = nil
	t.pendingCursor = nil
	t.log.Info("started: %dx%d", w, h)
	return nil
}

// Suspend hands the terminal back to the shell, keeping frame state so
// Start can resume where the host left off.
func (t *Terminal) Suspend() error {
	switch t.st {
	case stateTornDown:
		return ErrTornDown
	case stateUninitialized, stateSuspended:
		return ErrNotReady
	}

	if t.altScreen {
		t.backend.LeaveAltScreen()
	}
	t.backend.ShowCursor(0, 0)
	if err := t.backend.Flush(); err != nil {
		return fmt.Errorf("suspend: %w", err)
	}
	if err := t.backend.LeaveRawMode(); err != nil {
		return fmt.Errorf("suspend: %w", err)
	}

	t.st = stateSuspended
	t.log.Info("suspended")
	return nil
}

// Stop restores the terminal and tears the state machine down. It is safe
// to call from any state, including in a defer alongside an explicit call,
// so every exit path leaves the terminal usable.
func (t *Terminal) Stop() error {
	if t.st == stateTornDown || t.st == stateUninitialized {
		t.st = stateTornDown
		return nil
	}

	var errs []error
	if t.st == stateReady {
		if t.altScreen {
			t.backend.LeaveAltScreen()
		}
		t.backend.ShowCursor(0, 0)
		if err := t.backend.Flush(); err != nil {
			errs = append(errs, err)
		}
		if err := t.backend.LeaveRawMode(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := t.backend.Close(); err != nil {
		errs = append(errs, err)
	}

	t.st = stateTornDown
	t.log.Info("stopped after %d frames", t.frames)
	if len(errs) > 0 {
		return fmt.Errorf("stop: %w", errors.Join(errs...))
	}
	return nil
}

// Size returns the area frames currently render into.
func (t *Terminal) Size() core.Rect {
	if t.cur == nil {
		w, h := t.backend.Size()
		return core.NewRect(w, h)
	}
	return t.cur.Area
}

// Resize forces the frame buffers to the given area and schedules a full
// redraw. Draw picks up backend size changes on its own; Resize is for
// hosts that track the size themselves.
func (t *Terminal) Resize(area core.Rect) {
	if t.cur == nil || t.cur.Area.Equals(area) {
		return
	}
	t.cur.Resize(area)
	t.prev.Resize(area)
	t.fullRedraw = true
	t.pending = nil
	t.pendingCursor = nil
	t.log.Debug("resized to %v", area)
}

// Draw renders one frame. The closure draws widgets into the frame; Draw
// then diffs against what is on screen and writes only the changed runs.
//
// The edit script is computed in full before any byte reaches the backend.
// If the flush fails the script is kept and retried at the start of the
// next Draw, before the new frame is rendered.
func (t *Terminal) Draw(render func(*Frame) error) error {
	switch t.st {
	case stateTornDown:
		return ErrTornDown
	case stateUninitialized, stateSuspended:
		return ErrNotReady
	}
	if t.drawing {
		return ErrDrawInProgress
	}
	t.drawing = true
	defer func() { t.drawing = false }()

	if t.pending != nil {
		if err := t.flushRuns(t.pending, t.pendingCursor); err != nil {
			return err
		}
		t.finishFrame()
	}

	t.syncSize()

	frame := &Frame{buf: t.cur}
	if err := render(frame); err != nil {
		// The frame is abandoned; throw away what the closure wrote.
		t.cur.Reset()
		return fmt.Errorf("render: %w", err)
	}

	var runs []buffer.Run
	if t.fullRedraw {
		runs = buffer.FullRuns(t.cur)
	} else {
		runs = buffer.Diff(t.prev, t.cur)
	}

	if err := t.flushRuns(runs, frame.cursor); err != nil {
		t.pending = runs
		t.pendingCursor = frame.cursor
		return err
	}
	t.finishFrame()
	return nil
}

// syncSize reconciles the frame buffers with the backend size.
func (t *Terminal) syncSize() {
	w, h := t.backend.Size()
	area := core.NewRect(w, h)
	if t.cur.Area.Equals(area) {
		return
	}
	t.cur.Resize(area)
	t.prev.Resize(area)
	t.fullRedraw = true
	t.log.Debug("size changed, full redraw: %v", area)
}

// flushRuns writes an edit script and the cursor request to the backend.
func (t *Terminal) flushRuns(runs []buffer.Run, cursor *cursorRequest) error {
	for _, run := range runs {
		t.backend.MoveCursor(run.X, run.Y)
		for _, cell := range run.Cells {
			t.backend.WriteCell(cell)
		}
	}

	if cursor != nil {
		t.showCursor = true
		t.backend.ShowCursor(cursor.x, cursor.y)
	} else if t.showCursor {
		t.showCursor = false
		t.backend.HideCursor()
	}

	if err := t.backend.Flush(); err != nil {
		t.log.Warn("flush failed, frame retained: %v", err)
		return fmt.Errorf("draw: %w", err)
	}
	return nil
}

// finishFrame promotes the drawn frame to the on-screen state and clears
// the working buffer for the next one.
func (t *Terminal) finishFrame() {
	t.cur, t.prev = t.prev, t.cur
	t.cur.Reset()
	t.pending = nil
	t.pendingCursor = nil
	t.fullRedraw = false
	t.frames++
}

// Frames returns the number of frames flushed since New.
func (t *Terminal) Frames() uint64 { return t.frames }
