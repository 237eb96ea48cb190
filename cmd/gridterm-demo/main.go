// Package main is a small showcase of the gridterm toolkit: a dashboard
// layout with a list, a paragraph, a gauge and a scrollbar, driven by
// keyboard input through the tcell backend.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gridterm/backend"
	"github.com/dshills/gridterm/core"
	"github.com/dshills/gridterm/layout"
	"github.com/dshills/gridterm/logging"
	"github.com/dshills/gridterm/terminal"
	"github.com/dshills/gridterm/text"
	"github.com/dshills/gridterm/widget"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

type options struct {
	logPath  string
	logLevel string
	noAlt    bool
}

func run() int {
	opts := parseFlags()

	log := logging.NullLogger
	if opts.logPath != "" {
		f, err := os.OpenFile(opts.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to open log file: %v\n", err)
			return 1
		}
		defer f.Close()
		log = logging.New(logging.Config{
			Level:  logging.ParseLevel(opts.logLevel),
			Output: f,
			Prefix: "gridterm-demo",
		})
	}

	be, err := backend.NewTcellBackend()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create backend: %v\n", err)
		return 1
	}

	termOpts := []terminal.Option{terminal.WithLogger(log)}
	if opts.noAlt {
		termOpts = append(termOpts, terminal.WithoutAltScreen())
	}
	term := terminal.New(be, termOpts...)

	if err := term.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to start terminal: %v\n", err)
		return 1
	}
	// Restore the terminal on all exit paths, panics included.
	defer term.Stop()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		term.Stop()
		os.Exit(1)
	}()

	if err := eventLoop(term, be); err != nil {
		term.Stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func eventLoop(term *terminal.Terminal, be *backend.TcellBackend) error {
	items := []string{
		"cell buffers",
		"diff-based redraw",
		"constraint layout",
		"blocks and borders",
		"wrapped paragraphs",
		"gauges",
		"tab bars",
		"scrollbars",
	}
	listState := widget.NewListState()
	listState.Select(0)
	scroll := widget.NewScrollbarState(len(items))
	started := time.Now()

	for {
		scroll.Position = listState.Selected
		if err := term.Draw(func(f *terminal.Frame) error {
			drawDashboard(f, items, listState, scroll, started)
			return nil
		}); err != nil {
			return err
		}

		switch ev := be.PollEvent().(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
				return nil
			case ev.Key() == tcell.KeyDown || ev.Rune() == 'j':
				listState.Next(len(items))
			case ev.Key() == tcell.KeyUp || ev.Rune() == 'k':
				listState.Prev(len(items))
			case ev.Key() == tcell.KeyCtrlZ:
				if err := term.Suspend(); err != nil {
					return err
				}
				if err := term.Start(); err != nil {
					return err
				}
			}
		case *tcell.EventResize:
			// The resize callback already scheduled a full redraw.
		}
	}
}

func drawDashboard(f *terminal.Frame, items []string, listState *widget.ListState, scroll *widget.ScrollbarState, started time.Time) {
	rows := layout.NewVertical(
		layout.Length(1),
		layout.Fill(1),
		layout.Length(3),
	).MustSplit(f.Size())

	f.RenderWidget(widget.NewTabs("demo", "about").WithSelected(0), rows[0])

	cols := layout.NewHorizontal(
		layout.Percentage(40),
		layout.Fill(1),
	).MustSplit(rows[1])

	list := widget.NewList(items...).
		WithBlock(widget.NewBlock().WithBorders(widget.BorderAll).WithTitle("features")).
		WithHighlightSymbol("> ")
	terminal.RenderStatefulWidget(f, list, cols[0], listState)

	body := widget.NewParagraph(description(items[listState.Selected])).
		Wrapped(true).
		WithBlock(widget.NewBlock().
			WithBorders(widget.BorderAll).
			WithBorderType(widget.BorderRounded).
			WithTitleLine(text.StyledLine("gridterm", core.Style{FG: core.ColorCyan}.Bold())))
	f.RenderWidget(body, cols[1])
	terminal.RenderStatefulWidget(f, widget.NewScrollbar(), cols[1], scroll)

	elapsed := time.Since(started).Seconds()
	ratio := elapsed / 60
	if ratio > 1 {
		ratio = 1
	}
	gauge := widget.NewGauge().
		WithRatio(ratio).
		WithLabel(fmt.Sprintf("%.0fs of this minute", elapsed)).
		WithBlock(widget.NewBlock().WithBorders(widget.BorderAll).WithTitle("uptime"))
	f.RenderWidget(gauge, rows[2])
}

func description(feature string) string {
	return fmt.Sprintf("Selected: %s.\n\nUse j/k or the arrow keys to move, "+
		"Ctrl-Z to suspend and resume, q or Escape to quit. "+
		"Every frame renders into an off-screen cell buffer and only the "+
		"cells that changed since the previous frame are written out.", feature)
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.logPath, "log", "", "Write render diagnostics to this file")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.noAlt, "no-alt-screen", false, "Render on the primary screen")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "gridterm-demo - terminal UI toolkit showcase\n\n")
		fmt.Fprintf(os.Stderr, "Usage: gridterm-demo [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("gridterm-demo %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	switch opts.logLevel {
	case "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
		os.Exit(1)
	}

	return opts
}
