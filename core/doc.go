// Package core provides the shared value types of the gridterm toolkit.
//
// Everything here is a plain value: cells, colors, styles and rectangles are
// copied freely and carry no lifecycle of their own. The package sits at the
// bottom of the dependency graph so that buffer, layout, widget, backend and
// terminal can all share one vocabulary without import cycles.
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│            terminal (draw loop)         │
//	├─────────────────────────────────────────┤
//	│  widget │ layout │ text │ buffer        │
//	├─────────────────────────────────────────┤
//	│            backend abstraction          │
//	├─────────────────────────────────────────┤
//	│  core (Cell, Color, Style, Rect)        │
//	└─────────────────────────────────────────┘
package core
