package widget

import (
	"fmt"

	"github.com/dshills/gridterm/buffer"
	"github.com/dshills/gridterm/core"
	"github.com/dshills/gridterm/text"
)

// Gauge renders a progress bar filled to a ratio, with a label centered in
// the area. The default label is the percentage.
type Gauge struct {
	block      Block
	hasBlock   bool
	ratio      float64
	label      text.Span
	hasLabel   bool
	style      core.Style
	gaugeStyle core.Style
}

// NewGauge creates an empty gauge.
func NewGauge() Gauge {
	return Gauge{
		gaugeStyle: core.Style{}.Reverse(),
	}
}

// WithBlock wraps the gauge in a block.
func (g Gauge) WithBlock(b Block) Gauge {
	g.block = b
	g.hasBlock = true
	return g
}

// WithRatio sets the filled share, clamped to [0, 1].
func (g Gauge) WithRatio(ratio float64) Gauge {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	g.ratio = ratio
	return g
}

// WithPercent sets the filled share as a percentage, clamped to [0, 100].
func (g Gauge) WithPercent(percent int) Gauge {
	return g.WithRatio(float64(percent) / 100)
}

// WithLabel sets the label; without one the gauge shows "NN%".
func (g Gauge) WithLabel(label string) Gauge {
	g.label = text.NewSpan(label)
	g.hasLabel = true
	return g
}

// WithStyle sets the base style for the unfilled part.
func (g Gauge) WithStyle(style core.Style) Gauge {
	g.style = style
	return g
}

// WithGaugeStyle sets the style patched onto the filled part.
func (g Gauge) WithGaugeStyle(style core.Style) Gauge {
	g.gaugeStyle = style
	return g
}

// Render draws the gauge into the buffer.
func (g Gauge) Render(area core.Rect, buf *buffer.Buffer) {
	inner := area
	if g.hasBlock {
		g.block.Render(area, buf)
		inner = g.block.Inner(area)
	}
	if inner.IsEmpty() {
		return
	}

	buf.SetStyle(inner, g.style)

	label := g.label
	if !g.hasLabel {
		label = text.NewSpan(fmt.Sprintf("%.0f%%", g.ratio*100))
	}

	labelWidth := label.Width()
	labelX := inner.Left() + (inner.Width-labelWidth)/2
	labelY := inner.Top() + inner.Height/2
	if labelX < inner.Left() {
		labelX = inner.Left()
	}
	buf.SetStringN(labelX, labelY, label.Content, inner.Right()-labelX, label.Style)

	filled := int(float64(inner.Width)*g.ratio + 0.5)
	if filled > 0 {
		buf.SetStyle(core.RectAt(inner.Left(), inner.Top(), filled, inner.Height), g.gaugeStyle)
	}
}
