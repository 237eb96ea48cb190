package backend

import (
	"strconv"
	"strings"

	"github.com/dshills/gridterm/core"
)

// ANSI escape sequences used by WriterBackend. Only widely supported CSI
// sequences are emitted; anything fancier belongs in a dedicated backend.
const (
	csi = "\x1b["

	seqEnterAlt   = csi + "?1049h"
	seqLeaveAlt   = csi + "?1049l"
	seqShowCursor = csi + "?25h"
	seqHideCursor = csi + "?25l"
	seqClear      = csi + "2J"
	seqReset      = csi + "0m"
)

// moveTo returns the cursor position sequence for 0-indexed coordinates.
func moveTo(x, y int) string {
	var b strings.Builder
	b.WriteString(csi)
	b.WriteString(strconv.Itoa(y + 1))
	b.WriteByte(';')
	b.WriteString(strconv.Itoa(x + 1))
	b.WriteByte('H')
	return b.String()
}

// sgrAttrCodes maps single attributes to their SGR set parameter.
var sgrAttrCodes = []struct {
	attr core.Attribute
	code string
}{
	{core.AttrBold, "1"},
	{core.AttrDim, "2"},
	{core.AttrItalic, "3"},
	{core.AttrUnderline, "4"},
	{core.AttrBlink, "5"},
	{core.AttrReverse, "7"},
	{core.AttrHidden, "8"},
	{core.AttrStrikethrough, "9"},
}

// sgr renders a full SGR sequence for the style: a reset followed by the
// style's colors and attributes. Emitting the complete state every time
// keeps the writer stateless with respect to what the terminal believes.
func sgr(style core.Style) string {
	params := []string{"0"}

	attrs := style.Attributes(core.AttrNone)
	for _, ac := range sgrAttrCodes {
		if attrs.Has(ac.attr) {
			params = append(params, ac.code)
		}
	}

	params = appendColor(params, style.FG, false)
	params = appendColor(params, style.BG, true)

	var b strings.Builder
	b.WriteString(csi)
	b.WriteString(strings.Join(params, ";"))
	b.WriteByte('m')
	return b.String()
}

// appendColor appends the SGR parameters selecting color as the foreground
// or background. Default colors need no parameter; the leading reset
// already restored them.
func appendColor(params []string, color core.Color, background bool) []string {
	switch color.Kind {
	case core.ColorKindIndexed:
		lead := "38"
		if background {
			lead = "48"
		}
		return append(params, lead, "5", strconv.Itoa(int(color.Index())))
	case core.ColorKindRGB:
		lead := "38"
		if background {
			lead = "48"
		}
		return append(params, lead, "2",
			strconv.Itoa(int(color.R)),
			strconv.Itoa(int(color.G)),
			strconv.Itoa(int(color.B)))
	default:
		return params
	}
}
