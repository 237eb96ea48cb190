package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorKind identifies how a Color value is interpreted.
type ColorKind uint8

const (
	// ColorKindDefault is the terminal's default color. It is the zero
	// value, so an unset Color in a Style patch means "keep what is there".
	ColorKindDefault ColorKind = iota
	// ColorKindIndexed is a 256-color palette index.
	ColorKindIndexed
	// ColorKindRGB is a 24-bit true color.
	ColorKindRGB
)

// Color represents a terminal color value.
// The zero value is the terminal's default color.
type Color struct {
	Kind ColorKind
	// R holds the palette index when Kind is ColorKindIndexed.
	R, G, B uint8
}

// ColorDefault is the terminal's default color.
var ColorDefault = Color{}

// Common colors.
var (
	ColorBlack   = RGB(0, 0, 0)
	ColorWhite   = RGB(255, 255, 255)
	ColorRed     = RGB(255, 0, 0)
	ColorGreen   = RGB(0, 255, 0)
	ColorBlue    = RGB(0, 0, 255)
	ColorYellow  = RGB(255, 255, 0)
	ColorCyan    = RGB(0, 255, 255)
	ColorMagenta = RGB(255, 0, 255)
	ColorGray    = RGB(128, 128, 128)
)

// RGB creates a true color from RGB components.
func RGB(r, g, b uint8) Color {
	return Color{Kind: ColorKindRGB, R: r, G: g, B: b}
}

// Indexed creates a 256-color palette color.
func Indexed(index uint8) Color {
	return Color{Kind: ColorKindIndexed, R: index}
}

// ColorFromHex creates a color from a "#rgb" or "#rrggbb" hex string.
func ColorFromHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return Color{}, fmt.Errorf("invalid hex color length: %s", hex)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color: %s", hex)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// IsDefault returns true if this is the terminal's default color.
func (c Color) IsDefault() bool {
	return c.Kind == ColorKindDefault
}

// Index returns the palette index for an indexed color.
func (c Color) Index() uint8 {
	return c.R
}

// String returns a string representation of the color.
func (c Color) String() string {
	switch c.Kind {
	case ColorKindIndexed:
		return fmt.Sprintf("idx(%d)", c.R)
	case ColorKindRGB:
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	default:
		return "default"
	}
}

// toColorful converts a true color to a colorful.Color for blending maths.
func (c Color) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// fromColorful converts a colorful.Color back into a true color.
func fromColorful(c colorful.Color) Color {
	c = c.Clamped()
	return RGB(uint8(c.R*255.0+0.5), uint8(c.G*255.0+0.5), uint8(c.B*255.0+0.5))
}

// Blend blends two true colors together. amount is the share of other in the
// result; default and indexed colors cannot be blended and snap to whichever
// side amount favors.
func (c Color) Blend(other Color, amount float64) Color {
	if c.Kind != ColorKindRGB || other.Kind != ColorKindRGB {
		if amount < 0.5 {
			return c
		}
		return other
	}
	return fromColorful(c.toColorful().BlendRgb(other.toColorful(), amount))
}

// Lighten returns a lighter version of a true color.
func (c Color) Lighten(amount float64) Color {
	if c.Kind != ColorKindRGB {
		return c
	}
	return fromColorful(c.toColorful().BlendRgb(colorful.Color{R: 1, G: 1, B: 1}, amount))
}

// Darken returns a darker version of a true color.
func (c Color) Darken(amount float64) Color {
	if c.Kind != ColorKindRGB {
		return c
	}
	return fromColorful(c.toColorful().BlendRgb(colorful.Color{}, amount))
}
