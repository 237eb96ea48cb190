package core

// Style represents a visual style patch: optional foreground and background
// colors plus attributes to add and to remove.
//
// Styles compose by patching: applying style B over style A keeps A's colors
// where B's are unset (default), and resolves attributes as
// (A.Add - B.Sub) | B.Add. The composition is associative, so stacking any
// number of widget/container/child styles yields the same result regardless
// of grouping.
//
// The zero value is the empty patch: it changes nothing.
type Style struct {
	FG  Color
	BG  Color
	Add Attribute
	Sub Attribute
}

// DefaultStyle returns the terminal's default style.
func DefaultStyle() Style {
	return Style{}
}

// NewStyle creates a style with the given foreground color.
func NewStyle(fg Color) Style {
	return Style{FG: fg}
}

// WithForeground returns a new style with the given foreground color.
func (s Style) WithForeground(fg Color) Style {
	s.FG = fg
	return s
}

// WithBackground returns a new style with the given background color.
func (s Style) WithBackground(bg Color) Style {
	s.BG = bg
	return s
}

// Bold returns a new style with the bold attribute added.
func (s Style) Bold() Style {
	return s.With(AttrBold)
}

// Dim returns a new style with the dim attribute added.
func (s Style) Dim() Style {
	return s.With(AttrDim)
}

// Italic returns a new style with the italic attribute added.
func (s Style) Italic() Style {
	return s.With(AttrItalic)
}

// Underline returns a new style with the underline attribute added.
func (s Style) Underline() Style {
	return s.With(AttrUnderline)
}

// Reverse returns a new style with the reverse video attribute added.
func (s Style) Reverse() Style {
	return s.With(AttrReverse)
}

// Strikethrough returns a new style with the strikethrough attribute added.
func (s Style) Strikethrough() Style {
	return s.With(AttrStrikethrough)
}

// With returns a new style that adds the given attributes.
func (s Style) With(attr Attribute) Style {
	s.Add = s.Add.With(attr)
	s.Sub = s.Sub.Without(attr)
	return s
}

// Without returns a new style that removes the given attributes.
func (s Style) Without(attr Attribute) Style {
	s.Sub = s.Sub.With(attr)
	s.Add = s.Add.Without(attr)
	return s
}

// Patch applies other over s and returns the combined style.
func (s Style) Patch(other Style) Style {
	result := s

	if !other.FG.IsDefault() {
		result.FG = other.FG
	}
	if !other.BG.IsDefault() {
		result.BG = other.BG
	}
	result.Add = s.Add.Without(other.Sub).With(other.Add)
	result.Sub = s.Sub.Without(other.Add).With(other.Sub)

	return result
}

// Attributes resolves the style's attribute set against a base set.
func (s Style) Attributes(base Attribute) Attribute {
	return base.Without(s.Sub).With(s.Add)
}

// Equals returns true if two styles are identical.
func (s Style) Equals(other Style) bool {
	return s == other
}

// IsDefault returns true if this is the empty patch.
func (s Style) IsDefault() bool {
	return s == Style{}
}
