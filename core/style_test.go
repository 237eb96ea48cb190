package core

import "testing"

func TestStylePatchColors(t *testing.T) {
	base := NewStyle(ColorRed).WithBackground(ColorBlue)

	// Patch with unset colors keeps the base.
	got := base.Patch(Style{}.Bold())
	if got.FG != ColorRed || got.BG != ColorBlue {
		t.Errorf("unset patch colors should keep base, got fg=%v bg=%v", got.FG, got.BG)
	}

	// Patch with a set color overrides.
	got = base.Patch(NewStyle(ColorGreen))
	if got.FG != ColorGreen {
		t.Errorf("expected fg override to green, got %v", got.FG)
	}
	if got.BG != ColorBlue {
		t.Errorf("background should survive fg-only patch, got %v", got.BG)
	}
}

func TestStylePatchAttributes(t *testing.T) {
	base := Style{}.Bold().Italic()

	got := base.Patch(Style{}.Without(AttrBold).Underline())
	want := AttrItalic | AttrUnderline
	if resolved := got.Attributes(AttrNone); resolved != want {
		t.Errorf("expected attributes %v, got %v", want, resolved)
	}
}

func TestStylePatchAssociative(t *testing.T) {
	styles := []Style{
		{},
		NewStyle(ColorRed),
		Style{}.WithBackground(ColorBlue).Bold(),
		Style{}.Without(AttrBold).Underline(),
		NewStyle(ColorGreen).Without(AttrUnderline).Dim(),
		Style{}.Reverse().Without(AttrDim),
	}

	for i, s1 := range styles {
		for j, s2 := range styles {
			for k, s3 := range styles {
				left := s1.Patch(s2).Patch(s3)
				right := s1.Patch(s2.Patch(s3))
				if !left.Equals(right) {
					t.Errorf("patch not associative for (%d, %d, %d): (s1•s2)•s3=%+v s1•(s2•s3)=%+v",
						i, j, k, left, right)
				}
			}
		}
	}
}

func TestStyleWithWithoutCancel(t *testing.T) {
	s := Style{}.Bold().Without(AttrBold)
	if s.Add.Has(AttrBold) {
		t.Error("Without should clear the pending add")
	}
	if got := s.Attributes(AttrBold); got.Has(AttrBold) {
		t.Error("Without should strip the attribute from a base set")
	}
}

func TestStyleIsDefault(t *testing.T) {
	if !DefaultStyle().IsDefault() {
		t.Error("DefaultStyle should be the empty patch")
	}
	if NewStyle(ColorRed).IsDefault() {
		t.Error("a style with a color is not the empty patch")
	}
}
