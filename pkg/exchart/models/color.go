package models

import "fmt"

// AccentCount is the number of theme accent colors cycled through.
const AccentCount = 6

// ColorKind tags a ColorSpec.
type ColorKind string

const (
	// ColorLiteral is an explicit RGB color.
	ColorLiteral ColorKind = "literal"
	// ColorAccent is a theme accent color.
	ColorAccent ColorKind = "accent"
)

// ColorSpec is either an explicit RGB color or a theme accent index, never both.
type ColorSpec struct {
	// Kind tells which of Hex or Accent is meaningful.
	Kind ColorKind `json:"kind"`
	// Hex is the upper-case RRGGBB value for literal colors.
	Hex string `json:"hex,omitempty"`
	// Accent is the 0-based theme accent index for accent colors.
	Accent int `json:"accent,omitempty"`
}

// LiteralColor returns a literal color. The hex value must already be normalized.
func LiteralColor(hex string) ColorSpec {
	return ColorSpec{Kind: ColorLiteral, Hex: hex}
}

// AccentColor returns the theme accent color for index, wrapping at AccentCount.
func AccentColor(index int) ColorSpec {
	index %= AccentCount
	if index < 0 {
		index += AccentCount
	}
	return ColorSpec{Kind: ColorAccent, Accent: index}
}

// SchemeName returns the theme color name (accent1..accent6) of an accent color.
func (c ColorSpec) SchemeName() string {
	return fmt.Sprintf("accent%d", c.Accent+1)
}

func (c ColorSpec) String() string {
	if c.Kind == ColorLiteral {
		return c.Hex
	}
	return c.SchemeName()
}
