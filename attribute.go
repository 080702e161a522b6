package vt102

// TextStyle is a bitmask of the text-rendering styles a cell can carry.
type TextStyle uint8

const (
	StyleBold TextStyle = 1 << iota
	StyleDim
	StyleUnderline
	StyleBlink
	StyleReverse
)

// Has reports whether every bit in want is set in s.
func (s TextStyle) Has(want TextStyle) bool {
	return s&want == want
}

// Color names one of the nine VT1xx color tokens. The zero value is
// ColorDefault, matching the default attribute's (default, default)
// colors.
type Color int

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorBrown
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// sgrColors maps an SGR color offset (0-7, i.e. code-30 or code-40) to
// the Color token, in the order the CSI table names them.
var sgrColors = [8]Color{
	ColorBlack, ColorRed, ColorGreen, ColorBrown,
	ColorBlue, ColorMagenta, ColorCyan, ColorWhite,
}

// CellAttribute is the value-typed presentation attribute of a screen
// cell: a set of text styles plus a foreground and background color.
// The zero value is the default attribute, (no styles, default,
// default). Instances must never be mutated in place; always replace
// the value stored in a cell or in cursorAttributes.
type CellAttribute struct {
	Styles     TextStyle
	Foreground Color
	Background Color
}

// DefaultAttribute is the attribute applied to a freshly reset cursor
// or a blanked cell.
var DefaultAttribute = CellAttribute{}

// withStyle returns a copy of a with want added to its style set.
func (a CellAttribute) withStyle(want TextStyle) CellAttribute {
	a.Styles |= want
	return a
}

// withoutStyle returns a copy of a with want removed from its style set.
func (a CellAttribute) withoutStyle(want TextStyle) CellAttribute {
	a.Styles &^= want
	return a
}
