package vt102

import (
	"unicode/utf8"

	"golang.org/x/text/width"
)

// foldToNarrow maps an East-Asian fullwidth or halfwidth compatibility
// form to its canonical width via width.Fold: fullwidth forms fold down
// to their narrow equivalent (e.g. fullwidth 'Ａ' -> 'A'), while
// halfwidth forms such as halfwidth katakana fold to their wide
// canonical form. Each printed rune still occupies exactly one grid
// column. Wide-glyph rendering itself remains out of scope:
// this only keeps the printed rune honest about being single-width,
// it never doubles a cell.
func foldToNarrow(r rune) rune {
	folded, err := width.Fold.String(string(r))
	if err != nil || folded == "" {
		return r
	}
	rr, size := utf8.DecodeRuneInString(folded)
	if rr == utf8.RuneError || size != len(folded) {
		return r
	}
	return rr
}
