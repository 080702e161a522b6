package vt102

// SelectGraphicRendition applies zero or more SGR codes to
// cursorAttributes, left to right; later codes override single-valued
// fields (foreground, background) and accumulate in the style set. No
// codes is treated as a single reset code (0). Only newly printed
// cells are affected — existing cells keep whatever attribute they
// were printed with.
func (s *Screen) SelectGraphicRendition(codes ...int) {
	if s.middleware != nil && s.middleware.SelectGraphicRendition != nil {
		s.middleware.SelectGraphicRendition(codes, s.selectGraphicRenditionInternal)
		return
	}
	s.selectGraphicRenditionInternal(codes)
}

func (s *Screen) selectGraphicRenditionInternal(codes []int) {
	if len(codes) == 0 {
		codes = []int{sgrReset}
	}
	for _, code := range codes {
		s.applySGR(code)
	}
}

func (s *Screen) applySGR(code int) {
	switch {
	case code == sgrReset:
		s.cursorAttributes = DefaultAttribute
	case code == sgrBold:
		s.cursorAttributes = s.cursorAttributes.withStyle(StyleBold)
	case code == sgrDim:
		s.cursorAttributes = s.cursorAttributes.withStyle(StyleDim)
	case code == sgrUnderline:
		s.cursorAttributes = s.cursorAttributes.withStyle(StyleUnderline)
	case code == sgrBlink:
		s.cursorAttributes = s.cursorAttributes.withStyle(StyleBlink)
	case code == sgrReverse:
		s.cursorAttributes = s.cursorAttributes.withStyle(StyleReverse)
	case code == sgrUnderlineOff:
		s.cursorAttributes = s.cursorAttributes.withoutStyle(StyleUnderline)
	case code == sgrBlinkOff:
		s.cursorAttributes = s.cursorAttributes.withoutStyle(StyleBlink)
	case code == sgrReverseOff:
		s.cursorAttributes = s.cursorAttributes.withoutStyle(StyleReverse)
	case code == sgrFgDefault || code == sgrFgReset:
		s.cursorAttributes.Foreground = ColorDefault
	case code == sgrBgReset:
		s.cursorAttributes.Background = ColorDefault
	case code >= sgrFgBase && code < sgrFgBase+8:
		s.cursorAttributes.Foreground = sgrColors[code-sgrFgBase]
	case code >= sgrBgBase && code < sgrBgBase+8:
		s.cursorAttributes.Background = sgrColors[code-sgrBgBase]
	default:
		// Unknown SGR code: ignored.
	}
}

// CursorAttributes returns the attribute that will be applied to the
// next printed glyph.
func (s *Screen) CursorAttributes() CellAttribute {
	return s.cursorAttributes
}

// SetMargins records a scrolling region (DECSTBM). The live grid in
// this emulator is always the full Rows()xCols() shape — index,
// reverse-index and scrolling operate over the whole grid rather than
// a sub-region, so top/bottom are accepted but otherwise unused. A
// documented extension point for callers who want to implement a real
// scrolling region, not an oversight.
func (s *Screen) SetMargins(top, bottom int) {
	if s.middleware != nil && s.middleware.SetMargins != nil {
		s.middleware.SetMargins(top, bottom, func(int, int) {})
		return
	}
}

// SetInsert switches to insert mode. Observable via InsertMode but not
// consulted by Print.
func (s *Screen) SetInsert() {
	if s.middleware != nil && s.middleware.SetInsert != nil {
		s.middleware.SetInsert(s.setInsertInternal)
		return
	}
	s.setInsertInternal()
}

func (s *Screen) setInsertInternal() {
	s.irm = ModeInsert
}

// SetReplace switches to replace mode.
func (s *Screen) SetReplace() {
	if s.middleware != nil && s.middleware.SetReplace != nil {
		s.middleware.SetReplace(s.setReplaceInternal)
		return
	}
	s.setReplaceInternal()
}

func (s *Screen) setReplaceInternal() {
	s.irm = ModeReplace
}

// CharsetG0 designates the G0 translation table. cs == '0' selects DEC
// Special Graphics; any other designator selects identity.
func (s *Screen) CharsetG0(cs rune) {
	if s.middleware != nil && s.middleware.CharsetG0 != nil {
		s.middleware.CharsetG0(cs, s.charsetG0Internal)
		return
	}
	s.charsetG0Internal(cs)
}

func (s *Screen) charsetG0Internal(cs rune) {
	s.g0 = charsetTableFor(cs)
}

// CharsetG1 designates the G1 translation table. cs == '0' selects DEC
// Special Graphics; any other designator selects identity.
func (s *Screen) CharsetG1(cs rune) {
	if s.middleware != nil && s.middleware.CharsetG1 != nil {
		s.middleware.CharsetG1(cs, s.charsetG1Internal)
		return
	}
	s.charsetG1Internal(cs)
}

func (s *Screen) charsetG1Internal(cs rune) {
	s.g1 = charsetTableFor(cs)
}
