package vt102

import (
	"strings"

	"golang.org/x/text/encoding"
)

// InsertMode selects whether newly printed glyphs displace existing
// ones (insert) or overwrite them (replace). It is observable via
// Screen.InsertMode but is not consulted by the print path: writes
// always overwrite. A documented extension point for callers who want
// to implement real insert-mode shifting on top of Print.
type InsertMode int

const (
	ModeInsert InsertMode = iota
	ModeReplace
)

type cursorPos struct {
	x, y int
}

// Screen is a grid of cells with a cursor, tab stops, a saved-cursor
// stack, and a handler for every event a Parser can emit. It is the
// handler half of the parser/screen pair described in the package doc.
type Screen struct {
	rows, cols int
	display    [][]rune
	attrs      [][]CellAttribute

	x, y             int
	cursorAttributes CellAttribute
	irm              InsertMode
	tabstops         map[int]bool
	cursorSaveStack  []cursorPos

	g0, g1         map[rune]rune
	currentCharset CharsetSlot

	decode *decodeState

	bell       BellProvider
	middleware *Middleware
}

// ScreenOption configures a Screen during construction.
type ScreenOption func(*Screen)

// WithSize sets the screen dimensions. Non-positive values fall back
// to the default 24x80 (InvalidResize: a Screen is always
// constructed well-formed).
func WithSize(rows, cols int) ScreenOption {
	if rows <= 0 {
		rows = 24
	}
	if cols <= 0 {
		cols = 80
	}
	return func(s *Screen) {
		s.rows = rows
		s.cols = cols
	}
}

// WithDecoder sets the byte-to-glyph decoder used by the print
// handler. The default is UTF-8; pass e.g. charmap.ISO8859_1 for a
// legacy single-byte stream.
func WithDecoder(enc encoding.Encoding) ScreenOption {
	return func(s *Screen) {
		s.decode = newDecodeState(enc)
	}
}

// WithBell sets the handler invoked on BEL. Defaults to a no-op.
func WithBell(p BellProvider) ScreenOption {
	return func(s *Screen) {
		s.bell = p
	}
}

// WithMiddleware sets functions to intercept Screen's event handlers.
func WithMiddleware(mw *Middleware) ScreenOption {
	return func(s *Screen) {
		if s.middleware == nil {
			s.middleware = &Middleware{}
		}
		s.middleware.Merge(mw)
	}
}

// NewScreen creates a well-formed Screen: 24x80 by default, cursor at
// (0,0), default attributes, no tab stops, UTF-8 decoding.
func NewScreen(opts ...ScreenOption) *Screen {
	s := &Screen{
		rows:   24,
		cols:   80,
		bell:   NoopBell{},
		decode: newDecodeState(nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.display = newBlankGrid(s.rows, s.cols)
	s.attrs = newBlankAttrGrid(s.rows, s.cols)
	s.tabstops = make(map[int]bool)
	return s
}

func newBlankGrid(rows, cols int) [][]rune {
	g := make([][]rune, rows)
	for i := range g {
		g[i] = blankRow(cols)
	}
	return g
}

func blankRow(cols int) []rune {
	row := make([]rune, cols)
	for i := range row {
		row[i] = ' '
	}
	return row
}

func newBlankAttrGrid(rows, cols int) [][]CellAttribute {
	g := make([][]CellAttribute, rows)
	for i := range g {
		g[i] = make([]CellAttribute, cols)
	}
	return g
}

// Rows returns the screen height.
func (s *Screen) Rows() int { return s.rows }

// Cols returns the screen width.
func (s *Screen) Cols() int { return s.cols }

// Cursor returns the current cursor column and row.
func (s *Screen) Cursor() (x, y int) { return s.x, s.y }

// InsertMode returns the current insert/replace mode.
func (s *Screen) InsertMode() InsertMode { return s.irm }

// Display returns the visible glyphs as rows strings of exactly Cols
// characters each.
func (s *Screen) Display() []string {
	out := make([]string, s.rows)
	for i, row := range s.display {
		out[i] = string(row)
	}
	return out
}

// Attributes returns the attribute grid, parallel to Display.
func (s *Screen) Attributes() [][]CellAttribute {
	out := make([][]CellAttribute, s.rows)
	for i, row := range s.attrs {
		cp := make([]CellAttribute, len(row))
		copy(cp, row)
		out[i] = cp
	}
	return out
}

// Cell returns the glyph and attribute at (x, y). ok is false if the
// coordinates are out of bounds.
func (s *Screen) Cell(x, y int) (r rune, attr CellAttribute, ok bool) {
	if y < 0 || y >= s.rows || x < 0 || x >= s.cols {
		return 0, CellAttribute{}, false
	}
	return s.display[y][x], s.attrs[y][x], true
}

// String joins Display with newlines, satisfying fmt.Stringer.
func (s *Screen) String() string {
	return strings.Join(s.Display(), "\n")
}

// Attach registers one Screen handler per event the parser can emit.
// Multiple screens may attach to the same parser; the parser holds no
// reference back to any of them.
func (s *Screen) Attach(p *Parser) {
	p.AddEventListener(EventPrint, func(e Event) { s.handlePrint(byte(e.Rune)) })
	p.AddEventListener(EventBackspace, func(Event) { s.Backspace() })
	p.AddEventListener(EventTab, func(Event) { s.Tab() })
	p.AddEventListener(EventLinefeed, func(Event) { s.Linefeed() })
	p.AddEventListener(EventCarriageReturn, func(Event) { s.CarriageReturn() })
	p.AddEventListener(EventShiftIn, func(Event) { s.ShiftIn() })
	p.AddEventListener(EventShiftOut, func(Event) { s.ShiftOut() })
	p.AddEventListener(EventBell, func(Event) { s.Bell() })
	p.AddEventListener(EventIndex, func(Event) { s.Index() })
	p.AddEventListener(EventReverseIndex, func(Event) { s.ReverseIndex() })
	p.AddEventListener(EventReverseLinefeed, func(Event) { s.ReverseLinefeed() })
	p.AddEventListener(EventStoreCursor, func(Event) { s.StoreCursor() })
	p.AddEventListener(EventRestoreCursor, func(Event) { s.RestoreCursor() })
	p.AddEventListener(EventCursorUp, func(e Event) { s.CursorUp(e.arg(0, 1)) })
	p.AddEventListener(EventCursorDown, func(e Event) { s.CursorDown(e.arg(0, 1)) })
	p.AddEventListener(EventCursorRight, func(e Event) { s.CursorRight(e.arg(0, 1)) })
	p.AddEventListener(EventCursorLeft, func(e Event) { s.CursorLeft(e.arg(0, 1)) })
	p.AddEventListener(EventCursorMove, func(e Event) { s.CursorMove(e.arg(0, 1), e.arg(1, 1)) })
	p.AddEventListener(EventEraseInLine, func(e Event) { s.EraseInLine(e.arg(0, 0)) })
	p.AddEventListener(EventEraseInDisplay, func(e Event) { s.EraseInDisplay(e.arg(0, 0)) })
	p.AddEventListener(EventDeleteCharacters, func(e Event) { s.DeleteCharacters(e.arg(0, 1)) })
	p.AddEventListener(EventInsertLines, func(e Event) { s.InsertLines(e.arg(0, 1)) })
	p.AddEventListener(EventDeleteLines, func(e Event) { s.DeleteLines(e.arg(0, 1)) })
	p.AddEventListener(EventSelectGraphicRendition, func(e Event) { s.SelectGraphicRendition(e.Args...) })
	p.AddEventListener(EventSetMargins, func(e Event) { s.SetMargins(e.arg(0, 1), e.arg(1, s.rows)) })
	p.AddEventListener(EventSetInsert, func(Event) { s.SetInsert() })
	p.AddEventListener(EventSetReplace, func(Event) { s.SetReplace() })
	p.AddEventListener(EventCharsetG0, func(e Event) { s.CharsetG0(e.Rune) })
	p.AddEventListener(EventCharsetG1, func(e Event) { s.CharsetG1(e.Rune) })
}

// handlePrint feeds one raw byte through the decoder, printing the
// resulting glyph once a full rune resolves.
func (s *Screen) handlePrint(b byte) {
	r, ok := s.decode.push(b)
	if !ok {
		return
	}
	s.Print(r)
}

// Print writes r at the current cursor position using the active
// charset translation, then advances the cursor, wrapping via a
// linefeed at the right margin.
func (s *Screen) Print(r rune) {
	if s.middleware != nil && s.middleware.Print != nil {
		s.middleware.Print(r, s.printInternal)
		return
	}
	s.printInternal(r)
}

func (s *Screen) printInternal(r rune) {
	table := s.g0
	if s.currentCharset == CharsetG1 {
		table = s.g1
	}
	r = translateCharset(table, r)
	r = foldToNarrow(r)

	s.display[s.y][s.x] = r
	s.attrs[s.y][s.x] = s.cursorAttributes

	s.x++
	if s.x == s.cols {
		s.Linefeed()
	}
}

// Backspace moves the cursor one column left, stopping at column 0.
func (s *Screen) Backspace() {
	if s.middleware != nil && s.middleware.Backspace != nil {
		s.middleware.Backspace(s.backspaceInternal)
		return
	}
	s.backspaceInternal()
}

func (s *Screen) backspaceInternal() {
	if s.x > 0 {
		s.x--
	}
}

// CarriageReturn moves the cursor to column 0.
func (s *Screen) CarriageReturn() {
	if s.middleware != nil && s.middleware.CarriageReturn != nil {
		s.middleware.CarriageReturn(s.carriageReturnInternal)
		return
	}
	s.carriageReturnInternal()
}

func (s *Screen) carriageReturnInternal() {
	s.x = 0
}

// ShiftIn switches glyph translation to G0.
func (s *Screen) ShiftIn() {
	s.currentCharset = CharsetG0
}

// ShiftOut switches glyph translation to G1.
func (s *Screen) ShiftOut() {
	s.currentCharset = CharsetG1
}

// Bell notifies the configured BellProvider.
func (s *Screen) Bell() {
	if s.middleware != nil && s.middleware.Bell != nil {
		s.middleware.Bell(s.bell.Ring)
		return
	}
	s.bell.Ring()
}

// Resize changes the screen shape. Rows are adjusted first (growing
// appends blank rows at the bottom, shrinking removes rows from the
// top), then columns (growing right-pads each row, shrinking truncates
// each row on the right). rows and cols must be strictly positive.
func (s *Screen) Resize(rows, cols int) (newRows, newCols int) {
	if rows <= 0 || cols <= 0 {
		panic("vt102: Resize requires strictly positive rows and cols")
	}

	if rows > s.rows {
		for i := s.rows; i < rows; i++ {
			s.display = append(s.display, blankRow(s.cols))
			s.attrs = append(s.attrs, make([]CellAttribute, s.cols))
		}
	} else if rows < s.rows {
		drop := s.rows - rows
		s.display = s.display[drop:]
		s.attrs = s.attrs[drop:]
	}
	s.rows = rows

	if cols > s.cols {
		pad := cols - s.cols
		for i := range s.display {
			s.display[i] = append(s.display[i], blankRow(pad)...)
			s.attrs[i] = append(s.attrs[i], make([]CellAttribute, pad)...)
		}
	} else if cols < s.cols {
		for i := range s.display {
			s.display[i] = s.display[i][:cols]
			s.attrs[i] = s.attrs[i][:cols]
		}
	}
	s.cols = cols

	s.x = clamp(s.x, 0, s.cols-1)
	s.y = clamp(s.y, 0, s.rows-1)

	return s.rows, s.cols
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
