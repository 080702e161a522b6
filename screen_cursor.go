package vt102

// Tab moves the cursor to the smallest tab stop greater than the
// current column, or to the last column if none remain.
func (s *Screen) Tab() {
	if s.middleware != nil && s.middleware.Tab != nil {
		s.middleware.Tab(s.tabInternal)
		return
	}
	s.tabInternal()
}

func (s *Screen) tabInternal() {
	next := s.cols - 1
	for stop := range s.tabstops {
		if stop > s.x && stop < next {
			next = stop
		}
	}
	s.x = next
}

// SetTabStop adds the current column to the tab-stop set. There is no
// HTS/TBC escape or CSI final byte that dispatches this, so it is not
// wired to any parser event; call it directly.
func (s *Screen) SetTabStop() {
	s.tabstops[s.x] = true
}

// ClearTabStop removes a tab stop. typ 0x30 clears the stop at the
// current column (a no-op if absent); typ 0x33 clears every stop.
func (s *Screen) ClearTabStop(typ int) {
	switch typ {
	case tabClearCurrent:
		delete(s.tabstops, s.x)
	case tabClearAll:
		s.tabstops = make(map[int]bool)
	}
}

// Index moves the cursor down one row, scrolling the grid up when
// already at the bottom row.
func (s *Screen) Index() {
	if s.middleware != nil && s.middleware.Index != nil {
		s.middleware.Index(s.indexInternal)
		return
	}
	s.indexInternal()
}

func (s *Screen) indexInternal() {
	if s.y+1 == s.rows {
		s.scrollUp()
		return
	}
	s.y++
}

// ReverseIndex moves the cursor up one row, scrolling the grid down
// when already at the top row.
func (s *Screen) ReverseIndex() {
	if s.middleware != nil && s.middleware.ReverseIndex != nil {
		s.middleware.ReverseIndex(s.reverseIndexInternal)
		return
	}
	s.reverseIndexInternal()
}

func (s *Screen) reverseIndexInternal() {
	if s.y == 0 {
		s.scrollDown()
		return
	}
	s.y--
}

// Linefeed performs Index, then returns the cursor to column 0.
func (s *Screen) Linefeed() {
	if s.middleware != nil && s.middleware.Linefeed != nil {
		s.middleware.Linefeed(s.linefeedInternal)
		return
	}
	s.linefeedInternal()
}

func (s *Screen) linefeedInternal() {
	s.Index()
	s.x = 0
}

// ReverseLinefeed performs ReverseIndex, then returns the cursor to
// column 0.
func (s *Screen) ReverseLinefeed() {
	if s.middleware != nil && s.middleware.ReverseLinefeed != nil {
		s.middleware.ReverseLinefeed(s.reverseLinefeedInternal)
		return
	}
	s.reverseLinefeedInternal()
}

func (s *Screen) reverseLinefeedInternal() {
	s.ReverseIndex()
	s.x = 0
}

// scrollUp drops the top row and appends a fresh blank row at the
// bottom, keeping the grid at exactly s.rows rows.
func (s *Screen) scrollUp() {
	s.display = append(s.display[1:], blankRow(s.cols))
	s.attrs = append(s.attrs[1:], make([]CellAttribute, s.cols))
}

// scrollDown drops the bottom row and prepends a fresh blank row at
// the top, keeping the grid at exactly s.rows rows.
func (s *Screen) scrollDown() {
	newDisplay := make([][]rune, s.rows)
	newAttrs := make([][]CellAttribute, s.rows)
	newDisplay[0] = blankRow(s.cols)
	newAttrs[0] = make([]CellAttribute, s.cols)
	copy(newDisplay[1:], s.display[:s.rows-1])
	copy(newAttrs[1:], s.attrs[:s.rows-1])
	s.display = newDisplay
	s.attrs = newAttrs
}

// Home moves the cursor to (0, 0). No CSI/escape final byte dispatches
// this, so it is not wired to any parser event; call it directly.
func (s *Screen) Home() {
	s.x, s.y = 0, 0
}

// CursorUp moves the cursor up n rows, stopping at row 0.
func (s *Screen) CursorUp(n int) {
	if s.middleware != nil && s.middleware.CursorUp != nil {
		s.middleware.CursorUp(n, s.cursorUpInternal)
		return
	}
	s.cursorUpInternal(n)
}

func (s *Screen) cursorUpInternal(n int) {
	s.y = clamp(s.y-n, 0, s.rows-1)
}

// CursorDown moves the cursor down n rows, stopping at the last row.
func (s *Screen) CursorDown(n int) {
	if s.middleware != nil && s.middleware.CursorDown != nil {
		s.middleware.CursorDown(n, s.cursorDownInternal)
		return
	}
	s.cursorDownInternal(n)
}

func (s *Screen) cursorDownInternal(n int) {
	s.y = clamp(s.y+n, 0, s.rows-1)
}

// CursorLeft moves the cursor left n columns, stopping at column 0.
func (s *Screen) CursorLeft(n int) {
	if s.middleware != nil && s.middleware.CursorLeft != nil {
		s.middleware.CursorLeft(n, s.cursorLeftInternal)
		return
	}
	s.cursorLeftInternal(n)
}

func (s *Screen) cursorLeftInternal(n int) {
	s.x = clamp(s.x-n, 0, s.cols-1)
}

// CursorRight moves the cursor right n columns, stopping at the last
// column.
func (s *Screen) CursorRight(n int) {
	if s.middleware != nil && s.middleware.CursorRight != nil {
		s.middleware.CursorRight(n, s.cursorRightInternal)
		return
	}
	s.cursorRightInternal(n)
}

func (s *Screen) cursorRightInternal(n int) {
	s.x = clamp(s.x+n, 0, s.cols-1)
}

// CursorMove moves the cursor to the 1-indexed (row, col), treating 0
// as 1, and clamps the result to the grid.
func (s *Screen) CursorMove(row, col int) {
	if s.middleware != nil && s.middleware.CursorMove != nil {
		s.middleware.CursorMove(row, col, s.cursorMoveInternal)
		return
	}
	s.cursorMoveInternal(row, col)
}

func (s *Screen) cursorMoveInternal(row, col int) {
	if row == 0 {
		row = 1
	}
	if col == 0 {
		col = 1
	}
	s.y = clamp(row-1, 0, s.rows-1)
	s.x = clamp(col-1, 0, s.cols-1)
}

// StoreCursor pushes the current cursor position onto the save stack.
func (s *Screen) StoreCursor() {
	if s.middleware != nil && s.middleware.StoreCursor != nil {
		s.middleware.StoreCursor(s.storeCursorInternal)
		return
	}
	s.storeCursorInternal()
}

func (s *Screen) storeCursorInternal() {
	s.cursorSaveStack = append(s.cursorSaveStack, cursorPos{x: s.x, y: s.y})
}

// RestoreCursor pops the most recently saved cursor position and
// restores it. A no-op if the save stack is empty.
func (s *Screen) RestoreCursor() {
	if s.middleware != nil && s.middleware.RestoreCursor != nil {
		s.middleware.RestoreCursor(s.restoreCursorInternal)
		return
	}
	s.restoreCursorInternal()
}

func (s *Screen) restoreCursorInternal() {
	n := len(s.cursorSaveStack)
	if n == 0 {
		return
	}
	top := s.cursorSaveStack[n-1]
	s.cursorSaveStack = s.cursorSaveStack[:n-1]
	s.x, s.y = top.x, top.y
}
