package vt102

// EraseInLine blanks part of the cursor's row. typ 0 erases from the
// cursor to the end of the row, 1 from the start through the cursor
// inclusive, 2 the entire row. Every erased cell gets the default
// attribute.
func (s *Screen) EraseInLine(typ int) {
	if s.middleware != nil && s.middleware.EraseInLine != nil {
		s.middleware.EraseInLine(typ, s.eraseInLineInternal)
		return
	}
	s.eraseInLineInternal(typ)
}

func (s *Screen) eraseInLineInternal(typ int) {
	switch typ {
	case 0:
		s.blankRange(s.y, s.x, s.cols-1)
	case 1:
		s.blankRange(s.y, 0, s.x)
	case 2:
		s.blankRange(s.y, 0, s.cols-1)
	}
}

// blankRange overwrites columns [from, to] of row with blank glyphs
// and the default attribute.
func (s *Screen) blankRange(row, from, to int) {
	for x := from; x <= to && x < s.cols; x++ {
		s.display[row][x] = ' '
		s.attrs[row][x] = DefaultAttribute
	}
}

// EraseInDisplay blanks part of the grid. typ 0 erases from the
// cursor's row through the bottom, 1 from the top through the
// cursor's row inclusive, 2 the entire grid.
func (s *Screen) EraseInDisplay(typ int) {
	if s.middleware != nil && s.middleware.EraseInDisplay != nil {
		s.middleware.EraseInDisplay(typ, s.eraseInDisplayInternal)
		return
	}
	s.eraseInDisplayInternal(typ)
}

func (s *Screen) eraseInDisplayInternal(typ int) {
	switch typ {
	case 0:
		s.blankRows(s.y, s.rows-1)
	case 1:
		s.blankRows(0, s.y)
	case 2:
		s.blankRows(0, s.rows-1)
	}
}

func (s *Screen) blankRows(from, to int) {
	for y := from; y <= to && y < s.rows; y++ {
		s.blankRange(y, 0, s.cols-1)
	}
}

// DeleteCharacters removes count characters starting at the cursor
// column on the cursor's row, shifting the remainder of the row left
// and padding the right with blanks and the default attribute. count
// is clamped to the number of cells from the cursor to the margin.
func (s *Screen) DeleteCharacters(count int) {
	if s.middleware != nil && s.middleware.DeleteCharacters != nil {
		s.middleware.DeleteCharacters(count, s.deleteCharactersInternal)
		return
	}
	s.deleteCharactersInternal(count)
}

func (s *Screen) deleteCharactersInternal(count int) {
	if count > s.cols-s.x {
		count = s.cols - s.x
	}
	if count <= 0 {
		return
	}
	row, attrRow := s.display[s.y], s.attrs[s.y]
	copy(row[s.x:], row[s.x+count:])
	copy(attrRow[s.x:], attrRow[s.x+count:])
	for x := s.cols - count; x < s.cols; x++ {
		row[x] = ' '
		attrRow[x] = DefaultAttribute
	}
}

// InsertLines inserts count blank rows starting at the cursor's row,
// shifting subsequent rows down and discarding any that fall past the
// last row.
func (s *Screen) InsertLines(count int) {
	if s.middleware != nil && s.middleware.InsertLines != nil {
		s.middleware.InsertLines(count, s.insertLinesInternal)
		return
	}
	s.insertLinesInternal(count)
}

func (s *Screen) insertLinesInternal(count int) {
	if count <= 0 {
		return
	}
	if count > s.rows-s.y {
		count = s.rows - s.y
	}

	tailDisplay := append([][]rune{}, s.display[s.y:s.rows-count]...)
	tailAttrs := append([][]CellAttribute{}, s.attrs[s.y:s.rows-count]...)

	for i := 0; i < count; i++ {
		s.display[s.y+i] = blankRow(s.cols)
		s.attrs[s.y+i] = make([]CellAttribute, s.cols)
	}
	copy(s.display[s.y+count:], tailDisplay)
	copy(s.attrs[s.y+count:], tailAttrs)
}

// DeleteLines removes count rows starting at the cursor's row,
// shifting subsequent rows up and appending blank rows with the
// default attribute to keep the grid at exactly Rows() rows.
func (s *Screen) DeleteLines(count int) {
	if s.middleware != nil && s.middleware.DeleteLines != nil {
		s.middleware.DeleteLines(count, s.deleteLinesInternal)
		return
	}
	s.deleteLinesInternal(count)
}

func (s *Screen) deleteLinesInternal(count int) {
	if count <= 0 {
		return
	}
	if count > s.rows-s.y {
		count = s.rows - s.y
	}

	tailDisplay := append([][]rune{}, s.display[s.y+count:]...)
	tailAttrs := append([][]CellAttribute{}, s.attrs[s.y+count:]...)

	copy(s.display[s.y:], tailDisplay)
	copy(s.attrs[s.y:], tailAttrs)

	for i := s.rows - count; i < s.rows; i++ {
		s.display[i] = blankRow(s.cols)
		s.attrs[i] = make([]CellAttribute, s.cols)
	}
}
