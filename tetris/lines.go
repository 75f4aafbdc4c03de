package tetris

// IncrementFrom adds diff to every element of arr from idx onwards.
// Elements before idx are left unchanged.
func IncrementFrom(arr []uint, idx uint, diff uint) {
	for i := idx; i < uint(len(arr)); i++ {
		arr[i] += diff
	}
}

// ClearFullRows removes every full row and lets the cells above fall into
// the gap. All full rows are cleared in one pass so that a multi-row clear is
// a single event. It returns the cleared rows in ascending order, or nil.
func (s *Stack) ClearFullRows(dims Dimensions) []uint {
	full := s.FullRows(dims)
	if len(full) == 0 {
		return nil
	}

	rows := dims.Rows()
	cleared := make([]bool, rows)
	shift := make([]uint, rows)
	for _, y := range full {
		cleared[y] = true
		IncrementFrom(shift, y, 1)
	}

	kept := make([]Tetromino, 0, len(s.pieces))
	for _, t := range s.pieces {
		t = t.retain(func(c Coord) bool { return !cleared[c.Y] })
		if t.n == 0 {
			continue
		}
		for i := range t.cells[:t.n] {
			t.cells[i].Y -= shift[t.cells[i].Y]
		}
		kept = append(kept, t)
	}

	s.pieces = kept
	s.rebuild()
	return full
}
