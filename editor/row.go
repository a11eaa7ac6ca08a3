package editor

import "slices"

// editorRow is one document line: the raw bytes plus two derived
// projections that are regenerated on every mutation and never read stale.
// render expands tabs to TAB_STOP boundaries; hl carries one highlight tag
// per rendered byte, so len(hl) == len(render) always holds.
type editorRow struct {
	chars  []byte
	render []byte
	hl     []byte
}

/*** render projection ***/

// cxToRx maps a raw column to its rendered column. A tab advances to the
// next TAB_STOP boundary, every other byte advances by one cell.
func (row *editorRow) cxToRx(cx int) int {
	rx := 0
	for j := 0; j < cx; j++ {
		if row.chars[j] == '\t' {
			rx += TAB_STOP - (rx % TAB_STOP)
		} else {
			rx++
		}
	}
	return rx
}

// rxToCx is the inverse walk: it returns the raw column whose cumulative
// render width first exceeds rx, or the row length when rx lies past the
// end of the rendered row.
func (row *editorRow) rxToCx(rx int) int {
	curRx := 0
	var cx int
	for cx = 0; cx < len(row.chars); cx++ {
		if row.chars[cx] == '\t' {
			curRx += (TAB_STOP - 1) - (curRx % TAB_STOP)
		}
		curRx++

		if curRx > rx {
			return cx
		}
	}
	return cx
}

// update regenerates the rendered projection and reclassifies the row.
func (row *editorRow) update(e *Editor) {
	tabs := 0
	for _, c := range row.chars {
		if c == '\t' {
			tabs++
		}
	}

	row.render = make([]byte, 0, len(row.chars)+tabs*(TAB_STOP-1))
	for _, c := range row.chars {
		if c == '\t' {
			row.render = append(row.render, ' ')
			for len(row.render)%TAB_STOP != 0 {
				row.render = append(row.render, ' ')
			}
		} else {
			row.render = append(row.render, c)
		}
	}

	row.updateSyntax(e.syntax)
}

/*** row operations ***/

func (e *Editor) InsertRow(at int, s []byte) {
	if at < 0 || at > len(e.row) {
		return
	}

	newRow := editorRow{chars: slices.Clone(s)}
	e.row = slices.Insert(e.row, at, newRow)

	e.row[at].update(e)
	e.dirty++
}

func (e *Editor) DeleteRow(at int) {
	if at < 0 || at >= len(e.row) {
		return
	}

	e.row = slices.Delete(e.row, at, at+1)
	e.dirty++
}

// insertChar splices one byte into the row; an out-of-range column clamps
// to an append.
func (row *editorRow) insertChar(e *Editor, at int, c byte) {
	if at < 0 || at > len(row.chars) {
		at = len(row.chars)
	}

	row.chars = slices.Insert(row.chars, at, c)

	row.update(e)
	e.dirty++
}

func (row *editorRow) appendBytes(e *Editor, s []byte) {
	row.chars = append(row.chars, s...)

	row.update(e)
	e.dirty++
}

func (row *editorRow) deleteChar(e *Editor, at int) {
	if at < 0 || at >= len(row.chars) {
		return
	}

	row.chars = slices.Delete(row.chars, at, at+1)

	row.update(e)
	e.dirty++
}

/*** editor operations ***/

func (e *Editor) InsertChar(c byte) {
	if e.cy == len(e.row) {
		e.InsertRow(len(e.row), nil)
	}
	e.row[e.cy].insertChar(e, e.cx, c)
	e.cx++
}

// InsertNewline splits the current row at the cursor: the suffix moves to a
// fresh row below and the original is truncated at the split point.
func (e *Editor) InsertNewline() {
	if e.cx == 0 {
		e.InsertRow(e.cy, nil)
	} else {
		row := &e.row[e.cy]
		e.InsertRow(e.cy+1, row.chars[e.cx:])

		// InsertRow may have reallocated the backing array
		row = &e.row[e.cy]
		row.chars = row.chars[:e.cx]
		row.update(e)
	}
	e.cy++
	e.cx = 0
}

// DeleteChar removes the byte before the cursor. At column 0 of a row
// below the first, the row merges into its predecessor instead, leaving
// the cursor at the former end of that row. At the origin it is a no-op.
func (e *Editor) DeleteChar() {
	if e.cy == len(e.row) {
		return
	}
	if e.cx == 0 && e.cy == 0 {
		return
	}

	row := &e.row[e.cy]
	if e.cx > 0 {
		row.deleteChar(e, e.cx-1)
		e.cx--
	} else {
		e.cx = len(e.row[e.cy-1].chars)
		e.row[e.cy-1].appendBytes(e, row.chars)
		e.DeleteRow(e.cy)
		e.cy--
	}
}
