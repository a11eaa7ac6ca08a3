package editor

import (
	"bytes"
	"slices"
)

/*** prompt ***/

// Prompt runs a nested line-input loop on the message bar. The format
// string must contain one %s slot for the in-progress input. Enter on a
// non-empty buffer confirms; Escape cancels and returns "". The callback,
// when given, observes every keystroke including the final Enter/Escape so
// a cancel-aware caller can clean up.
func (e *Editor) Prompt(prompt string, callback func([]byte, int)) string {
	buf := make([]byte, 0, 128)

	for {
		e.SetStatusMessage(prompt, string(buf))
		e.RefreshScreen()

		key, err := e.readKey()
		if err != nil {
			e.Die("reading key: %v", err)
		}

		switch key {
		case DELETE_KEY, BACKSPACE, withControlKey('h'):
			if len(buf) != 0 {
				buf = buf[:len(buf)-1]
			}

		case '\x1b':
			e.SetStatusMessage("")
			if callback != nil {
				callback(buf, key)
			}
			return ""

		case '\r':
			if len(buf) != 0 {
				e.SetStatusMessage("")
				if callback != nil {
					callback(buf, key)
				}
				return string(buf)
			}

		default:
			if key < 128 && !isControl(byte(key)) {
				buf = append(buf, byte(key))
			}
		}

		if callback != nil {
			callback(buf, key)
		}
	}
}

/*** find ***/

// searchState lives for one search session. savedHl is a single-slot
// snapshot of the one row currently carrying the Match overlay; restoring
// it before each step keeps the overlay from corrupting classifier output.
type searchState struct {
	lastMatch   int
	direction   int
	savedHlLine int
	savedHl     []byte
}

func newSearchState() searchState {
	return searchState{lastMatch: -1, direction: 1}
}

func (e *Editor) findCallback(query []byte, key int) {
	if e.search.savedHl != nil {
		copy(e.row[e.search.savedHlLine].hl, e.search.savedHl)
		e.search.savedHl = nil
	}

	switch key {
	case '\r', '\x1b':
		e.search = newSearchState()
		return
	case ARROW_RIGHT, ARROW_DOWN:
		e.search.direction = 1
	case ARROW_LEFT, ARROW_UP:
		e.search.direction = -1
	default:
		e.search.lastMatch = -1
		e.search.direction = 1
	}

	if e.search.lastMatch == -1 {
		e.search.direction = 1
	}
	current := e.search.lastMatch
	if current == -1 {
		current = e.cy - e.search.direction
	}

	for range e.row {
		current += e.search.direction
		if current == -1 {
			current = len(e.row) - 1
		} else if current == len(e.row) {
			current = 0
		}

		row := &e.row[current]
		match := bytes.Index(row.render, query)
		if match != -1 {
			e.search.lastMatch = current
			e.cy = current
			e.cx = row.rxToCx(match)
			// Force Scroll to re-anchor the viewport on the next paint
			e.rowOffset = len(e.row)

			e.search.savedHlLine = current
			e.search.savedHl = slices.Clone(row.hl)
			for k := match; k < match+len(query) && k < len(row.hl); k++ {
				row.hl[k] = HL_MATCH
			}
			break
		}
	}
}

// Find runs an incremental search session. Cancelling restores the cursor
// and viewport saved at entry; confirming leaves the cursor on the last
// located match.
func (e *Editor) Find() {
	savedCx := e.cx
	savedCy := e.cy
	savedColOffset := e.colOffset
	savedRowOffset := e.rowOffset

	query := e.Prompt("Search: %s (Use ESC/Arrows/Enter)", e.findCallback)

	if query == "" {
		e.cx = savedCx
		e.cy = savedCy
		e.colOffset = savedColOffset
		e.rowOffset = savedRowOffset
	}
}
