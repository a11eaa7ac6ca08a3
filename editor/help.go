package editor

/*** help screen ***/

// editorState is a snapshot of everything the help screen borrows: the
// document rows, cursor, viewport and bound syntax profile.
type editorState struct {
	row       []editorRow
	cx, cy    int
	rowOffset int
	colOffset int
	syntax    *editorSyntax
}

func (e *Editor) getState() editorState {
	return editorState{
		row:       e.row,
		cx:        e.cx,
		cy:        e.cy,
		rowOffset: e.rowOffset,
		colOffset: e.colOffset,
		syntax:    e.syntax,
	}
}

func (e *Editor) setState(s editorState) {
	e.row = s.row
	e.cx = s.cx
	e.cy = s.cy
	e.rowOffset = s.rowOffset
	e.colOffset = s.colOffset
	e.syntax = s.syntax
}

var helpText = []string{
	"=== GILO HELP ===",
	"",
	"NAVIGATION:",
	"  Arrow Keys       - Move cursor",
	"  Page Up/Down     - Scroll by page",
	"  Home/End         - Move to line start/end",
	"",
	"EDITING:",
	"  Ctrl-S           - Save file",
	"  Ctrl-Q           - Quit (confirmation if unsaved)",
	"  Delete/Backspace - Delete characters",
	"",
	"SEARCH:",
	"  Ctrl-F           - Find text",
	"  Arrows           - Next/previous match",
	"  Escape           - Cancel search",
	"",
	"OTHER:",
	"  Ctrl-G           - Show this help",
	"  Ctrl-R           - Redraw screen",
	"",
	"Press 'q' or Escape to close this help screen.",
}

// Help swaps the document for a read-only key reference and runs a nested
// scroll loop until 'q' or Escape, then restores the editor exactly as it
// was.
func (e *Editor) Help() {
	saved := e.getState()

	e.syntax = nil
	e.row = make([]editorRow, 0, len(helpText))
	for _, line := range helpText {
		e.row = append(e.row, editorRow{chars: []byte(line)})
		e.row[len(e.row)-1].update(e)
	}
	e.cx, e.cy = 0, 0
	e.rowOffset, e.colOffset = 0, 0
	e.SetStatusMessage("Help - arrows scroll, 'q' or ESC to exit")

	defer func() {
		e.setState(saved)
		e.SetStatusMessage("")
	}()

	for {
		e.RefreshScreen()

		key, err := e.readKey()
		if err != nil {
			e.Die("reading key: %v", err)
		}

		switch key {
		case 'q', 'Q', '\x1b':
			return

		case ARROW_UP, ARROW_DOWN, PAGE_UP, PAGE_DOWN:
			dir := ARROW_UP
			steps := 1
			if key == ARROW_DOWN || key == PAGE_DOWN {
				dir = ARROW_DOWN
			}
			if key == PAGE_UP || key == PAGE_DOWN {
				steps = e.screenRows
			}
			for i := 0; i < steps; i++ {
				e.MoveCursor(dir)
			}

		case HOME_KEY:
			e.cy = 0
			e.rowOffset = 0

		case END_KEY:
			e.cy = len(e.row)
		}
	}
}
