package editor

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

/*** helper ***/

// Config Constants
const (
	GILO_VERSION = "0.1.0"
	TAB_STOP     = 4
	QUIT_TIMES   = 3
)

// Key aliases. Values above 255 are virtual codes produced by the escape
// sequence decoder, everything below is a literal byte.
const (
	BACKSPACE  = 127 // ASCII backspace
	ARROW_LEFT = iota + 1000
	ARROW_RIGHT
	ARROW_UP
	ARROW_DOWN
	DELETE_KEY
	HOME_KEY
	END_KEY
	PAGE_UP
	PAGE_DOWN
)

// Check if the byte is a control character
func isControl(c byte) bool {
	return c < 32 || c == 127
}

// Check if the byte is a digit character
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Convert a character to its control key equivalent
func withControlKey(c int) int {
	return c & 0x1f
}

/*** data ***/

// Editor holds the entire state of one editing session: the document rows,
// cursor and viewport, the bound syntax profile and the terminal endpoints.
// There is no package-level mutable state.
type Editor struct {
	cx, cy            int
	rx                int
	rowOffset         int
	colOffset         int
	screenRows        int
	screenCols        int
	row               []editorRow
	dirty             int // counts edits since the last load or save
	filename          string
	statusMessage     string
	statusMessageTime time.Time
	syntax            *editorSyntax
	search            searchState
	quitTimes         int
	originalState     *term.State

	// Terminal endpoints. Bound to stdin/stdout by NewEditor, replaced
	// with in-memory buffers by tests.
	in  io.Reader
	out io.Writer
}

// NewEditor creates an editor bound to the process terminal.
func NewEditor() *Editor {
	return &Editor{
		quitTimes: QUIT_TIMES,
		search:    newSearchState(),
		in:        os.Stdin,
		out:       os.Stdout,
	}
}

// Init queries the terminal size and prepares the editor for the first
// frame. The bottom two screen lines are reserved for the status and
// message bars.
func (e *Editor) Init() error {
	rows, cols, err := e.windowSize()
	if err != nil {
		return fmt.Errorf("getting window size: %w", err)
	}
	e.screenRows = rows - 2
	e.screenCols = cols
	e.quitTimes = QUIT_TIMES
	e.search = newSearchState()
	return nil
}

/*** terminal lifecycle ***/

// Die restores the terminal, reports the failing operation on stderr and
// terminates the process. Used for the fatal error tier only.
func (e *Editor) Die(format string, args ...any) {
	e.RestoreTerminal()
	os.Stdout.WriteString(CLEAR_SCREEN)
	os.Stdout.WriteString(CURSOR_HOME)
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

/*** status messages ***/

func (e *Editor) SetStatusMessage(format string, args ...any) {
	e.statusMessage = fmt.Sprintf(format, args...)
	e.statusMessageTime = time.Now()
}

/*** input ***/

func (e *Editor) MoveCursor(key int) {
	var row *editorRow
	if e.cy < len(e.row) {
		row = &e.row[e.cy]
	}

	switch key {
	case ARROW_LEFT:
		if e.cx != 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = len(e.row[e.cy].chars)
		}
	case ARROW_RIGHT:
		if row != nil && e.cx < len(row.chars) {
			e.cx++
		} else if row != nil && e.cx == len(row.chars) {
			e.cy++
			e.cx = 0
		}
	case ARROW_UP:
		if e.cy != 0 {
			e.cy--
		}
	case ARROW_DOWN:
		if e.cy < len(e.row) {
			e.cy++
		}
	}

	// Snap the cursor back inside the row it landed on
	rowlen := 0
	if e.cy < len(e.row) {
		rowlen = len(e.row[e.cy].chars)
	}
	if e.cx > rowlen {
		e.cx = rowlen
	}
}

// ProcessKeypress reads one key event and dispatches it. A read timeout is
// normal control flow inside readKey; an actual read error is fatal.
func (e *Editor) ProcessKeypress() {
	key, err := e.readKey()
	if err != nil {
		e.Die("reading key: %v", err)
	}

	switch key {
	case '\r':
		e.InsertNewline()

	case withControlKey('q'):
		if e.dirty > 0 && e.quitTimes > 0 {
			e.SetStatusMessage("WARNING: File has unsaved changes. Press Ctrl-Q %d more times to quit.", e.quitTimes)
			e.quitTimes--
			return
		}
		e.RestoreTerminal()
		os.Stdout.WriteString(CLEAR_SCREEN)
		os.Stdout.WriteString(CURSOR_HOME)
		os.Exit(0)

	case withControlKey('s'):
		e.Save()

	case withControlKey('f'):
		e.Find()

	case withControlKey('g'):
		e.Help()

	case withControlKey('r'):
		e.Redraw()

	case HOME_KEY:
		e.cx = 0

	case END_KEY:
		if e.cy < len(e.row) {
			e.cx = len(e.row[e.cy].chars)
		}

	case BACKSPACE, withControlKey('h'):
		e.DeleteChar()

	case DELETE_KEY:
		e.MoveCursor(ARROW_RIGHT)
		e.DeleteChar()

	case PAGE_UP:
		e.cy = e.rowOffset
		for i := 0; i < e.screenRows; i++ {
			e.MoveCursor(ARROW_UP)
		}

	case PAGE_DOWN:
		e.cy = min(e.rowOffset+e.screenRows-1, len(e.row))
		for i := 0; i < e.screenRows; i++ {
			e.MoveCursor(ARROW_DOWN)
		}

	case ARROW_LEFT, ARROW_RIGHT, ARROW_UP, ARROW_DOWN:
		e.MoveCursor(key)

	case withControlKey('l'), '\x1b':
		// Ctrl-L and a bare escape are deliberate no-ops

	default:
		if key <= 255 {
			e.InsertChar(byte(key))
		}
	}

	e.quitTimes = QUIT_TIMES // any non-quit key resets the confirmation counter
}
