package editor

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

/*** raw mode ***/

// EnableRawMode switches the terminal into raw mode and arms the key-read
// timeout: VMIN=0/VTIME=1 makes every read return after at most a tenth of
// a second, which is what lets the decoder tell a bare escape key from the
// first byte of an escape sequence.
func (e *Editor) EnableRawMode() error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("not running in a terminal")
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enabling terminal raw mode: %w", err)
	}
	e.originalState = state

	raw, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return fmt.Errorf("reading termios: %w", err)
	}
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1
	if err := unix.IoctlSetTermios(fd, unix.TCSETS, raw); err != nil {
		return fmt.Errorf("setting read timeout: %w", err)
	}
	return nil
}

// RestoreTerminal undoes raw mode. Safe to call more than once.
func (e *Editor) RestoreTerminal() {
	if e.originalState != nil {
		term.Restore(int(os.Stdin.Fd()), e.originalState)
		e.originalState = nil
	}
}

/*** window size ***/

// windowSize reports the terminal dimensions as (rows, cols). When the
// ioctl path fails it falls back to parking the cursor at the bottom-right
// corner and asking the terminal where it ended up.
func (e *Editor) windowSize() (int, int, error) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err == nil && cols > 0 {
		return rows, cols, nil
	}

	if _, err := e.out.Write([]byte(CURSOR_BOTTOM_RIGHT + CURSOR_GET_POSITION)); err != nil {
		return 0, 0, err
	}
	return e.cursorPosition()
}

// cursorPosition parses the ESC[n;mR report sent in response to
// CURSOR_GET_POSITION.
func (e *Editor) cursorPosition() (int, int, error) {
	buf := make([]byte, 0, 32)
	b := make([]byte, 1)
	for len(buf) < 31 {
		n, err := e.in.Read(b)
		if err != nil || n != 1 || b[0] == 'R' {
			break
		}
		buf = append(buf, b[0])
	}

	var rows, cols int
	if _, err := fmt.Sscanf(string(buf), "\x1b[%d;%d", &rows, &cols); err != nil {
		return 0, 0, errors.New("parsing cursor position report")
	}
	return rows, cols, nil
}

// Redraw re-queries the window size and repaints; bound to Ctrl-R for
// terminals the editor cannot observe resizing.
func (e *Editor) Redraw() {
	rows, cols, err := e.windowSize()
	if err != nil {
		e.Die("getting window size: %v", err)
	}
	e.screenRows = rows - 2
	e.screenCols = cols
	e.RefreshScreen()
}

/*** key decoder ***/

// readByte performs one bounded read. With VTIME armed a timeout surfaces
// as (0, nil); that is normal control flow, not an error.
func (e *Editor) readByte() (byte, bool, error) {
	buf := make([]byte, 1)
	n, err := e.in.Read(buf)
	if err != nil {
		return 0, false, err
	}
	if n != 1 {
		return 0, false, nil
	}
	return buf[0], true, nil
}

// readKey blocks until one key event is available and resolves escape
// sequences to their virtual key codes. An escape byte followed by a read
// timeout is reported as a bare ESC; an unrecognized sequence tail also
// falls back to ESC.
func (e *Editor) readKey() (int, error) {
	var c byte
	for {
		b, ok, err := e.readByte()
		if err != nil {
			return 0, err
		}
		if ok {
			c = b
			break
		}
	}

	if c != '\x1b' {
		return int(c), nil
	}

	seq := make([]byte, 3)
	if b, ok, _ := e.readByte(); ok {
		seq[0] = b
	} else {
		return '\x1b', nil
	}
	if b, ok, _ := e.readByte(); ok {
		seq[1] = b
	} else {
		return '\x1b', nil
	}

	switch seq[0] {
	case '[':
		if seq[1] >= '0' && seq[1] <= '9' {
			if b, ok, _ := e.readByte(); ok {
				seq[2] = b
			} else {
				return '\x1b', nil
			}
			if seq[2] == '~' {
				switch seq[1] {
				case '1', '7':
					return HOME_KEY, nil
				case '3':
					return DELETE_KEY, nil
				case '4', '8':
					return END_KEY, nil
				case '5':
					return PAGE_UP, nil
				case '6':
					return PAGE_DOWN, nil
				}
			}
		} else {
			switch seq[1] {
			case 'A':
				return ARROW_UP, nil
			case 'B':
				return ARROW_DOWN, nil
			case 'C':
				return ARROW_RIGHT, nil
			case 'D':
				return ARROW_LEFT, nil
			case 'H':
				return HOME_KEY, nil
			case 'F':
				return END_KEY, nil
			}
		}
	case 'O':
		switch seq[1] {
		case 'H':
			return HOME_KEY, nil
		case 'F':
			return END_KEY, nil
		}
	}
	return '\x1b', nil
}
