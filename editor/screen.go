package editor

import (
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"
)

/*** append buffer ***/

// appendBuffer accumulates one whole frame so the terminal sees a single
// atomic write instead of a flickering sequence of small ones.
type appendBuffer struct {
	b []byte
}

func (ab *appendBuffer) append(s []byte) {
	ab.b = append(ab.b, s...)
}

func (ab *appendBuffer) appendString(s string) {
	ab.b = append(ab.b, s...)
}

/*** output ***/

// syntaxToGraphics maps a highlight tag to its SGR color and style codes.
func syntaxToGraphics(hl byte) (int, int) {
	switch hl {
	case HL_COMMENT:
		return ANSI_COLOR_CYAN, 0
	case HL_KEYWORD1:
		return ANSI_COLOR_YELLOW, 0
	case HL_KEYWORD2:
		return ANSI_COLOR_GREEN, 0
	case HL_STRING:
		return ANSI_COLOR_MAGENTA, 0
	case HL_NUMBER:
		return ANSI_COLOR_RED, 0
	case HL_MATCH:
		return ANSI_COLOR_BLUE, ANSI_REVERSE
	default:
		return ANSI_COLOR_DEFAULT, 0
	}
}

// Scroll re-derives the render column and drags the offsets so the cursor
// stays inside the visible window. Runs before every paint.
func (e *Editor) Scroll() {
	e.rx = 0
	if e.cy < len(e.row) {
		e.rx = e.row[e.cy].cxToRx(e.cx)
	}

	if e.cy < e.rowOffset {
		e.rowOffset = e.cy
	}
	if e.cy >= e.rowOffset+e.screenRows {
		e.rowOffset = e.cy - e.screenRows + 1
	}

	if e.rx < e.colOffset {
		e.colOffset = e.rx
	}
	if e.rx >= e.colOffset+e.screenCols {
		e.colOffset = e.rx - e.screenCols + 1
	}
}

// emitGraphics writes the SGR switch for a tag change: full reset, then
// the new tag's style and color when it is not plain text.
func emitGraphics(abuf *appendBuffer, hl byte) {
	abuf.appendString(COLORS_RESET)
	color, style := syntaxToGraphics(hl)
	if style != 0 {
		abuf.append(fmt.Appendf(nil, "\x1b[%dm", style))
	}
	if color != ANSI_COLOR_DEFAULT {
		abuf.append(fmt.Appendf(nil, "\x1b[%dm", color))
	}
}

func (e *Editor) drawRows(abuf *appendBuffer) {
	for y := 0; y < e.screenRows; y++ {
		filerow := y + e.rowOffset
		if filerow >= len(e.row) {
			if len(e.row) == 0 && y == e.screenRows/3 {
				welcome := "Gilo editor -- version " + GILO_VERSION
				welcomelen := min(len(welcome), e.screenCols)
				padding := (e.screenCols - welcomelen) / 2
				if padding > 0 {
					abuf.appendString("~")
					padding--
				}
				for i := 0; i < padding; i++ {
					abuf.appendString(" ")
				}
				abuf.appendString(welcome[:welcomelen])
			} else {
				abuf.appendString("~")
			}
		} else {
			lineLen := min(max(len(e.row[filerow].render)-e.colOffset, 0), e.screenCols)
			start := e.colOffset
			hl := e.row[filerow].hl
			render := e.row[filerow].render
			currentHl := HL_NORMAL
			for j := 0; j < lineLen; j++ {
				c := render[start+j]
				h := hl[start+j]
				if isControl(c) {
					// Inverted placeholder glyph; the inversion resets
					// attributes, so re-arm the active highlight after it.
					sym := byte('?')
					if c <= 26 {
						sym = '@' + c
					}
					abuf.appendString(COLORS_INVERT)
					abuf.append([]byte{sym})
					abuf.appendString(COLORS_RESET)
					if currentHl != HL_NORMAL {
						emitGraphics(abuf, currentHl)
					}
				} else {
					if h != currentHl {
						emitGraphics(abuf, h)
						currentHl = h
					}
					abuf.append([]byte{c})
				}
			}
			if currentHl != HL_NORMAL {
				abuf.appendString(COLORS_RESET)
			}
		}

		abuf.appendString(CLEAR_LINE)
		abuf.appendString("\r\n")
	}
}

func (e *Editor) drawStatusBar(abuf *appendBuffer) {
	abuf.appendString(COLORS_INVERT)

	filename := "[No Name]"
	if e.filename != "" {
		filename = runewidth.Truncate(e.filename, 20, "")
	}
	dirtyFlag := ""
	if e.dirty > 0 {
		dirtyFlag = "(modified)"
	}
	status := fmt.Sprintf("%s - %d lines %s", filename, len(e.row), dirtyFlag)
	status = runewidth.Truncate(status, e.screenCols, "")
	statusLen := runewidth.StringWidth(status)

	filetype := "no ft"
	if e.syntax != nil {
		filetype = e.syntax.filetype
	}
	rstatus := fmt.Sprintf("%s | %d/%d", filetype, e.cy+1, len(e.row))
	rstatusLen := runewidth.StringWidth(rstatus)

	abuf.appendString(status)
	for statusLen < e.screenCols {
		if e.screenCols-statusLen == rstatusLen {
			abuf.appendString(rstatus)
			break
		}
		abuf.appendString(" ")
		statusLen++
	}

	abuf.appendString(COLORS_RESET)
	abuf.appendString("\r\n")
}

func (e *Editor) drawMessageBar(abuf *appendBuffer) {
	abuf.appendString(CLEAR_LINE)
	if time.Since(e.statusMessageTime) < 5*time.Second {
		abuf.appendString(runewidth.Truncate(e.statusMessage, e.screenCols, ""))
	}
}

// RefreshScreen assembles one frame and flushes it in a single write. A
// short or failed write leaves the screen in an unknown state and is
// fatal.
func (e *Editor) RefreshScreen() {
	e.Scroll()

	var abuf appendBuffer

	abuf.appendString(CURSOR_HIDE)
	abuf.appendString(CURSOR_HOME)

	e.drawRows(&abuf)
	e.drawStatusBar(&abuf)
	e.drawMessageBar(&abuf)

	abuf.append(fmt.Appendf(nil, CURSOR_POSITION_FORMAT, e.cy-e.rowOffset+1, e.rx-e.colOffset+1))
	abuf.appendString(CURSOR_SHOW)

	n, err := e.out.Write(abuf.b)
	if err != nil {
		e.Die("writing frame: %v", err)
	}
	if n != len(abuf.b) {
		e.Die("writing frame: short write %d/%d bytes", n, len(abuf.b))
	}
}
