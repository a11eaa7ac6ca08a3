package editor

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

/*** file i/o ***/

// RowsToBytes serializes the document: rows joined by '\n' with a trailing
// newline after the last row, no other transformation.
func (e *Editor) RowsToBytes() []byte {
	total := 0
	for _, row := range e.row {
		total += len(row.chars) + 1
	}

	buf := make([]byte, 0, total)
	for _, row := range e.row {
		buf = append(buf, row.chars...)
		buf = append(buf, '\n')
	}
	return buf
}

// loadRows replaces the document with the lines read from r, stripping
// trailing '\r' and '\n' from each.
func (e *Editor) loadRows(r io.Reader) error {
	e.row = nil
	e.cx, e.cy, e.rx = 0, 0, 0
	e.rowOffset, e.colOffset = 0, 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
			line = line[:len(line)-1]
		}
		e.InsertRow(len(e.row), line)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	e.dirty = 0
	return nil
}

// Open loads the named file into the document and binds its syntax
// profile. A missing or unreadable file is reported upward; the caller
// treats it as fatal.
func (e *Editor) Open(filename string) error {
	e.filename = filename
	e.SelectSyntaxHighlight()

	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("opening %s: %w", filename, err)
	}
	defer file.Close()

	if err := e.loadRows(file); err != nil {
		return fmt.Errorf("reading %s: %w", filename, err)
	}
	return nil
}

// Save writes the serialized document to its filename, prompting for one
// on an unnamed document. A failed save is user-visible, not fatal: the
// error lands in the message bar and dirty stays untouched.
func (e *Editor) Save() {
	if e.filename == "" {
		e.filename = e.Prompt("Save as: %s (ESC to cancel)", nil)
		if e.filename == "" {
			e.SetStatusMessage("Save aborted")
			return
		}
		e.SelectSyntaxHighlight()
	}

	buf := e.RowsToBytes()

	file, err := os.OpenFile(e.filename, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		e.SetStatusMessage("Can't save! I/O error: %v", err)
		return
	}
	defer file.Close()

	if err := file.Truncate(int64(len(buf))); err != nil {
		e.SetStatusMessage("Can't save! I/O error: %v", err)
		return
	}

	n, err := file.Write(buf)
	if err != nil {
		e.SetStatusMessage("Can't save! I/O error: %v", err)
		return
	}
	if n != len(buf) {
		e.SetStatusMessage("Can't save! Partial write: %d/%d bytes", n, len(buf))
		return
	}

	e.SetStatusMessage("%d bytes written to disk", len(buf))
	e.dirty = 0
}
