package editor

import (
	"strings"
	"testing"
)

func TestRenderProjectionRoundTrip(t *testing.T) {
	rows := []string{
		"",
		"plain text",
		"\tindented",
		"a\tb\tc",
		"\t\t\t",
		"trailing tab\t",
	}

	for _, chars := range rows {
		row := &editorRow{chars: []byte(chars)}
		for cx := 0; cx <= len(row.chars); cx++ {
			rx := row.cxToRx(cx)
			if got := row.rxToCx(rx); got != cx {
				t.Errorf("row %q: rxToCx(cxToRx(%d)) = %d", chars, cx, got)
			}
		}
	}
}

func TestRxToCxPastRowEnd(t *testing.T) {
	row := &editorRow{chars: []byte("ab\tcd")}
	row.update(newTestEditor(""))

	if got := row.rxToCx(1000); got != len(row.chars) {
		t.Errorf("expected clamp to %d, got %d", len(row.chars), got)
	}
}

func TestTabExpansion(t *testing.T) {
	e := newTestEditor("")
	row := &editorRow{chars: []byte("\tx")}
	row.update(e)

	if string(row.render) != "    x" {
		t.Errorf("expected %q, got %q", "    x", row.render)
	}
}

func TestTabStopsNotAtBoundary(t *testing.T) {
	e := newTestEditor("")
	row := &editorRow{chars: []byte("ab\tx")}
	row.update(e)

	// tab after two chars advances to the next stop, not a full stop width
	if string(row.render) != "ab  x" {
		t.Errorf("expected %q, got %q", "ab  x", row.render)
	}
}

func TestDerivedLengthsUnderEdits(t *testing.T) {
	e := newTestEditor("")
	row := &editorRow{}

	check := func(step string) {
		t.Helper()
		tabs := strings.Count(string(row.chars), "\t")
		want := len(row.chars) + tabs*(TAB_STOP-1)
		if len(row.render) != want {
			t.Errorf("%s: render length %d, want %d", step, len(row.render), want)
		}
		if len(row.hl) != len(row.render) {
			t.Errorf("%s: hl length %d != render length %d", step, len(row.hl), len(row.render))
		}
	}

	for i, c := range []byte("a\tb\tc") {
		row.insertChar(e, i, c)
		check("insert")
	}
	row.insertChar(e, 2, '\t')
	check("insert tab mid-row")
	for len(row.chars) > 0 {
		row.deleteChar(e, 0)
		check("delete")
	}
}

func TestRowInsertCharClampsColumn(t *testing.T) {
	e := newTestEditor("")
	row := &editorRow{chars: []byte("ab")}
	row.update(e)

	row.insertChar(e, 99, 'c')

	if string(row.chars) != "abc" {
		t.Errorf("expected out-of-range insert to append, got %q", row.chars)
	}
}

func TestRowDeleteChar(t *testing.T) {
	e := newTestEditor("")
	row := &editorRow{chars: []byte("hello")}
	row.update(e)

	row.deleteChar(e, 1)

	if string(row.chars) != "hllo" {
		t.Errorf("expected %q, got %q", "hllo", row.chars)
	}
}

func TestRowDeleteCharOutOfRangeIsNoop(t *testing.T) {
	e := newTestEditor("")
	row := &editorRow{chars: []byte("ab")}
	row.update(e)
	dirty := e.dirty

	row.deleteChar(e, 2)
	row.deleteChar(e, -1)

	if string(row.chars) != "ab" {
		t.Errorf("expected row unchanged, got %q", row.chars)
	}
	if e.dirty != dirty {
		t.Error("expected dirty unchanged for no-op delete")
	}
}

func TestInsertRowShiftsFollowing(t *testing.T) {
	e := newTestEditor("")
	setRows(t, e, "one", "three")

	e.InsertRow(1, []byte("two"))

	want := []string{"one", "two", "three"}
	for i, w := range want {
		if string(e.row[i].chars) != w {
			t.Errorf("row %d: expected %q, got %q", i, w, e.row[i].chars)
		}
	}
	if e.dirty == 0 {
		t.Error("expected dirty to be incremented")
	}
}

func TestInsertRowOutOfRangeIsNoop(t *testing.T) {
	e := newTestEditor("")
	setRows(t, e, "a")

	e.InsertRow(5, []byte("x"))
	e.InsertRow(-1, []byte("x"))

	if len(e.row) != 1 {
		t.Errorf("expected 1 row, got %d", len(e.row))
	}
}

func TestDeleteRowShiftsFollowing(t *testing.T) {
	e := newTestEditor("")
	setRows(t, e, "one", "two", "three")

	e.DeleteRow(1)

	if len(e.row) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(e.row))
	}
	if string(e.row[0].chars) != "one" || string(e.row[1].chars) != "three" {
		t.Errorf("unexpected rows %q/%q", e.row[0].chars, e.row[1].chars)
	}
}

func TestDeleteCharMergesWithPreviousRow(t *testing.T) {
	e := newTestEditor("")
	setRows(t, e, "ab", "cd")
	e.cy, e.cx = 1, 0

	e.DeleteChar()

	if len(e.row) != 1 {
		t.Fatalf("expected rows to merge, got %d rows", len(e.row))
	}
	if string(e.row[0].chars) != "abcd" {
		t.Errorf("expected %q, got %q", "abcd", e.row[0].chars)
	}
	if e.cy != 0 || e.cx != 2 {
		t.Errorf("expected cursor at prior end of row (2,0), got (%d,%d)", e.cx, e.cy)
	}
}

func TestDeleteCharAtOriginIsNoop(t *testing.T) {
	e := newTestEditor("")
	setRows(t, e, "ab")
	e.cy, e.cx = 0, 0

	e.DeleteChar()

	if string(e.row[0].chars) != "ab" {
		t.Errorf("expected row unchanged, got %q", e.row[0].chars)
	}
}

func TestInsertNewlineAtColumnZero(t *testing.T) {
	e := newTestEditor("")
	setRows(t, e, "abc")
	e.cy, e.cx = 0, 0

	e.InsertNewline()

	if len(e.row) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(e.row))
	}
	if string(e.row[0].chars) != "" || string(e.row[1].chars) != "abc" {
		t.Errorf("unexpected rows %q/%q", e.row[0].chars, e.row[1].chars)
	}
}

func TestInsertCharOnAppendRow(t *testing.T) {
	e := newTestEditor("")
	setRows(t, e, "a")
	e.cy, e.cx = 1, 0 // one past the last row is the valid append position

	e.InsertChar('b')

	if len(e.row) != 2 || string(e.row[1].chars) != "b" {
		t.Fatalf("expected appended row %q, got %v", "b", e.row)
	}
}
