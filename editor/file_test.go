package editor

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSerializeRoundTrip(t *testing.T) {
	inputs := []string{
		"one\ntwo\nthree\n",
		"\n",
		"single\n",
		"gap\n\nafter\n",
	}

	for _, in := range inputs {
		e := newTestEditor("")
		if err := e.loadRows(strings.NewReader(in)); err != nil {
			t.Fatalf("loadRows(%q): %v", in, err)
		}
		if got := e.RowsToBytes(); string(got) != in {
			t.Errorf("round trip of %q produced %q", in, got)
		}
	}
}

func TestMissingTrailingNewlineGainsOne(t *testing.T) {
	e := newTestEditor("")
	if err := e.loadRows(strings.NewReader("a\nb")); err != nil {
		t.Fatal(err)
	}

	if got := e.RowsToBytes(); string(got) != "a\nb\n" {
		t.Errorf("expected trailing newline added, got %q", got)
	}
}

func TestLoadStripsCarriageReturns(t *testing.T) {
	e := newTestEditor("")
	if err := e.loadRows(strings.NewReader("a\r\nb\r\n")); err != nil {
		t.Fatal(err)
	}

	if len(e.row) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(e.row))
	}
	if string(e.row[0].chars) != "a" || string(e.row[1].chars) != "b" {
		t.Errorf("expected CR stripped, got %q/%q", e.row[0].chars, e.row[1].chars)
	}
}

func TestLoadClearsDirty(t *testing.T) {
	e := newTestEditor("")
	if err := e.loadRows(strings.NewReader("x\n")); err != nil {
		t.Fatal(err)
	}

	if e.dirty != 0 {
		t.Errorf("expected dirty 0 after load, got %d", e.dirty)
	}
}

func TestOpenMissingFileReportsError(t *testing.T) {
	e := newTestEditor("")
	if err := e.Open(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestOpenBindsSyntaxProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.c")
	if err := os.WriteFile(path, []byte("if (x)\n"), 0644); err != nil {
		t.Fatal(err)
	}

	e := newTestEditor("")
	if err := e.Open(path); err != nil {
		t.Fatal(err)
	}

	if e.syntax == nil || e.syntax.filetype != "c" {
		t.Error("expected C profile bound on open")
	}
	if e.row[0].hl[0] != HL_KEYWORD1 {
		t.Errorf("expected keyword tag, got %d", e.row[0].hl[0])
	}
}

func TestSaveWritesExactBytesAndClearsDirty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	// pre-existing longer content must be truncated away
	if err := os.WriteFile(path, bytes.Repeat([]byte("x"), 100), 0644); err != nil {
		t.Fatal(err)
	}

	e := newTestEditor("")
	e.filename = path
	setRows(t, e, "alpha", "beta")
	e.dirty = 2

	e.Save()

	if e.dirty != 0 {
		t.Errorf("expected dirty 0 after save, got %d", e.dirty)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "alpha\nbeta\n" {
		t.Errorf("expected %q on disk, got %q", "alpha\nbeta\n", got)
	}
	if !strings.Contains(e.statusMessage, "written to disk") {
		t.Errorf("expected success message, got %q", e.statusMessage)
	}
}

func TestFailedSaveLeavesDirtyAndReportsError(t *testing.T) {
	e := newTestEditor("")
	e.filename = t.TempDir() // a directory is not writable as a file
	setRows(t, e, "data")
	e.dirty = 1

	e.Save()

	if e.dirty != 1 {
		t.Errorf("expected dirty unchanged, got %d", e.dirty)
	}
	if !strings.Contains(e.statusMessage, "Can't save") {
		t.Errorf("expected save error in message bar, got %q", e.statusMessage)
	}
}

func TestSaveOfUnnamedDocumentPromptsForName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "named.txt")

	e := newTestEditor(path + "\r")
	setRows(t, e, "content")
	e.dirty = 1

	e.Save()

	if e.filename != path {
		t.Fatalf("expected filename %q, got %q", path, e.filename)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "content\n" {
		t.Errorf("expected %q on disk, got %q", "content\n", got)
	}
}

func TestSaveCancelledAtPrompt(t *testing.T) {
	e := newTestEditor("\x1b")
	setRows(t, e, "content")
	e.dirty = 1

	e.Save()

	if e.filename != "" {
		t.Errorf("expected no filename bound, got %q", e.filename)
	}
	if e.dirty != 1 {
		t.Errorf("expected dirty unchanged, got %d", e.dirty)
	}
	if e.statusMessage != "Save aborted" {
		t.Errorf("expected abort message, got %q", e.statusMessage)
	}
}
