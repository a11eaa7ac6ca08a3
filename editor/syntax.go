package editor

import (
	"bytes"
	"strings"
)

// Highlight tags, one per rendered byte. Highlighting is strictly per-row:
// no comment or string state survives a line break. That matches the
// rendered behavior this editor is modeled on and is a documented
// limitation, not a bug.
const (
	HL_NORMAL byte = iota
	HL_COMMENT
	HL_KEYWORD1
	HL_KEYWORD2
	HL_STRING
	HL_NUMBER
	HL_MATCH
)

// Syntax highlighting flags
const (
	HL_HIGHLIGHT_NUMBERS = 1 << 0
	HL_HIGHLIGHT_STRINGS = 1 << 1
)

// editorSyntax is an immutable filetype profile, selected by filename when
// a document is loaded or first saved. A keyword ending in '|' belongs to
// the secondary keyword class (types, mostly).
type editorSyntax struct {
	filetype               string
	filematch              []string
	keywords               []string
	singlelineCommentStart string
	flags                  int
}

/*** filetypes ***/

var HLDB_ENTRIES = []editorSyntax{
	{
		filetype:  "c",
		filematch: []string{".c", ".h", ".cpp"},
		keywords: []string{
			"switch", "if", "while", "for", "break", "continue", "return", "else",
			"struct", "union", "typedef", "static", "enum", "class", "case",
			"int|", "long|", "double|", "float|", "char|", "unsigned|", "signed|",
			"void|"},
		singlelineCommentStart: "//",
		flags:                  HL_HIGHLIGHT_NUMBERS | HL_HIGHLIGHT_STRINGS,
	},
	{
		filetype:  "go",
		filematch: []string{".go", ".mod"},
		keywords: []string{
			"break", "case", "chan", "const", "continue", "default", "defer",
			"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
			"interface", "map", "package", "range", "return", "select", "struct",
			"switch", "type", "var",
			"bool|", "byte|", "error|", "float64|", "int|", "int64|", "rune|",
			"string|", "uint|"},
		singlelineCommentStart: "//",
		flags:                  HL_HIGHLIGHT_NUMBERS | HL_HIGHLIGHT_STRINGS,
	},
}

// Check if the byte is a separator (whitespace, null, or punctuation)
func isSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f', 0:
		return true
	}
	return strings.IndexByte(",.()+-/*=~%<>[];", c) != -1
}

// updateSyntax reclassifies the row in one left-to-right pass over the
// rendered bytes. Rule priority: comment, string, number, keyword.
func (row *editorRow) updateSyntax(syntax *editorSyntax) {
	row.hl = make([]byte, len(row.render))

	if syntax == nil {
		return
	}

	keywords := syntax.keywords
	scs := []byte(syntax.singlelineCommentStart)

	prevSep := true
	var inString byte

	for i := 0; i < len(row.render); {
		c := row.render[i]
		prevHl := HL_NORMAL
		if i > 0 {
			prevHl = row.hl[i-1]
		}

		if len(scs) > 0 && inString == 0 && bytes.HasPrefix(row.render[i:], scs) {
			for j := i; j < len(row.render); j++ {
				row.hl[j] = HL_COMMENT
			}
			break
		}

		if syntax.flags&HL_HIGHLIGHT_STRINGS != 0 {
			if inString != 0 {
				row.hl[i] = HL_STRING
				if c == '\\' && i+1 < len(row.render) {
					row.hl[i+1] = HL_STRING
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			} else if c == '"' || c == '\'' {
				inString = c
				row.hl[i] = HL_STRING
				i++
				continue
			}
		}

		if syntax.flags&HL_HIGHLIGHT_NUMBERS != 0 {
			if (isDigit(c) && (prevSep || prevHl == HL_NUMBER)) ||
				(c == '.' && prevHl == HL_NUMBER) {
				row.hl[i] = HL_NUMBER
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			j := 0
			for j < len(keywords) {
				kw := keywords[j]
				hl := HL_KEYWORD1
				if strings.HasSuffix(kw, "|") {
					kw = kw[:len(kw)-1]
					hl = HL_KEYWORD2
				}

				if bytes.HasPrefix(row.render[i:], []byte(kw)) &&
					(i+len(kw) == len(row.render) || isSeparator(row.render[i+len(kw)])) {
					for k := 0; k < len(kw); k++ {
						row.hl[i+k] = hl
					}
					i += len(kw)
					break
				}
				j++
			}
			if j < len(keywords) {
				prevSep = false
				continue
			}
		}

		prevSep = isSeparator(c)
		i++
	}
}

// SelectSyntaxHighlight binds the profile matching the current filename
// and reclassifies the whole document. Patterns starting with '.' match
// the filename suffix, anything else matches as a substring.
func (e *Editor) SelectSyntaxHighlight() {
	e.syntax = nil
	if e.filename == "" {
		return
	}

	for j := range HLDB_ENTRIES {
		s := &HLDB_ENTRIES[j]
		for _, pattern := range s.filematch {
			isExt := pattern[0] == '.'
			if (isExt && strings.HasSuffix(e.filename, pattern)) ||
				(!isExt && strings.Contains(e.filename, pattern)) {
				e.syntax = s

				for filerow := range e.row {
					e.row[filerow].updateSyntax(e.syntax)
				}
				return
			}
		}
	}
}
