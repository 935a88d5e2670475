package tui

import (
	"strings"
	"unicode"
)

// Editor is a multi-line text buffer with a cursor and a vertical viewport.
// Lines are addressed in runes, not bytes, so Korean text moves one
// character per keypress. The buffer is never zero-length: an empty editor
// holds a single empty line.
type Editor struct {
	lines        []string
	cursorLine   int
	cursorCol    int // rune offset within the current line
	scrollOffset int
	height       int // visible lines, 0 means unbounded
	editable     bool
}

// NewEditor creates an empty editable editor
func NewEditor() *Editor {
	return &Editor{
		lines:    []string{""},
		editable: true,
	}
}

// NewEditorFromText creates an editor seeded with existing text. The cursor
// starts at the end of the buffer.
func NewEditorFromText(text string) *Editor {
	e := NewEditor()
	if text != "" {
		e.lines = strings.Split(text, "\n")
	}
	e.cursorLine = len(e.lines) - 1
	e.cursorCol = len([]rune(e.lines[e.cursorLine]))
	e.adjustScroll()
	return e
}

// Text joins the buffer back into a single string
func (e *Editor) Text() string {
	return strings.Join(e.lines, "\n")
}

// SetEditable toggles whether mutation operations have any effect
func (e *Editor) SetEditable(editable bool) {
	e.editable = editable
}

// SetHeight sets the viewport height used for scroll adjustment
func (e *Editor) SetHeight(height int) {
	e.height = height
	e.adjustScroll()
}

// Cursor returns the cursor position as (line, column) in runes
func (e *Editor) Cursor() (int, int) {
	return e.cursorLine, e.cursorCol
}

// ScrollOffset returns the index of the first visible line
func (e *Editor) ScrollOffset() int {
	return e.scrollOffset
}

// Lines returns the underlying line buffer
func (e *Editor) Lines() []string {
	return e.lines
}

func (e *Editor) currentLine() []rune {
	return []rune(e.lines[e.cursorLine])
}

// InsertChar inserts a character at the cursor and advances the column
func (e *Editor) InsertChar(c rune) {
	if !e.editable {
		return
	}
	line := e.currentLine()
	line = append(line[:e.cursorCol], append([]rune{c}, line[e.cursorCol:]...)...)
	e.lines[e.cursorLine] = string(line)
	e.cursorCol++
}

// InsertString inserts a run of characters, splitting on newlines
func (e *Editor) InsertString(s string) {
	for _, c := range s {
		if c == '\n' {
			e.InsertNewline()
			continue
		}
		e.InsertChar(c)
	}
}

// InsertNewline splits the current line at the cursor
func (e *Editor) InsertNewline() {
	if !e.editable {
		return
	}
	line := e.currentLine()
	before := string(line[:e.cursorCol])
	after := string(line[e.cursorCol:])

	e.lines[e.cursorLine] = before
	rest := append([]string{after}, e.lines[e.cursorLine+1:]...)
	e.lines = append(e.lines[:e.cursorLine+1], rest...)

	e.cursorLine++
	e.cursorCol = 0
	e.adjustScroll()
}

// DeleteChar removes the character at the cursor. At end-of-line it merges
// the next line into the current one.
func (e *Editor) DeleteChar() {
	if !e.editable {
		return
	}
	line := e.currentLine()
	if e.cursorCol < len(line) {
		line = append(line[:e.cursorCol], line[e.cursorCol+1:]...)
		e.lines[e.cursorLine] = string(line)
		return
	}
	if e.cursorLine < len(e.lines)-1 {
		e.lines[e.cursorLine] += e.lines[e.cursorLine+1]
		e.lines = append(e.lines[:e.cursorLine+1], e.lines[e.cursorLine+2:]...)
		e.adjustScroll()
	}
}

// Backspace removes the character before the cursor. At column 0 it merges
// the current line into the end of the previous line.
func (e *Editor) Backspace() {
	if !e.editable {
		return
	}
	if e.cursorCol > 0 {
		line := e.currentLine()
		line = append(line[:e.cursorCol-1], line[e.cursorCol:]...)
		e.lines[e.cursorLine] = string(line)
		e.cursorCol--
		return
	}
	if e.cursorLine > 0 {
		prev := []rune(e.lines[e.cursorLine-1])
		e.cursorCol = len(prev)
		e.lines[e.cursorLine-1] += e.lines[e.cursorLine]
		e.lines = append(e.lines[:e.cursorLine], e.lines[e.cursorLine+1:]...)
		e.cursorLine--
		e.adjustScroll()
	}
}

// MoveCursorLeft steps back one character, wrapping to the end of the
// previous line.
func (e *Editor) MoveCursorLeft() {
	if e.cursorCol > 0 {
		e.cursorCol--
		return
	}
	if e.cursorLine > 0 {
		e.cursorLine--
		e.cursorCol = len(e.currentLine())
		e.adjustScroll()
	}
}

// MoveCursorRight steps forward one character, wrapping to the start of the
// next line.
func (e *Editor) MoveCursorRight() {
	if e.cursorCol < len(e.currentLine()) {
		e.cursorCol++
		return
	}
	if e.cursorLine < len(e.lines)-1 {
		e.cursorLine++
		e.cursorCol = 0
		e.adjustScroll()
	}
}

// MoveCursorUp moves to the previous line, clamping the column
func (e *Editor) MoveCursorUp() {
	if e.cursorLine == 0 {
		return
	}
	e.cursorLine--
	if n := len(e.currentLine()); e.cursorCol > n {
		e.cursorCol = n
	}
	e.adjustScroll()
}

// MoveCursorDown moves to the next line, clamping the column
func (e *Editor) MoveCursorDown() {
	if e.cursorLine >= len(e.lines)-1 {
		return
	}
	e.cursorLine++
	if n := len(e.currentLine()); e.cursorCol > n {
		e.cursorCol = n
	}
	e.adjustScroll()
}

// MoveToLineStart sets the column to 0
func (e *Editor) MoveToLineStart() {
	e.cursorCol = 0
}

// MoveToLineEnd sets the column past the last character
func (e *Editor) MoveToLineEnd() {
	e.cursorCol = len(e.currentLine())
}

// ClearCurrentLine empties the current line and resets the column
func (e *Editor) ClearCurrentLine() {
	if !e.editable {
		return
	}
	e.lines[e.cursorLine] = ""
	e.cursorCol = 0
}

// DeleteToLineEnd truncates the current line at the cursor
func (e *Editor) DeleteToLineEnd() {
	if !e.editable {
		return
	}
	line := e.currentLine()
	e.lines[e.cursorLine] = string(line[:e.cursorCol])
}

// DeleteWordBackward deletes trailing whitespace before the cursor, then
// the word before that.
func (e *Editor) DeleteWordBackward() {
	if !e.editable || e.cursorCol == 0 {
		return
	}
	line := e.currentLine()
	i := e.cursorCol
	for i > 0 && unicode.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(line[i-1]) {
		i--
	}
	e.lines[e.cursorLine] = string(append(line[:i], line[e.cursorCol:]...))
	e.cursorCol = i
}

// adjustScroll keeps the cursor line inside the viewport
func (e *Editor) adjustScroll() {
	if e.height <= 0 {
		e.scrollOffset = 0
		return
	}
	if e.cursorLine < e.scrollOffset {
		e.scrollOffset = e.cursorLine
	} else if e.cursorLine >= e.scrollOffset+e.height {
		e.scrollOffset = e.cursorLine - e.height + 1
	}
}
