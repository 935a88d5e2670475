package tui

import "testing"

func TestEditorInsertAndText(t *testing.T) {
	e := NewEditor()
	e.InsertString("hello")

	if e.Text() != "hello" {
		t.Errorf("Text() = %q, want %q", e.Text(), "hello")
	}
	line, col := e.Cursor()
	if line != 0 || col != 5 {
		t.Errorf("cursor = (%d,%d), want (0,5)", line, col)
	}
}

func TestEditorInsertBackspaceInverse(t *testing.T) {
	e := NewEditorFromText("first line\nsecond")
	e.MoveCursorDown()
	e.MoveToLineEnd()
	wantText := e.Text()
	wantLine, wantCol := e.Cursor()

	for _, r := range "가나다 abc" {
		e.InsertChar(r)
	}
	for range "가나다 abc" {
		e.Backspace()
	}

	if e.Text() != wantText {
		t.Errorf("Text() = %q, want %q", e.Text(), wantText)
	}
	line, col := e.Cursor()
	if line != wantLine || col != wantCol {
		t.Errorf("cursor = (%d,%d), want (%d,%d)", line, col, wantLine, wantCol)
	}
}

func TestEditorRoundTrip(t *testing.T) {
	for _, text := range []string{"", "one line", "two\nlines", "trailing\n", "한국어\n리뷰 텍스트"} {
		e := NewEditorFromText(text)
		if e.Text() != text {
			t.Errorf("round trip of %q = %q", text, e.Text())
		}
	}
}

func TestEditorFromTextCursorAtEnd(t *testing.T) {
	e := NewEditorFromText("first\nsecond 리뷰")
	line, col := e.Cursor()
	if line != 1 || col != 9 {
		t.Errorf("cursor = (%d,%d), want (1,9)", line, col)
	}

	e.InsertChar('!')
	if e.Text() != "first\nsecond 리뷰!" {
		t.Errorf("Text() = %q", e.Text())
	}
}

func TestEditorNewlineSplitsLine(t *testing.T) {
	e := NewEditorFromText("hello world")
	e.MoveToLineStart()
	for i := 0; i < 5; i++ {
		e.MoveCursorRight()
	}
	e.InsertNewline()

	if e.Text() != "hello\n world" {
		t.Errorf("Text() = %q", e.Text())
	}
	line, col := e.Cursor()
	if line != 1 || col != 0 {
		t.Errorf("cursor = (%d,%d), want (1,0)", line, col)
	}
}

func TestEditorBackspaceMergesLines(t *testing.T) {
	e := NewEditorFromText("abc\ndef")
	e.MoveCursorDown()
	e.MoveToLineStart()
	e.Backspace()

	if e.Text() != "abcdef" {
		t.Errorf("Text() = %q, want %q", e.Text(), "abcdef")
	}
	line, col := e.Cursor()
	if line != 0 || col != 3 {
		t.Errorf("cursor = (%d,%d), want (0,3)", line, col)
	}
}

func TestEditorDeleteCharAtLineEndMerges(t *testing.T) {
	e := NewEditorFromText("abc\ndef")
	e.MoveCursorUp()
	e.DeleteChar()

	if e.Text() != "abcdef" {
		t.Errorf("Text() = %q, want %q", e.Text(), "abcdef")
	}

	// At the very end of the buffer delete is a no-op
	e.MoveCursorDown()
	e.MoveToLineEnd()
	e.DeleteChar()
	if e.Text() != "abcdef" {
		t.Errorf("delete at buffer end changed text to %q", e.Text())
	}
}

func TestEditorCursorWrapsAtLineEdges(t *testing.T) {
	e := NewEditorFromText("ab\ncd")
	e.MoveCursorUp()
	e.MoveCursorRight()

	line, col := e.Cursor()
	if line != 1 || col != 0 {
		t.Errorf("cursor = (%d,%d), want (1,0)", line, col)
	}

	e.MoveCursorLeft()
	line, col = e.Cursor()
	if line != 0 || col != 2 {
		t.Errorf("cursor = (%d,%d), want (0,2)", line, col)
	}
}

func TestEditorVerticalMoveClampsColumn(t *testing.T) {
	e := NewEditorFromText("a long line\nab")
	e.MoveCursorUp()
	e.MoveToLineEnd()
	e.MoveCursorDown()

	line, col := e.Cursor()
	if line != 1 || col != 2 {
		t.Errorf("cursor = (%d,%d), want (1,2)", line, col)
	}
}

func TestEditorDeleteWordBackward(t *testing.T) {
	e := NewEditorFromText("hello world   ")
	e.MoveToLineEnd()
	e.DeleteWordBackward()

	if e.Text() != "hello " {
		t.Errorf("Text() = %q, want %q", e.Text(), "hello ")
	}
	_, col := e.Cursor()
	if col != 6 {
		t.Errorf("cursor col = %d, want 6", col)
	}
}

func TestEditorClearAndTruncate(t *testing.T) {
	e := NewEditorFromText("hello world")
	e.MoveToLineStart()
	for i := 0; i < 5; i++ {
		e.MoveCursorRight()
	}
	e.DeleteToLineEnd()
	if e.Text() != "hello" {
		t.Errorf("Text() = %q, want %q", e.Text(), "hello")
	}

	e.ClearCurrentLine()
	if e.Text() != "" {
		t.Errorf("Text() = %q, want empty", e.Text())
	}
	_, col := e.Cursor()
	if col != 0 {
		t.Errorf("cursor col = %d, want 0", col)
	}
}

func TestEditorNonEditableIgnoresMutation(t *testing.T) {
	e := NewEditorFromText("locked")
	e.SetEditable(false)

	e.InsertChar('x')
	e.InsertNewline()
	e.Backspace()
	e.DeleteChar()
	e.ClearCurrentLine()
	e.DeleteWordBackward()

	if e.Text() != "locked" {
		t.Errorf("read-only editor changed to %q", e.Text())
	}
}

func TestEditorScrollFollowsCursor(t *testing.T) {
	e := NewEditorFromText("0\n1\n2\n3\n4\n5\n6\n7\n8\n9")
	e.SetHeight(3)
	for i := 0; i < 9; i++ {
		e.MoveCursorUp()
	}
	if e.ScrollOffset() != 0 {
		t.Errorf("scroll offset at top = %d, want 0", e.ScrollOffset())
	}

	for i := 0; i < 6; i++ {
		e.MoveCursorDown()
	}
	if e.ScrollOffset() != 4 {
		t.Errorf("scroll offset = %d, want 4", e.ScrollOffset())
	}

	for i := 0; i < 6; i++ {
		e.MoveCursorUp()
	}
	if e.ScrollOffset() != 0 {
		t.Errorf("scroll offset = %d, want 0", e.ScrollOffset())
	}
}
