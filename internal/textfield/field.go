package textfield

import (
	"github.com/muurk/multispin/internal/validator"
)

// Validator checks the text of an edit before it is applied. It may rewrite
// the text and caret position.
type Validator interface {
	Validate(text string, pos int) (string, int, validator.State)
}

// Field is a single-line text editor. The zero value is an empty, unfocused,
// editable field without a validator.
type Field struct {
	text     []rune
	cursor   int
	anchor   int // selection is [min(anchor, cursor), max(anchor, cursor))
	focused  bool
	readOnly bool

	validator       Validator
	onTextChanged   func(text string)
	onCursorChanged func(oldPos, newPos int)
}

// New returns an empty field.
func New() *Field {
	return &Field{}
}

// SetValidator sets the validator used for user edits. Nil disables
// validation.
func (f *Field) SetValidator(v Validator) {
	f.validator = v
}

// OnTextChanged registers the callback fired after the text changed.
func (f *Field) OnTextChanged(fn func(text string)) {
	f.onTextChanged = fn
}

// OnCursorPositionChanged registers the callback fired after the caret moved.
func (f *Field) OnCursorPositionChanged(fn func(oldPos, newPos int)) {
	f.onCursorChanged = fn
}

// Text returns the current text.
func (f *Field) Text() string {
	return string(f.text)
}

// Len returns the text length in runes.
func (f *Field) Len() int {
	return len(f.text)
}

// CursorPosition returns the caret offset.
func (f *Field) CursorPosition() int {
	return f.cursor
}

// HasFocus reports whether the field has keyboard focus.
func (f *Field) HasFocus() bool {
	return f.focused
}

// SetFocus gives or removes keyboard focus.
func (f *Field) SetFocus(focused bool) {
	f.focused = focused
}

// IsReadOnly reports whether user edits are refused.
func (f *Field) IsReadOnly() bool {
	return f.readOnly
}

// SetReadOnly refuses or allows user edits. Caret movement stays possible.
func (f *Field) SetReadOnly(readOnly bool) {
	f.readOnly = readOnly
}

// SetText replaces the text, drops the selection and puts the caret at the
// end.
func (f *Field) SetText(text string) {
	f.apply([]rune(text), len([]rune(text)))
}

// SetCursorPosition moves the caret and drops the selection.
func (f *Field) SetCursorPosition(pos int) {
	f.moveCursor(pos, false)
}

// SetSelection selects length runes from start and puts the caret at the end
// of the selection.
func (f *Field) SetSelection(start, length int) {
	start = f.clamp(start)
	end := f.clamp(start + length)
	old := f.cursor
	f.anchor = start
	f.cursor = end
	f.emitCursor(old)
}

// SelectAll selects the whole text.
func (f *Field) SelectAll() {
	f.SetSelection(0, len(f.text))
}

// HasSelectedText reports whether a non-empty selection exists.
func (f *Field) HasSelectedText() bool {
	return f.anchor != f.cursor
}

// Selection returns the start and length of the selection.
func (f *Field) Selection() (start, length int) {
	start, end := f.selectionBounds()
	return start, end - start
}

// SelectedText returns the selected text.
func (f *Field) SelectedText() string {
	start, end := f.selectionBounds()
	return string(f.text[start:end])
}

// Insert types s at the caret, replacing the selection. It reports whether
// the edit was applied.
func (f *Field) Insert(s string) bool {
	if f.readOnly {
		return false
	}
	start, end := f.selectionBounds()
	ins := []rune(s)
	next := make([]rune, 0, len(f.text)-(end-start)+len(ins))
	next = append(next, f.text[:start]...)
	next = append(next, ins...)
	next = append(next, f.text[end:]...)
	return f.edit(next, start+len(ins))
}

// Backspace deletes the selection, or the rune before the caret.
func (f *Field) Backspace() bool {
	if f.readOnly {
		return false
	}
	start, end := f.selectionBounds()
	if start == end {
		if start == 0 {
			return false
		}
		start--
	}
	return f.deleteRange(start, end)
}

// Delete deletes the selection, or the rune after the caret.
func (f *Field) Delete() bool {
	if f.readOnly {
		return false
	}
	start, end := f.selectionBounds()
	if start == end {
		if end == len(f.text) {
			return false
		}
		end++
	}
	return f.deleteRange(start, end)
}

// CursorLeft moves the caret one rune left. With mark set the selection is
// extended, otherwise an existing selection collapses to its start.
func (f *Field) CursorLeft(mark bool) {
	if !mark && f.HasSelectedText() {
		start, _ := f.selectionBounds()
		f.moveCursor(start, false)
		return
	}
	f.moveCursor(f.cursor-1, mark)
}

// CursorRight moves the caret one rune right. With mark set the selection is
// extended, otherwise an existing selection collapses to its end.
func (f *Field) CursorRight(mark bool) {
	if !mark && f.HasSelectedText() {
		_, end := f.selectionBounds()
		f.moveCursor(end, false)
		return
	}
	f.moveCursor(f.cursor+1, mark)
}

// Home moves the caret to the start of the text.
func (f *Field) Home(mark bool) {
	f.moveCursor(0, mark)
}

// End moves the caret to the end of the text.
func (f *Field) End(mark bool) {
	f.moveCursor(len(f.text), mark)
}

func (f *Field) deleteRange(start, end int) bool {
	next := make([]rune, 0, len(f.text)-(end-start))
	next = append(next, f.text[:start]...)
	next = append(next, f.text[end:]...)
	return f.edit(next, start)
}

// edit validates and applies a user edit.
func (f *Field) edit(next []rune, pos int) bool {
	if f.validator != nil {
		text, p, state := f.validator.Validate(string(next), pos)
		if state == validator.Invalid {
			return false
		}
		next = []rune(text)
		pos = p
	}
	f.apply(next, pos)
	return true
}

// apply replaces text and caret and fires the callbacks for what changed.
func (f *Field) apply(next []rune, pos int) {
	oldCursor := f.cursor
	changed := string(next) != string(f.text)
	f.text = next
	f.cursor = f.clamp(pos)
	f.anchor = f.cursor
	if changed && f.onTextChanged != nil {
		f.onTextChanged(string(f.text))
	}
	f.emitCursor(oldCursor)
}

func (f *Field) moveCursor(pos int, mark bool) {
	old := f.cursor
	f.cursor = f.clamp(pos)
	if !mark {
		f.anchor = f.cursor
	}
	f.emitCursor(old)
}

func (f *Field) emitCursor(old int) {
	if old != f.cursor && f.onCursorChanged != nil {
		f.onCursorChanged(old, f.cursor)
	}
}

func (f *Field) selectionBounds() (int, int) {
	return min(f.anchor, f.cursor), max(f.anchor, f.cursor)
}

func (f *Field) clamp(pos int) int {
	return max(0, min(pos, len(f.text)))
}
