package spinbox

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/muurk/multispin/internal/logging"
	"github.com/muurk/multispin/internal/numfmt"
	"github.com/muurk/multispin/internal/section"
	"github.com/muurk/multispin/internal/sectiontext"
	"github.com/muurk/multispin/internal/validator"
)

// Debug turns programming errors, such as selecting a section index that
// does not exist, into panics. When false they are logged and ignored.
var Debug = false

// TextField is the text editing widget a Controller drives.
type TextField interface {
	Text() string
	SetText(text string)
	CursorPosition() int
	SetCursorPosition(pos int)
	SetSelection(start, length int)
	HasFocus() bool
}

// Controller is the editing state machine of a multi-section spin box.
type Controller struct {
	field     TextField
	model     *section.Model
	locale    numfmt.Locale
	validator *validator.Section

	current int
	split   sectiontext.Split

	keyboardTracking bool
	correction       CorrectionMode
	readOnly         bool

	// echo counts active guards around writes into field.
	echo int

	onValuesChanged     func(values []float64)
	onValuesTextChanged func(text string)
	onEditingFinished   func()
}

// NewController returns a controller with one default section, writes the
// composed text into field and puts the caret after the value.
func NewController(field TextField, loc numfmt.Locale) *Controller {
	c := &Controller{
		field:            field,
		model:            section.NewModel(),
		locale:           loc,
		validator:        validator.NewSection(loc),
		keyboardTracking: true,
		correction:       CorrectToPreviousValue,
	}
	c.selectSection(0)
	return c
}

// OnValuesChanged registers the callback for committed value changes.
func (c *Controller) OnValuesChanged(fn func(values []float64)) {
	c.onValuesChanged = fn
}

// OnValuesTextChanged registers the callback receiving the displayed text
// whenever committed values change. It fires together with OnValuesChanged.
func (c *Controller) OnValuesTextChanged(fn func(text string)) {
	c.onValuesTextChanged = fn
}

// OnEditingFinished registers the callback fired on Enter and focus loss.
func (c *Controller) OnEditingFinished(fn func()) {
	c.onEditingFinished = fn
}

// SectionConfigurations returns the configuration of all sections.
func (c *Controller) SectionConfigurations() []section.Config {
	return c.model.Configurations()
}

// SetSectionConfigurations replaces all sections. An empty list is ignored.
// Values are resized and normalized against the new sections, and observers
// are notified if that changed them.
func (c *Controller) SetSectionConfigurations(configs []section.Config) Outcome {
	if !c.model.SetConfigurations(configs) {
		return Outcome{}
	}
	old := c.current
	c.selectSection(min(c.current, c.model.Count()-1))
	return Outcome{
		Handled:        true,
		SectionChanged: old != c.current,
		ValuesChanged:  c.commit(),
	}
}

// SectionCount returns the number of sections.
func (c *Controller) SectionCount() int {
	return c.model.Count()
}

// Values returns the committed values.
func (c *Controller) Values() []float64 {
	return c.model.Committed()
}

// PendingValues returns the displayed values, which differ from Values while
// an edit has not been committed.
func (c *Controller) PendingValues() []float64 {
	return c.model.Pending()
}

// SetValues replaces all values. Missing values become 0, extra values are
// ignored and every value is normalized against its section.
func (c *Controller) SetValues(values []float64) Outcome {
	c.model.SetPendingValues(values)
	c.selectSection(c.current)
	return Outcome{Handled: true, ValuesChanged: c.commit()}
}

// CurrentSectionIndex returns the index of the current section.
func (c *Controller) CurrentSectionIndex() int {
	return c.current
}

// SetCurrentSectionIndex makes section i current and selects its value.
func (c *Controller) SetCurrentSectionIndex(i int) Outcome {
	if i < 0 || i >= c.model.Count() {
		programmingError("section index out of range",
			zap.Int("index", i), zap.Int("count", c.model.Count()))
		return Outcome{}
	}
	old := c.current
	c.selectSection(i)
	return Outcome{Handled: true, SectionChanged: old != i}
}

// Split returns the composed text divided around the current value.
func (c *Controller) Split() sectiontext.Split {
	return c.split
}

// KeyboardTracking reports whether keystrokes commit immediately.
func (c *Controller) KeyboardTracking() bool {
	return c.keyboardTracking
}

// SetKeyboardTracking sets whether keystrokes commit immediately.
func (c *Controller) SetKeyboardTracking(enabled bool) {
	c.keyboardTracking = enabled
}

// CorrectionMode returns how out of range input is treated.
func (c *Controller) CorrectionMode() CorrectionMode {
	return c.correction
}

// SetCorrectionMode sets how out of range input is treated.
func (c *Controller) SetCorrectionMode(mode CorrectionMode) {
	c.correction = mode
}

// IsReadOnly reports whether editing and stepping are disabled.
func (c *Controller) IsReadOnly() bool {
	return c.readOnly
}

// SetReadOnly disables or enables editing and stepping.
func (c *Controller) SetReadOnly(readOnly bool) {
	c.readOnly = readOnly
}

// Locale returns the number locale.
func (c *Controller) Locale() numfmt.Locale {
	return c.locale
}

// SetLocale changes the number locale and redisplays all values.
func (c *Controller) SetLocale(loc numfmt.Locale) {
	c.locale = loc
	c.validator.SetLocale(loc)
	c.selectSection(c.current)
}

// Validate checks an edit of the field text. It accepts only edits confined
// to the value of the current section.
func (c *Controller) Validate(text string, pos int) (string, int, validator.State) {
	return c.validator.Validate(text, pos)
}

// SizeHintText returns the widest text the spin box can display, plus one
// space for the caret.
func (c *Controller) SizeHintText() string {
	return sectiontext.Widest(c.model.Configurations(), func(cfg section.Config, v float64) string {
		return cfg.Format(v, c.locale)
	}) + " "
}

// StepEnabled returns the step directions available for the current section.
func (c *Controller) StepEnabled() StepFlags {
	if c.readOnly {
		return StepNone
	}
	cfg := c.model.Config(c.current)
	if cfg.IsWrapping() {
		return StepUpEnabled | StepDownEnabled
	}
	v := c.model.PendingValue(c.current)
	flags := StepNone
	if v < cfg.Maximum() {
		flags |= StepUpEnabled
	}
	if v > cfg.Minimum() {
		flags |= StepDownEnabled
	}
	return flags
}

// StepBy changes the current section's value by steps single steps, selects
// the value and commits.
func (c *Controller) StepBy(steps int) Outcome {
	if c.readOnly {
		return Outcome{}
	}
	values := c.model.Pending()
	values[c.current] += float64(steps) * c.model.Config(c.current).SingleStep()
	c.model.SetPendingValues(values)
	c.selectSection(c.current)
	return Outcome{Handled: true, ValuesChanged: c.commit()}
}

// StepUp steps the current section up once.
func (c *Controller) StepUp() Outcome {
	return c.StepBy(1)
}

// StepDown steps the current section down once.
func (c *Controller) StepDown() Outcome {
	return c.StepBy(-1)
}

// Clear removes the text of the current value, leaving prefixes, suffixes
// and the other sections in place. Values are untouched until new input
// parses.
func (c *Controller) Clear() Outcome {
	if c.readOnly {
		return Outcome{}
	}
	c.split.Value = ""
	defer c.suppressEcho()()
	c.field.SetText(c.split.Text())
	c.field.SetCursorPosition(c.split.ValueStart())
	return Outcome{Handled: true}
}

// HandleCursorPositionChanged reacts to the caret moving to newPos. Moves
// within the current value are ignored. Otherwise the section under the
// caret becomes current, the text is recomposed and the caret is kept in
// place relative to the text around it.
func (c *Controller) HandleCursorPositionChanged(oldPos, newPos int) Outcome {
	if c.echo > 0 {
		return Outcome{}
	}
	oldText := c.field.Text()
	oldLen := utf8.RuneCountInString(oldText)
	if c.split.Touching(newPos, oldLen) {
		return Outcome{}
	}

	// A caret behind the current value keeps its distance to the end of the
	// text when the value's display length changes.
	behindValue := newPos > oldLen-utf8.RuneCountInString(c.split.After)

	previous := c.current
	c.current = sectiontext.SectionAt(c.model.Configurations(), c.formatted(), newPos)
	c.recompose()

	defer c.suppressEcho()()
	c.field.SetText(c.split.Text())
	pos := newPos
	if behindValue {
		pos += c.split.Len() - oldLen
	}
	c.field.SetCursorPosition(pos)

	return Outcome{Handled: true, SectionChanged: previous != c.current}
}

// HandleTextChanged reacts to the user editing the field text. The value
// text between the expected before and after fragments is parsed and, if
// acceptable under the correction mode, becomes the pending value of the
// current section.
func (c *Controller) HandleTextChanged(text string) Outcome {
	if c.echo > 0 {
		return Outcome{}
	}
	if !strings.HasPrefix(text, c.split.Before) {
		logging.LogConsistencyViolation("before", c.split.Before, text)
		return Outcome{}
	}
	core := strings.TrimPrefix(text, c.split.Before)
	if !strings.HasSuffix(core, c.split.After) {
		logging.LogConsistencyViolation("after", c.split.After, text)
		return Outcome{}
	}
	core = strings.TrimSuffix(core, c.split.After)
	c.split.Value = core

	clean := c.locale.StripGroupSeparators(strings.Join(strings.Fields(core), " "))
	v, ok := numfmt.Parse(clean, c.locale)
	if !ok {
		return Outcome{Handled: true}
	}

	cfg := c.model.Config(c.current)
	if c.correction == CorrectToPreviousValue && !cfg.InRange(numfmt.RoundToDigits(v, cfg.Decimals())) {
		return Outcome{Handled: true}
	}

	c.model.SetPendingValue(c.current, v)
	if !c.keyboardTracking {
		return Outcome{Handled: true}
	}
	return Outcome{Handled: true, ValuesChanged: c.commit()}
}

// FocusNext moves to the next section (Tab). A caret still in front of the
// current value only reselects the current value. Moving past the last
// section reports FocusLeft and changes nothing.
func (c *Controller) FocusNext() Outcome {
	target := c.current + 1
	if c.field.CursorPosition() < c.split.ValueStart() {
		target = c.current
	}
	return c.moveTo(target)
}

// FocusPrevious moves to the previous section (Shift+Tab). A caret behind
// the current value only reselects the current value. Moving before the
// first section reports FocusLeft and changes nothing.
func (c *Controller) FocusPrevious() Outcome {
	target := c.current - 1
	if c.field.CursorPosition() > c.split.ValueEnd() {
		target = c.current
	}
	return c.moveTo(target)
}

func (c *Controller) moveTo(target int) Outcome {
	if target < 0 || target >= c.model.Count() {
		return Outcome{FocusLeft: true}
	}
	previous := c.current
	c.selectSection(target)
	return Outcome{
		Handled:        true,
		SectionChanged: previous != target,
		ValuesChanged:  c.commit(),
	}
}

// HandleReturn redisplays the pending values, which discards transient
// text, selects the current value and commits.
func (c *Controller) HandleReturn() Outcome {
	out := c.fixup()
	c.finishEditing()
	out.EditingFinished = true
	return out
}

// FocusIn reacts to the spin box gaining focus. Tab and shortcut focus
// select the first section, Backtab the last one; other reasons keep the
// current section.
func (c *Controller) FocusIn(reason FocusReason) Outcome {
	previous := c.current
	switch reason {
	case FocusTab, FocusShortcut:
		c.selectSection(0)
	case FocusBacktab:
		c.selectSection(c.model.Count() - 1)
	default:
		c.selectSection(c.current)
	}
	return Outcome{Handled: true, SectionChanged: previous != c.current}
}

// FocusOut reacts to the spin box losing focus. Pending values are
// redisplayed and committed regardless of keyboard tracking. Keyboard and
// mouse focus changes reset the current section to the first one.
func (c *Controller) FocusOut(reason FocusReason) Outcome {
	previous := c.current
	out := c.fixup()
	switch reason {
	case FocusTab, FocusBacktab, FocusShortcut, FocusMouse:
		c.selectSection(0)
	}
	c.finishEditing()
	out.SectionChanged = previous != c.current
	out.EditingFinished = true
	return out
}

// fixup renormalizes the pending values, redisplays them and commits.
func (c *Controller) fixup() Outcome {
	c.model.SetPendingValues(c.model.Pending())
	c.selectSection(c.current)
	return Outcome{Handled: true, ValuesChanged: c.commit()}
}

func (c *Controller) finishEditing() {
	if c.onEditingFinished != nil {
		c.onEditingFinished()
	}
}

// commit publishes pending values and notifies observers if they changed.
func (c *Controller) commit() bool {
	if !c.model.Commit() {
		return false
	}
	values := c.model.Committed()
	text := c.field.Text()
	logging.LogValuesChanged(values, text)
	if c.onValuesChanged != nil {
		c.onValuesChanged(values)
	}
	if c.onValuesTextChanged != nil {
		c.onValuesTextChanged(text)
	}
	return true
}

// selectSection makes section i current, writes the composed text and
// selects the value when the field has focus, or puts the caret after it.
func (c *Controller) selectSection(i int) {
	if i < 0 || i >= c.model.Count() {
		programmingError("section index out of range",
			zap.Int("index", i), zap.Int("count", c.model.Count()))
		return
	}
	c.current = i
	c.recompose()

	defer c.suppressEcho()()
	c.field.SetText(c.split.Text())
	if c.field.HasFocus() {
		c.field.SetSelection(c.split.ValueStart(), utf8.RuneCountInString(c.split.Value))
	} else {
		c.field.SetCursorPosition(c.split.ValueEnd())
	}
}

// recompose rebuilds the text fragments for the current section and points
// the validator at them. Fragments are always updated before the field.
func (c *Controller) recompose() {
	c.split = sectiontext.Compose(c.model.Configurations(), c.formatted(), c.current)

	cfg := c.model.Config(c.current)
	c.validator.SetPrefix(c.split.Before)
	c.validator.SetSuffix(c.split.After)
	c.validator.SetRange(cfg.Minimum(), cfg.Maximum(), cfg.Decimals())
}

// formatted returns the display text of every pending value.
func (c *Controller) formatted() []string {
	values := c.model.Pending()
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = c.model.Config(i).Format(v, c.locale)
	}
	return out
}

// suppressEcho stops the field callbacks from re-entering the controller
// until the returned release function runs.
func (c *Controller) suppressEcho() (release func()) {
	c.echo++
	return func() { c.echo-- }
}

func programmingError(msg string, fields ...zap.Field) {
	if Debug {
		panic(fmt.Sprintf("spinbox: %s", msg))
	}
	logging.Warn(msg, fields...)
}
