package sectiontext

import (
	"unicode/utf8"

	"github.com/muurk/multispin/internal/section"
)

// Split is the composed text divided around the current section's value.
type Split struct {
	Before string
	Value  string
	After  string
}

// Text returns the full composed text.
func (s Split) Text() string {
	return s.Before + s.Value + s.After
}

// ValueStart returns the caret offset of the first rune of the value.
func (s Split) ValueStart() int {
	return utf8.RuneCountInString(s.Before)
}

// ValueEnd returns the caret offset just past the last rune of the value.
func (s Split) ValueEnd() int {
	return s.ValueStart() + utf8.RuneCountInString(s.Value)
}

// Len returns the length of the composed text.
func (s Split) Len() int {
	return s.ValueEnd() + utf8.RuneCountInString(s.After)
}

// Touching reports whether caret lies on the current value, including both
// of its edges, in a text of textLen runes whose before and after parts
// match s.
func (s Split) Touching(caret, textLen int) bool {
	return Touching(s.Before, s.After, caret, textLen)
}

// Touching reports whether caret lies within [len(before), textLen-len(after)].
func Touching(before, after string, caret, textLen int) bool {
	return utf8.RuneCountInString(before) <= caret &&
		caret <= textLen-utf8.RuneCountInString(after)
}

// Compose splits the text of all sections around the value of section
// current. formatted holds the display text of every section's value.
func Compose(configs []section.Config, formatted []string, current int) Split {
	var s Split
	for i, cfg := range configs {
		switch {
		case i < current:
			s.Before += cfg.Prefix() + formatted[i] + cfg.Suffix()
		case i == current:
			s.Before += cfg.Prefix()
			s.Value = formatted[i]
			s.After = cfg.Suffix()
		default:
			s.After += cfg.Prefix() + formatted[i] + cfg.Suffix()
		}
	}
	return s
}

// SectionAt returns the index of the section whose text contains caret.
// Sections are walked left to right accumulating prefix, value and suffix
// lengths; the first section whose end offset is at or after caret wins, and
// a caret past the end of the text belongs to the last section.
func SectionAt(configs []section.Config, formatted []string, caret int) int {
	end := 0
	for i := 0; i < len(configs)-1; i++ {
		end += utf8.RuneCountInString(configs[i].Prefix()) +
			utf8.RuneCountInString(formatted[i]) +
			utf8.RuneCountInString(configs[i].Suffix())
		if caret <= end {
			return i
		}
	}
	return len(configs) - 1
}

// Widest returns the longest text the sections can display: for every
// section the longer of its formatted minimum and maximum, surrounded by
// prefix and suffix.
func Widest(configs []section.Config, format func(cfg section.Config, v float64) string) string {
	var text string
	for _, cfg := range configs {
		lo := format(cfg, cfg.Minimum())
		hi := format(cfg, cfg.Maximum())
		value := hi
		if utf8.RuneCountInString(lo) > utf8.RuneCountInString(hi) {
			value = lo
		}
		text += cfg.Prefix() + value + cfg.Suffix()
	}
	return text
}
