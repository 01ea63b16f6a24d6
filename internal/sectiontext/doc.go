// Package sectiontext maps between the composed text of a multi-section spin
// box and its sections.
//
// The composed text is the concatenation, for every section, of the section
// prefix, the formatted value and the section suffix. For the current
// section, Compose splits that text in three: everything before the current
// value, the value itself and everything after it. SectionAt goes the other
// way and finds the section a caret offset belongs to.
//
// All offsets and lengths are counted in runes.
//
//	split := sectiontext.Compose(configs, []string{"0", "5", "0"}, 1)
//	split.Before // "0°  "
//	split.Value  // "5"
//	split.After  // "%  0"
package sectiontext
