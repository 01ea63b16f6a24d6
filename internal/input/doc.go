// Package input describes keyboard events delivered to a spin box.
//
// An Event is a Key, the typed Rune for character keys, and a Modifier
// bitmask. ParseEvent reads the textual key names used by terminal front
// ends ("up", "shift+tab", "pgdown", "ctrl+c") and single characters.
// ParseScript splits a whitespace separated list of key names into events,
// typing multi-character tokens rune by rune:
//
//	events, err := input.ParseScript("up 54 enter shift+tab")
package input
