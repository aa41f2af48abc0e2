package authflow

import "strings"

// CodeLength is the number of digits in a one-time code.
const CodeLength = 6

// CodeBuffer is an ordered fixed-length sequence of single decimal
// digits with a focus cursor, mirroring a row of one-character inputs.
// Two independent instances exist: one for the login code, one for the
// reset code.
type CodeBuffer struct {
	slots [CodeLength]string
	focus int
}

func NewCodeBuffer() *CodeBuffer {
	return &CodeBuffer{}
}

// Type enters a single character at the focused slot. A decimal digit
// overwrites the slot and advances focus; anything else is rejected and
// the slot stays unchanged. Returns whether the character was accepted.
func (b *CodeBuffer) Type(r rune) bool {
	if r < '0' || r > '9' {
		return false
	}
	b.slots[b.focus] = string(r)
	if b.focus < CodeLength-1 {
		b.focus++
	}
	return true
}

// Backspace clears the focused slot if it holds a digit, then moves
// focus to the previous slot.
func (b *CodeBuffer) Backspace() {
	if b.slots[b.focus] != "" {
		b.slots[b.focus] = ""
	}
	if b.focus > 0 {
		b.focus--
	}
}

// Paste distributes a string of digits across the focused and following
// slots, overwriting their contents and truncating at the last slot.
// Focus lands on the slot after the last filled one (or the last valid
// index). A string containing any non-digit is rejected whole; a paste
// is never partially applied.
func (b *CodeBuffer) Paste(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	i := b.focus
	last := b.focus
	for _, r := range s {
		if i >= CodeLength {
			break
		}
		b.slots[i] = string(r)
		last = i
		i++
	}
	b.focus = last + 1
	if b.focus > CodeLength-1 {
		b.focus = CodeLength - 1
	}
	return true
}

// Complete reports whether all slots hold a digit.
func (b *CodeBuffer) Complete() bool {
	for _, s := range b.slots {
		if s == "" {
			return false
		}
	}
	return true
}

// Code joins the slots into the submitted string.
func (b *CodeBuffer) Code() string {
	return strings.Join(b.slots[:], "")
}

// Reset clears all slots and refocuses the first one.
func (b *CodeBuffer) Reset() {
	b.slots = [CodeLength]string{}
	b.focus = 0
}

// Focus returns the index of the focused slot.
func (b *CodeBuffer) Focus() int {
	return b.focus
}

// Slots returns a copy of the slot contents, empty string for a blank slot.
func (b *CodeBuffer) Slots() [CodeLength]string {
	return b.slots
}
