package tokenizer

// empty is the sentinel returned by read/readBackwards for an out-of-bounds
// position. It is never a legal Unicode scalar value (scalar values are
// bounded to 0..0x10FFFF minus the surrogate range), so it cannot be
// confused with real input.
const empty rune = -1

// read returns the scalar at head+delta, or empty if that position falls
// outside the input. delta may be zero or negative; a negative delta is
// equivalent to readBackwards(-delta).
func (t *tokenizer) read(delta int) rune {
	i := t.head + delta
	if i < 0 || i >= len(t.input) {
		return empty
	}
	return t.input[i]
}

// readBackwards returns the scalar delta positions behind head, or empty
// if that position is before the start of input.
func (t *tokenizer) readBackwards(delta int) rune {
	return t.read(-delta)
}

// current returns the scalar at the head, or empty at end of input.
func (t *tokenizer) current() rune {
	return t.read(0)
}

// advance steps the head forward by one.
func (t *tokenizer) advance() {
	t.head++
}

// advanceBy steps the head forward by n.
func (t *tokenizer) advanceBy(n int) {
	t.head += n
}

// runesBetween returns the literal source text between absolute rune
// offsets [from, to), relative to the whole input. Used by handlers that
// need to capture a run of characters they have only scanned with read,
// not yet consumed with advance.
func (t *tokenizer) runesBetween(from, to int) string {
	return string(t.input[from:to])
}
