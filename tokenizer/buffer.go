package tokenizer

import "github.com/wikitextgo/wikitok/token"

// writeText appends one scalar to the active frame's pending text buffer.
func (t *tokenizer) writeText(ch rune) {
	t.top().buffer.WriteRune(ch)
}

// writeAll appends every scalar of s to the active frame's pending text
// buffer in one call. Unlike writeText, this is also the path used to
// merge a spliced token list's leading Text token into the parent's
// buffer (see splice), which is the one place two pending text spans are
// concatenated across what were originally frame boundaries.
func (t *tokenizer) writeAll(s string) {
	t.top().buffer.WriteString(s)
}

// flush emits the active frame's pending text buffer as a single Text
// token, if it holds any characters, and resets it. Every operation that
// appends a non-Text token, pops a frame, splices a token list, or reaches
// end of input must call flush first, so that two Text tokens are never
// adjacent in the output (spec §8 invariant 2).
func (t *tokenizer) flush() {
	f := t.top()
	if f.buffer.Len() == 0 {
		return
	}
	f.tokens = append(f.tokens, token.Text(f.buffer.String()))
	f.buffer.Reset()
}

// emit flushes any pending text, then appends tok to the active frame.
func (t *tokenizer) emit(tok *token.Token) {
	t.flush()
	t.top().tokens = append(t.top().tokens, tok)
}

// prepend flushes any pending text, then inserts tok at the front of the
// active frame's token list. Used by the template/argument handlers to
// write their Open token ahead of a body that has already been parsed.
func (t *tokenizer) prepend(tok *token.Token) {
	t.flush()
	f := t.top()
	f.tokens = append([]*token.Token{tok}, f.tokens...)
}

// splice flushes the parent's pending text, then appends toks to the
// active frame's token list. If toks begins with a Text token, its
// characters are merged into the parent's pending buffer instead of being
// emitted as a standalone token — this is what preserves invariant (2)
// across construct boundaries (spec §4.1, §9 "Text-buffer merging").
func (t *tokenizer) splice(toks []*token.Token) {
	if len(toks) == 0 {
		return
	}
	if toks[0].IsText() {
		t.writeAll(toks[0].Text)
		toks = toks[1:]
	}
	if len(toks) == 0 {
		return
	}
	t.flush()
	f := t.top()
	f.tokens = append(f.tokens, toks...)
}
