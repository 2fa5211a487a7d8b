package tokenizer

import (
	"github.com/wikitextgo/wikitok/token"
	"github.com/wikitextgo/wikitok/wikicontext"
)

// parseComment handles '<!--' (spec §4.5.10). An unclosed comment running
// to end of input is never a route failure the caller needs to recover
// from gracefully elsewhere — dispatch's Comment short-circuit already
// fails the route itself on EOF, so tryParse reliably reports failure.
func (t *tokenizer) parseComment() {
	t.advanceBy(4)
	reset := t.head

	toks, ok := t.tryParse(wikicontext.Comment)
	if !ok {
		t.head = reset
		t.writeAll("<!--")
		return
	}
	t.emit(token.CommentStart())
	t.splice(toks)
	t.emit(token.CommentEnd())
	t.advanceBy(3)
}

// handleCommentEnd pops the comment frame without consuming the trailing
// '-->' itself — parseComment advances past it once tryParse has returned,
// since the closing delimiter's three characters are shared between the
// dispatch loop's look-ahead test and this handler's caller.
func (t *tokenizer) handleCommentEnd() []*token.Token {
	return t.pop()
}
