package tokenizer

import (
	"github.com/wikitextgo/wikitok/token"
	"github.com/wikitextgo/wikitok/wikicontext"
)

// tryArgument attempts an argument ({{{ ... }}}) starting at the current
// head (spec §4.5.3). Shape mirrors tryTemplate exactly; only the context
// and the wrapping tokens differ.
func (t *tokenizer) tryArgument() bool {
	reset := t.head
	toks, ok := t.tryParse(wikicontext.Argument | wikicontext.ArgumentName)
	if !ok {
		t.head = reset
		return false
	}
	t.prepend(token.ArgumentOpen())
	t.splice(toks)
	t.emit(token.ArgumentClose())
	return true
}

// handleArgumentSeparator handles '|' inside an argument's name segment
// (spec §4.5.7), switching it to the default-value segment.
func (t *tokenizer) handleArgumentSeparator() {
	ctx := t.context().Clear(wikicontext.ArgumentName).Set(wikicontext.ArgumentDefault)
	t.setContext(ctx)
	t.emit(token.ArgumentSeparator())
	t.advance()
}

// handleArgumentEnd handles '}}}' inside an argument (spec §4.5.7).
func (t *tokenizer) handleArgumentEnd() []*token.Token {
	t.advanceBy(3)
	return t.pop()
}
