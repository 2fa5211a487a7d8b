package tokenizer

import (
	"github.com/wikitextgo/wikitok/token"
	"github.com/wikitextgo/wikitok/wikicontext"
)

// parseWikilink handles '[[' (spec §4.5.8). Unlike templates and
// arguments, a wikilink has no competing interpretation to speculate
// between — it either closes cleanly or it was never a wikilink at all —
// so it writes directly into whatever frame is already active rather than
// staging in a frame of its own.
func (t *tokenizer) parseWikilink() {
	t.advanceBy(2)
	reset := t.head

	toks, ok := t.tryParse(wikicontext.Wikilink | wikicontext.WikilinkTitle)
	if !ok {
		t.head = reset
		t.writeAll("[[")
		return
	}
	t.emit(token.WikilinkOpen())
	t.splice(toks)
	t.emit(token.WikilinkClose())
}

// handleWikilinkSeparator handles '|' inside a wikilink's title segment
// (spec §4.5.8), switching it to the display-text segment.
func (t *tokenizer) handleWikilinkSeparator() {
	ctx := t.context().Clear(wikicontext.WikilinkTitle).Set(wikicontext.WikilinkText)
	t.setContext(ctx)
	t.emit(token.WikilinkSeparator())
	t.advance()
}

// handleWikilinkEnd handles ']]' inside a wikilink (spec §4.5.8).
func (t *tokenizer) handleWikilinkEnd() []*token.Token {
	t.advanceBy(2)
	return t.pop()
}
