package tokenizer

import (
	"unicode"

	"github.com/wikitextgo/wikitok/wikicontext"
)

// nameContexts is the set of context bits under which the safety verifier
// applies: the name-like segments of templates, wikilinks, and arguments,
// where MediaWiki forbids mid-name braces/brackets and multi-line spans.
const nameContexts = wikicontext.TemplateName | wikicontext.WikilinkTitle |
	wikicontext.TemplateParamKey | wikicontext.ArgumentName

// checkSafety rejects forbidden characters inside name-like contexts
// (spec §4.6). It is a no-op outside those contexts. A rejection fails
// the active route; it never returns once it has panicked.
func (t *tokenizer) checkSafety(this rune) {
	ctx := t.context()
	if !ctx.Any(nameContexts) {
		return
	}

	if ctx.Has(wikicontext.FailNext) {
		t.failRoute()
	}
	if this == empty {
		return
	}

	if ctx.Any(wikicontext.TemplateName | wikicontext.WikilinkTitle) {
		switch this {
		case '{', '}', '[', ']':
			t.setContext(t.context().Set(wikicontext.FailNext))
		}
	}

	if ctx.Any(wikicontext.TemplateParamKey | wikicontext.ArgumentName) {
		t.armOnMatch(this, '{', wikicontext.FailOnLBrace)
		t.armOnMatch(this, '}', wikicontext.FailOnRBrace)
	}

	cur := t.context()
	if cur.Has(wikicontext.FailOnText) && !unicode.IsSpace(this) {
		t.failRoute()
	}
	if !cur.Has(wikicontext.HasText) && !unicode.IsSpace(this) {
		cur = cur.Set(wikicontext.HasText)
		t.setContext(cur)
	}
	if cur.Has(wikicontext.HasText) && this == '\n' {
		t.setContext(cur.Set(wikicontext.FailOnText))
	}
}

// armOnMatch implements the one-character-armed brace check: seeing match
// a first time arms bit; seeing it again with bit already armed fails the
// route (a repeated brace mid-name); seeing any other character disarms
// bit, since the pending pair never completed.
func (t *tokenizer) armOnMatch(this, match rune, bit wikicontext.Flag) {
	cur := t.context()
	if this == match {
		if cur.Has(bit) {
			t.failRoute()
		}
		t.setContext(cur.Set(bit))
		return
	}
	if cur.Has(bit) {
		t.setContext(cur.Clear(bit))
	}
}
