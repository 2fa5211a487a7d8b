package tokenizer

import (
	"github.com/wikitextgo/wikitok/token"
	"github.com/wikitextgo/wikitok/wikicontext"
)

// isMarker reports whether r is in the marker set, which covers every
// character the dispatch cascade below tests for. Anything outside this set is always literal text, so the common case
// (running text) costs one membership test and nothing else.
func isMarker(r rune) bool {
	switch r {
	case '{', '}', '[', ']', '<', '>', '|', '=', '&', '#', '*', ';', ':', '/', '-', '!', '\n':
		return true
	}
	return false
}

// parse pushes a fresh frame with the given context and runs the dispatch
// loop against it until the frame is popped (normal end-of-construct or
// end-of-input) or a route failure unwinds out of it. It is the single
// recursive entry point every construct handler calls to parse a body
// under a narrower context (spec §4.7, §9 "Recursive descent with shared
// mutable state").
func (t *tokenizer) parse(ctx wikicontext.Flags) []*token.Token {
	t.push(ctx)

	for {
		this := t.current()

		if t.context().Has(wikicontext.Comment) {
			if this == '-' && t.read(1) == '-' && t.read(2) == '>' {
				return t.handleCommentEnd()
			}
			if this == empty {
				t.failRoute()
			}
			t.writeText(this)
			t.advance()
			continue
		}

		t.checkSafety(this)

		if this == empty {
			if t.context().Any(wikicontext.FailContexts) {
				t.failRoute()
			}
			return t.pop()
		}

		if !isMarker(this) {
			t.writeText(this)
			t.advance()
			continue
		}

		ctx := t.context()
		switch {
		case this == '{' && t.read(1) == '{':
			t.parseTemplateOrArgument()
			t.setContext(t.context().Clear(wikicontext.FailNext))

		case this == '|' && ctx.Has(wikicontext.Template):
			t.handleTemplateParam()

		case this == '=' && ctx.Has(wikicontext.TemplateParamKey):
			t.handleTemplateParamValue()

		case this == '}' && t.read(1) == '}' && ctx.Has(wikicontext.Template):
			return t.handleTemplateEnd()

		case this == '|' && ctx.Has(wikicontext.ArgumentName):
			t.handleArgumentSeparator()

		case this == '}' && t.read(1) == '}' && t.read(2) == '}' && ctx.Has(wikicontext.Argument):
			return t.handleArgumentEnd()

		case this == '[' && t.read(1) == '[':
			if ctx.Has(wikicontext.WikilinkTitle) {
				t.writeText(this)
				t.advance()
			} else {
				t.parseWikilink()
			}

		case this == '|' && ctx.Has(wikicontext.WikilinkTitle):
			t.handleWikilinkSeparator()

		case this == ']' && t.read(1) == ']' && ctx.Has(wikicontext.Wikilink):
			return t.handleWikilinkEnd()

		case this == '=' && !t.headingInProgress && t.atLineStart():
			t.parseHeading()

		case this == '=' && ctx.Has(wikicontext.Heading):
			return t.handleHeadingEnd()

		case this == '\n' && ctx.Has(wikicontext.Heading):
			t.failRoute()

		case this == '&':
			t.parseEntity()

		case this == '<' && t.read(1) == '!' && t.read(2) == '-' && t.read(3) == '-':
			t.parseComment()

		default:
			t.writeText(this)
			t.advance()
		}
	}
}

// atLineStart reports whether the character immediately behind head is a
// newline or the start of input — the "start of line" test for heading
// entry (spec §4.5.9).
func (t *tokenizer) atLineStart() bool {
	prev := t.readBackwards(1)
	return prev == '\n' || prev == empty
}
