package tokenizer

import (
	"strings"

	"github.com/wikitextgo/wikitok/token"
	"github.com/wikitextgo/wikitok/wikicontext"
)

// parseTemplateOrArgument resolves a run of two or more consecutive '{'
// characters. Argument ({{{ }}}) is always attempted before template
// ({{ }}) whenever three or more braces are available, since an argument
// consumes one more brace per success; whatever braces are left over once
// neither interpretation can consume any more become literal text (spec
// §4.5.1). The head is advanced past the whole run up front — every
// attempt below reads from whatever position the previous attempt's own
// closing delimiter left behind, not from a re-scan of the run itself.
func (t *tokenizer) parseTemplateOrArgument() {
	total := 0
	for t.read(total) == '{' {
		total++
	}
	t.advanceBy(total)
	t.push(0)

	remaining := total
	literalPrefix := 0
	for remaining >= 2 {
		if remaining == 2 {
			if !t.tryTemplate() {
				literalPrefix += 2
			}
			remaining = 0
			continue
		}
		if t.tryArgument() {
			remaining -= 3
			continue
		}
		if t.tryTemplate() {
			remaining -= 2
			continue
		}
		literalPrefix += remaining
		remaining = 0
	}
	literalPrefix += remaining

	built := t.pop()
	if literalPrefix > 0 {
		t.writeAll(strings.Repeat("{", literalPrefix))
	}
	t.splice(built)
}

// tryTemplate attempts a template starting at the current head. On success
// it wraps the parsed name in TemplateOpen/TemplateClose around the active
// frame's existing content (spec §4.5.2); on failure the head is restored
// and the active frame is left untouched.
func (t *tokenizer) tryTemplate() bool {
	reset := t.head
	toks, ok := t.tryParse(wikicontext.Template | wikicontext.TemplateName)
	if !ok {
		t.head = reset
		return false
	}
	t.prepend(token.TemplateOpen())
	t.splice(toks)
	t.emit(token.TemplateClose())
	return true
}

// handleTemplateParam handles '|' inside a template (spec §4.5.4). Every
// parameter segment — name, each key, each value — shares the single frame
// pushed for the template's name parse; a pipe only changes which segment
// bit is active and marks a parameter boundary with a separator token.
func (t *tokenizer) handleTemplateParam() {
	ctx := t.context().Clear(wikicontext.TemplateName | wikicontext.TemplateParamValue | wikicontext.TemplateParamKey)
	ctx = ctx.Set(wikicontext.TemplateParamKey)
	t.setContext(ctx)
	t.emit(token.TemplateParamSeparator())
	t.advance()
}

// handleTemplateParamValue handles '=' inside a template parameter key
// (spec §4.5.5), switching the active segment from key to value.
func (t *tokenizer) handleTemplateParamValue() {
	ctx := t.context().Clear(wikicontext.TemplateParamKey).Set(wikicontext.TemplateParamValue)
	t.setContext(ctx)
	t.emit(token.TemplateParamEquals())
	t.advance()
}

// handleTemplateEnd handles '}}' inside a template (spec §4.5.6), closing
// out whatever segment was active and returning the frame's tokens to the
// caller of the name parse (tryTemplate, via tryParse).
func (t *tokenizer) handleTemplateEnd() []*token.Token {
	t.advanceBy(2)
	return t.pop()
}
