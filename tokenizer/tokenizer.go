// Package tokenizer implements the context-driven recursive-descent
// tokenizer for MediaWiki wikicode. Tokenize is the sole entry point; the
// *tokenizer value it creates owns all mutable parse state (cursor, frame
// stack, the single "inside a heading" flag) and is never shared across
// calls — concurrent callers tokenizing distinct input need no locking.
package tokenizer

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/wikitextgo/wikitok/token"
	"github.com/wikitextgo/wikitok/tokenizer/trace"
	"github.com/wikitextgo/wikitok/wikicontext"
)

// tokenizer is the single owned state value threaded through every
// handler by receiver. No package-level state exists (spec §9 "Recursive
// descent with shared mutable state").
type tokenizer struct {
	input []rune
	head  int

	stack []*frame

	// headingInProgress is GL_HEADING (spec §3 "Global flags"): the one
	// global bit, set while any heading parse is underway, preventing a
	// nested '=' from starting another heading attempt.
	headingInProgress bool

	// lastHeadingLevel carries the resolved level of the most recently
	// completed heading-end lookahead (handleHeadingEnd) back to its
	// caller. parse()'s signature is shared by every context, so this
	// single extra return channel avoids a heading-only variant of it;
	// it is always read immediately by the call that produced it, before
	// any nested lookahead could overwrite it (spec §4.5.9).
	lastHeadingLevel int

	rec *trace.Recorder
}

// Option configures a Tokenize call. The zero Option set is the common
// case; WithTrace is the one optional hook (spec §10.1, tokenizer/trace).
type Option func(*tokenizer)

// WithTrace attaches a *trace.Recorder that records every route attempt
// and failure during the call. Passing a nil Recorder is equivalent to
// omitting the option.
func WithTrace(rec *trace.Recorder) Option {
	return func(t *tokenizer) { t.rec = rec }
}

// Tokenize parses text into a flat token sequence. The returned error is
// non-nil only when ctx is already done or text is not valid UTF-8; no
// syntactically malformed
// wikicode ever produces a non-nil error (spec §7) — the worst case is
// literal text in the output where a construct was likely intended.
//
// ctx is checked once at the call boundary. Tokenize never blocks or
// suspends mid-parse, so it is never polled again after that check; it
// exists purely so a caller embedding this in a larger cancellable
// pipeline can bail out between Tokenize calls (spec §5).
func Tokenize(ctx context.Context, text string, opts ...Option) ([]*token.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !utf8.ValidString(text) {
		return nil, &InputError{Value: text, Message: "input is not valid UTF-8"}
	}

	t := &tokenizer{input: []rune(text)}
	for _, opt := range opts {
		opt(t)
	}

	return t.parse(0), nil
}

// site describes the tokenizer's current position and active construct,
// for attaching to a trace entry.
func (t *tokenizer) site() trace.Site {
	return trace.Site{Offset: t.head, Construct: constructName(t.context())}
}

func (t *tokenizer) traceRoute(message string) {
	if t.rec == nil {
		return
	}
	t.rec.Route(t.site(), message)
}

func (t *tokenizer) traceFailure(message string) {
	if t.rec == nil {
		return
	}
	t.rec.Failure(t.site(), message)
}

// constructName renders the "parent" construct bit of ctx as a short name
// for trace output. It is diagnostic only — never consulted by parse logic.
func constructName(ctx wikicontext.Flags) string {
	switch {
	case ctx.Any(wikicontext.Template):
		return "template"
	case ctx.Any(wikicontext.Argument):
		return "argument"
	case ctx.Any(wikicontext.Wikilink):
		return "wikilink"
	case ctx.Any(wikicontext.Heading):
		return fmt.Sprintf("heading(level=%d)", wikicontext.HeadingLevelFromFlags(ctx))
	case ctx.Any(wikicontext.Comment):
		return "comment"
	default:
		return "root"
	}
}
