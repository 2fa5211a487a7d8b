package tokenizer

import (
	"strings"

	"github.com/wikitextgo/wikitok/token"
	"github.com/wikitextgo/wikitok/wikicontext"
)

// parseHeading handles '=' at the start of a line, outside any heading
// already in progress (spec §4.5.9). The opening run's length is clamped
// to 6 for context purposes; a longer run still folds its surplus '='
// characters into the title as literal text.
func (t *tokenizer) parseHeading() {
	start := t.head
	best := 0
	for t.read(best) == '=' {
		best++
	}
	clamped := best
	if clamped > 6 {
		clamped = 6
	}
	t.advanceBy(best)
	t.headingInProgress = true

	toks, ok := t.tryParse(wikicontext.Heading | wikicontext.HeadingLevelFlag(clamped))
	if !ok {
		// Consume the whole opening run here rather than leaving any of
		// it for the dispatch loop to re-read: the whole run has just
		// been written as literal text, so re-reading part of it would
		// duplicate characters, and for a one-character run "reset to
		// start+best-1" (spec §4.5.9) is start itself, where
		// atLineStart() still holds and this same failing attempt
		// would repeat forever. Advancing past the whole run guarantees
		// progress.
		t.head = start + best
		t.writeAll(strings.Repeat("=", best))
		t.headingInProgress = false
		return
	}

	level := t.lastHeadingLevel
	t.emit(token.HeadingStart(level))
	if best > level {
		t.writeAll(strings.Repeat("=", best-level))
	}
	t.splice(toks)
	t.emit(token.HeadingEnd(level))
	t.headingInProgress = false
}

// handleHeadingEnd handles '=' inside a heading (spec §4.5.9). It counts
// the run of '=' at this position, then speculatively looks further ahead
// for a run that is a better (rightmost, still-compatible) terminator: if
// one exists, this run was not the true end after all and folds into the
// title as literal text instead; the bubbled-up result is whatever the
// deeper call already resolved. If none exists, this run is the
// terminator, clamped to the level this heading opened with, with any
// surplus folded as literal text ahead of it.
//
// A newline encountered while still inside a heading fails the route
// outright (dispatch rule, not handled here) — an unterminated heading on
// one line is never emitted as a heading at all.
func (t *tokenizer) handleHeadingEnd() []*token.Token {
	ctx := t.context()
	opened := wikicontext.HeadingLevelFromFlags(ctx)

	best := 0
	for t.read(best) == '=' {
		best++
	}
	level := min3(best, opened, 6)
	postRun := t.head + best
	t.advanceBy(best)

	innerToks, ok := t.tryParse(ctx)
	if ok {
		// A further, better-terminating '=' run exists later on this
		// line, so this run was never the close at all — it folds into
		// the title verbatim, uncapped by level.
		t.writeAll(strings.Repeat("=", best))
		t.splice(innerToks)
		return t.pop()
	}

	// This run is the terminator. Any surplus beyond the resolved level
	// (this run is longer than what the heading's own opening run can
	// match) folds into the title as trailing literal text, so it is
	// never silently dropped (spec §8 invariant 1).
	t.head = postRun
	if best > level {
		t.writeAll(strings.Repeat("=", best-level))
	}
	t.lastHeadingLevel = level
	return t.pop()
}
