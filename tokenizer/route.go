package tokenizer

import (
	"github.com/wikitextgo/wikitok/token"
	"github.com/wikitextgo/wikitok/wikicontext"
)

// routeFailure is a private sentinel panicked by failRoute and recovered
// only by tryParse. Mirrors the bailout{} pattern used to unwind a deep
// recursive-descent parser without every intermediate frame threading an
// error return (spec §7, §9 "Non-local failure").
type routeFailure struct{}

// failRoute discards the active frame and unwinds to the nearest tryParse
// call. It never returns.
func (t *tokenizer) failRoute() {
	t.traceFailure("route failed")
	t.deleteTop()
	panic(routeFailure{})
}

// tryParse runs a speculative parse of context and reports whether it
// succeeded. On success it returns the parsed token list and true. On
// route failure it returns (nil, false); the active frame at the point of
// failure has already been discarded by failRoute, so the caller is left
// with whatever frame was active before the attempt and is responsible
// for repositioning the head and choosing a fallback.
//
// Any panic other than the routeFailure sentinel propagates unchanged: a
// genuine programming bug must never be silently absorbed as an ambiguous
// parse.
func (t *tokenizer) tryParse(context wikicontext.Flags) (toks []*token.Token, ok bool) {
	t.traceRoute("attempting route")
	defer func() {
		if r := recover(); r != nil {
			if _, isRouteFailure := r.(routeFailure); isRouteFailure {
				toks, ok = nil, false
				return
			}
			panic(r)
		}
	}()
	return t.parse(context), true
}
