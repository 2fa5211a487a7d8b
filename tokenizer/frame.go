package tokenizer

import (
	"strings"

	"github.com/wikitextgo/wikitok/token"
	"github.com/wikitextgo/wikitok/wikicontext"
)

// frame is the unit of speculation: an in-progress token list, the
// context it is being parsed under, and the pending text buffer for
// literal characters seen so far in this frame.
type frame struct {
	tokens  []*token.Token
	context wikicontext.Flags
	buffer  strings.Builder
}

// top returns the active (innermost) frame. Callers never hold this
// across a push/pop of their own making, since the slice backing the
// stack can move.
func (t *tokenizer) top() *frame {
	return t.stack[len(t.stack)-1]
}

// context returns the active frame's context bitset.
func (t *tokenizer) context() wikicontext.Flags {
	return t.top().context
}

// setContext replaces the active frame's context bitset.
func (t *tokenizer) setContext(c wikicontext.Flags) {
	t.top().context = c
}

// push creates a new empty frame with the given context and makes it the
// active frame.
func (t *tokenizer) push(context wikicontext.Flags) {
	t.stack = append(t.stack, &frame{context: context})
}

// pop flushes the active frame, detaches it, returns its tokens, and
// reinstates the parent frame. The parent's context is left unchanged.
func (t *tokenizer) pop() []*token.Token {
	t.flush()
	n := len(t.stack)
	popped := t.stack[n-1]
	t.stack = t.stack[:n-1]
	return popped.tokens
}

// deleteTop discards the active frame's tokens and buffer entirely,
// without appending anything to the parent. Used on route failure.
func (t *tokenizer) deleteTop() {
	n := len(t.stack)
	t.stack = t.stack[:n-1]
}
