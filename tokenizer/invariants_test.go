package tokenizer

import (
	"testing"

	"github.com/wikitextgo/wikitok/token"
)

// corpus is a grab-bag of inputs chosen to exercise ambiguous and
// overlapping constructs together, not just one at a time (spec §8
// invariants 1-3).
var corpus = []string{
	"",
	"plain text with no markup at all",
	"{{tpl}}",
	"{{tpl|a|b|c}}",
	"{{tpl|k1=v1|k2=v2}}",
	"{{{arg}}}",
	"{{{arg|default value}}}",
	"{{{{nested template}}}}",
	"{{{{{triple nested}}}}}",
	"{{outer|{{inner}}}}",
	"{{outer|{{{inner_arg}}}}}",
	"[[Simple link]]",
	"[[Page|Display text]]",
	"[[Outer [[not a real nested link]] text]]",
	"text before [[link]] text after {{tpl}} more text",
	"== H2 ==",
	"=== H3 with {{template}} inside ===",
	"= H1 =\n== H2 ==\n=== H3 ===\n",
	"==== level 4 with extra === surplus ====",
	"======= seven equals clamps to six =======",
	"not at line start = so not a heading =",
	"<!-- a comment -->",
	"<!-- unterminated comment",
	"text &amp; more &#169; and &#x3B1; entities",
	"&bogus; stays literal",
	"{{",
	"{{{",
	"[[",
	"<!--",
	"{{{{x}}}}{{{y}}}{{z}}",
	"mixed [[link|{{tpl}}]] and {{tpl2|[[link2]]}}",
	"heading with pipe == not a template | just text ==",
	"{{tpl\nwith newline in name}}",
	"[[link\nwith newline in title]]",
}

func TestRoundTrip(t *testing.T) {
	for _, input := range corpus {
		toks := mustTokenize(t, input)
		if got := render(toks); got != input {
			t.Errorf("render(Tokenize(%q)) = %q, want %q", input, got, input)
		}
	}
}

func TestNoAdjacentTextTokens(t *testing.T) {
	for _, input := range corpus {
		toks := mustTokenize(t, input)
		for i := 1; i < len(toks); i++ {
			if toks[i-1].IsText() && toks[i].IsText() {
				t.Errorf("Tokenize(%q) produced adjacent Text tokens at index %d", input, i-1)
			}
		}
	}
}

func TestBalancedDelimiters(t *testing.T) {
	pairs := map[string]string{
		"TemplateOpen": "TemplateClose",
		"ArgumentOpen": "ArgumentClose",
		"WikilinkOpen": "WikilinkClose",
		"CommentStart": "CommentEnd",
		"HeadingStart": "HeadingEnd",
	}
	opens := map[string]bool{}
	for o := range pairs {
		opens[o] = true
	}

	for _, input := range corpus {
		toks := mustTokenize(t, input)
		var stack []string
		for _, tok := range toks {
			kind := tok.Kind.String()
			if opens[kind] {
				stack = append(stack, kind)
				continue
			}
			for open, close := range pairs {
				if kind != close {
					continue
				}
				if len(stack) == 0 || stack[len(stack)-1] != open {
					t.Fatalf("Tokenize(%q): %s with no matching %s on top of stack (stack=%v)", input, close, open, stack)
				}
				stack = stack[:len(stack)-1]
			}
		}
		if len(stack) != 0 {
			t.Fatalf("Tokenize(%q): unbalanced construct tokens, left open: %v", input, stack)
		}
	}
}

func TestHeadingLevelsWithinRange(t *testing.T) {
	for _, input := range corpus {
		toks := mustTokenize(t, input)
		for _, tok := range toks {
			if tok.Kind.String() != "HeadingStart" {
				continue
			}
			if lvl := tok.Level(); lvl < 1 || lvl > 6 {
				t.Errorf("Tokenize(%q): HeadingStart level %d out of [1,6]", input, lvl)
			}
		}
	}
}

func TestIdempotenceOnPlainText(t *testing.T) {
	input := "just some plain running text with punctuation, but no markers."
	toks := mustTokenize(t, input)
	if len(toks) != 1 || !toks[0].IsText() || toks[0].Text != input {
		t.Fatalf("Tokenize(%q) = %v, want a single Text token", input, summarize(toks))
	}
}

// sanity check that summary/render test helpers agree with the real
// constructors, since the handwritten expectations in tokenize_test.go
// must track token/token.go exactly.
func TestSummaryHelpersMatchConstructors(t *testing.T) {
	toks := []*token.Token{token.TemplateOpen(), token.Text("x"), token.TemplateClose()}
	got := summarize(toks)
	want := []summary{sTok("TemplateOpen"), sText("x"), sTok("TemplateClose")}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("summarize mismatch at %d: got %+v want %+v", i, got[i], want[i])
		}
	}
}
