package tokenizer

import "testing"

// TestHeadingLevelResolution exercises spec §4.5.9 / §9's Open Question:
// the level of a heading is min(opening run, closing run, 6), and any
// surplus '=' on either side folds into the title as literal text.
func TestHeadingLevelResolution(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLevel int
	}{
		{"symmetric level 1", "=T=", 1},
		{"symmetric level 3", "===T===", 3},
		{"symmetric level 6", "======T======", 6},
		{"more than 6 clamps to 6", "=======T=======", 6},
		{"asymmetric opening wider", "===T=", 1},
		{"asymmetric closing wider", "=T===", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := mustTokenize(t, tt.input)
			if got := render(toks); got != tt.input {
				t.Fatalf("render mismatch: got %q want %q", got, tt.input)
			}

			var starts, ends int
			for _, tok := range toks {
				switch tok.Kind.String() {
				case "HeadingStart":
					starts++
					if tok.Level() != tt.wantLevel {
						t.Errorf("HeadingStart level = %d, want %d", tok.Level(), tt.wantLevel)
					}
				case "HeadingEnd":
					ends++
					if tok.Level() != tt.wantLevel {
						t.Errorf("HeadingEnd level = %d, want %d", tok.Level(), tt.wantLevel)
					}
				}
			}
			if starts != 1 || ends != 1 {
				t.Fatalf("got %d HeadingStart and %d HeadingEnd, want exactly 1 each", starts, ends)
			}
		})
	}
}

// TestHeadingRequiresLineStart checks that '=' mid-line never opens a
// heading even when it would otherwise look like one.
func TestHeadingRequiresLineStart(t *testing.T) {
	input := "not at line start == so not a heading =="
	toks := mustTokenize(t, input)
	for _, tok := range toks {
		if tok.Kind.String() == "HeadingStart" {
			t.Fatalf("Tokenize(%q) produced a HeadingStart, want none", input)
		}
	}
	if got := render(toks); got != input {
		t.Fatalf("render mismatch: got %q want %q", got, input)
	}
}

// TestHeadingNewlineFailsRoute checks that an opened heading with no
// terminator before the next newline is emitted as plain literal text,
// including the '\n' itself.
func TestHeadingNewlineFailsRoute(t *testing.T) {
	input := "== never closed\nnext line\n"
	toks := mustTokenize(t, input)
	for _, tok := range toks {
		if tok.Kind.String() == "HeadingStart" {
			t.Fatalf("Tokenize(%q) produced a HeadingStart, want none (unterminated heading)", input)
		}
	}
	if got := render(toks); got != input {
		t.Fatalf("render mismatch: got %q want %q", got, input)
	}
}

// TestHeadingDoesNotNestGlobalFlag checks that a second '=' run while
// already resolving one heading on the same line does not spuriously
// start a nested heading attempt (GL_HEADING, spec §3/§4.5.9).
func TestHeadingDoesNotNestGlobalFlag(t *testing.T) {
	input := "== first == still on == same line ==\n"
	toks := mustTokenize(t, input)
	if got := render(toks); got != input {
		t.Fatalf("render mismatch: got %q want %q", got, input)
	}
}
