package tokenizer

import "fmt"

// InputError reports that Tokenize was given input it cannot process at
// all. This is distinct from a syntactically malformed construct — an
// unclosed "{{" or a bad entity name is never an error, only literal text
// in the output (spec §7). InputError is reserved for the input failing
// to even be valid Unicode text.
type InputError struct {
	Value   string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("tokenizer: %s", e.Message)
}
