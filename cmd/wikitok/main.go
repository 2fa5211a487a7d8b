// Command wikitok is a small manual-exploration CLI around the tokenizer
// library. It is ambient tooling, not part of the tokenizer's contract
// (spec §6 excludes a CLI from the core).
package main

import "github.com/wikitextgo/wikitok/cmd/wikitok/cmd"

func main() {
	cmd.Execute()
}
