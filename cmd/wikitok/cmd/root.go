package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wikitok",
	Short: "wikitok tokenizes MediaWiki wikicode",
	Long:  `wikitok is a command-line wrapper around the wikitext tokenizer library.`,
}

// Execute runs the root command, exiting non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddGroup(&cobra.Group{
		ID:    "tokenize",
		Title: "Tokenizing",
	})

	rootCmd.AddCommand(tokenizeCmd)
}
