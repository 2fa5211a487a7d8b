package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/wikitextgo/wikitok/token"
	"github.com/wikitextgo/wikitok/tokenizer"
)

var outputFormat string

var tokenizeCmd = &cobra.Command{
	Use:     "tokenize <wikicode-file>",
	GroupID: "tokenize",
	Short:   "Tokenize a wikicode file and print the resulting token stream.",
	Long:    `Tokenize reads a wikicode file, runs it through the tokenizer, and prints the resulting token stream as indented JSON or a one-token-per-line listing.`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runTokenize(cmd, args); err != nil {
			cmd.PrintErrln("Error:", err)
		}
	},
}

func init() {
	tokenizeCmd.Flags().StringVar(&outputFormat, "format", "json", `output format: "json" or "text"`)
}

// runTokenize resolves the input file, runs the tokenizer, and prints the
// result in the requested format.
func runTokenize(cmd *cobra.Command, args []string) error {
	fullPath, err := resolveFilePath(args)
	if err != nil {
		return err
	}

	source, err := readSourceFile(fullPath)
	if err != nil {
		return err
	}

	toks, err := tokenizer.Tokenize(context.Background(), source)
	if err != nil {
		return fmt.Errorf("tokenize failed: %w", err)
	}

	switch outputFormat {
	case "text":
		printText(cmd, toks)
	case "json":
		return printJSON(cmd, toks)
	default:
		return fmt.Errorf("unknown --format %q (want \"json\" or \"text\")", outputFormat)
	}
	return nil
}

// resolveFilePath validates the CLI arguments and returns the absolute path
// to the wikicode file.
func resolveFilePath(args []string) (string, error) {
	if args[0] == "" {
		return "", fmt.Errorf("no wikicode file provided")
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("unable to get current working directory: %w", err)
	}

	fullPath := filepath.Join(cwd, args[0])
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return "", fmt.Errorf("wikicode file does not exist at path: %s", fullPath)
	}
	return fullPath, nil
}

// readSourceFile reads the wikicode source file and returns its content.
func readSourceFile(path string) (string, error) {
	sourceBytes, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read wikicode file: %w", err)
	}
	return string(sourceBytes), nil
}

// jsonToken is the printable representation of a *token.Token; Token
// itself carries an unexported level field, so the CLI flattens it into
// a plain struct rather than exposing tokenizer internals via reflection.
type jsonToken struct {
	Kind    string `json:"kind"`
	Text    string `json:"text,omitempty"`
	Level   int    `json:"level,omitempty"`
	Literal string `json:"literal"`
}

func printJSON(cmd *cobra.Command, toks []*token.Token) error {
	out := make([]jsonToken, 0, len(toks))
	for _, tok := range toks {
		out = append(out, jsonToken{
			Kind:    tok.Kind.String(),
			Text:    tok.Text,
			Level:   tok.Level(),
			Literal: tok.Literal(),
		})
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printText(cmd *cobra.Command, toks []*token.Token) {
	w := cmd.OutOrStdout()
	for _, tok := range toks {
		if tok.IsText() {
			fmt.Fprintf(w, "%-24s %q\n", tok.Kind, tok.Text)
			continue
		}
		if tok.Level() > 0 {
			fmt.Fprintf(w, "%-24s level=%d\n", tok.Kind, tok.Level())
			continue
		}
		fmt.Fprintf(w, "%-24s\n", tok.Kind)
	}
}
