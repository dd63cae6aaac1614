package utils

import (
	"strings"
	"unicode/utf8"
)

// DefaultDelimiters splits on space, comma and line/tab whitespace.
const DefaultDelimiters = " ,\n\r\t"

type TokenizeOptions struct {
	Delimiters string
	Lowercase  bool
}

func DefaultTokenizeOptions() TokenizeOptions {
	return TokenizeOptions{Delimiters: DefaultDelimiters, Lowercase: true}
}

// split cuts text at every delimiter rune, keeping empty pieces between
// adjacent delimiters.
func split(text, delimiters string) []string {
	var tokens []string
	start := 0

	for i, r := range text {
		if strings.ContainsRune(delimiters, r) {
			tokens = append(tokens, text[start:i])
			_, size := utf8.DecodeRuneInString(text[i:])
			start = i + size
		}
	}
	return append(tokens, text[start:])
}

// Tokenize splits text on any rune in delimiters and drops empty tokens.
func Tokenize(text, delimiters string) []string {
	return emptyFilter(split(text, delimiters))
}

// Analyze runs Tokenize followed by the optional lowercase filter.
func Analyze(text string, opts TokenizeOptions) []string {
	tokens := Tokenize(text, opts.Delimiters)
	if opts.Lowercase {
		tokens = lowercaseFilter(tokens)
	}
	return tokens
}
