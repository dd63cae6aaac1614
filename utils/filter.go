package utils

import (
	"strings"
)

// In-place removal of empty tokens
func emptyFilter(tokens []string) []string {
	n := 0
	for _, token := range tokens {
		if token != "" {
			tokens[n] = token
			n++
		}
	}
	return tokens[:n]
}

// In-place lowercase transformation
func lowercaseFilter(tokens []string) []string {
	for i := range tokens {
		tokens[i] = strings.ToLower(tokens[i])
	}
	return tokens
}
