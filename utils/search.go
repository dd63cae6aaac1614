package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CompareOptions selects how a pattern is compared against text.
type CompareOptions uint8

const (
	// Literal is an exact, case-sensitive comparison.
	Literal CompareOptions = 0
	// CaseInsensitive compares runes under Unicode simple case folding.
	CaseInsensitive CompareOptions = 1 << 0
)

// Occurrence is a half-open byte range [Start, End) into the searched text.
type Occurrence struct {
	Start int
	End   int
}

func (o Occurrence) Len() int {
	return o.End - o.Start
}

// FindFirst returns the lowest-start occurrence of pattern in text.
// An empty pattern never matches.
func FindFirst(text, pattern string, opts CompareOptions) (Occurrence, bool) {
	if pattern == "" {
		return Occurrence{}, false
	}
	fold := opts&CaseInsensitive != 0
	for i := 0; i < len(text); {
		if n := matchAt(text[i:], pattern, fold); n > 0 {
			return Occurrence{Start: i, End: i + n}, true
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return Occurrence{}, false
}

// FindFirstStart returns the start of the first occurrence.
func FindFirstStart(text, pattern string, opts CompareOptions) (int, bool) {
	occ, ok := FindFirst(text, pattern, opts)
	return occ.Start, ok
}

// FindFirstEnd returns the position immediately after the first occurrence,
// i.e. where text following the pattern begins.
func FindFirstEnd(text, pattern string, opts CompareOptions) (int, bool) {
	occ, ok := FindFirst(text, pattern, opts)
	return occ.End, ok
}

// FindAll returns every non-overlapping occurrence of pattern, left to right.
// After each match the scan resumes at the match end; a zero-width match
// moves the cursor forward one rune so the loop always terminates.
func FindAll(text, pattern string, opts CompareOptions) []Occurrence {
	var out []Occurrence
	for cursor := 0; cursor < len(text); {
		occ, ok := FindFirst(text[cursor:], pattern, opts)
		if !ok {
			break
		}
		occ.Start += cursor
		occ.End += cursor
		out = append(out, occ)

		if occ.End > occ.Start {
			cursor = occ.End
			continue
		}
		_, size := utf8.DecodeRuneInString(text[occ.Start:])
		cursor = occ.Start + max(size, 1)
	}
	return out
}

func FindAllStarts(text, pattern string, opts CompareOptions) []int {
	occs := FindAll(text, pattern, opts)
	starts := make([]int, len(occs))
	for i, occ := range occs {
		starts[i] = occ.Start
	}
	return starts
}

// FindAllRanges returns the occurrences as plain [start, end) pairs.
func FindAllRanges(text, pattern string, opts CompareOptions) [][2]int {
	occs := FindAll(text, pattern, opts)
	ranges := make([][2]int, len(occs))
	for i, occ := range occs {
		ranges[i] = [2]int{occ.Start, occ.End}
	}
	return ranges
}

// matchAt reports how many bytes of s match pattern from its first byte,
// or -1 when s does not start with pattern.
func matchAt(s, pattern string, fold bool) int {
	if !fold {
		if strings.HasPrefix(s, pattern) {
			return len(pattern)
		}
		return -1
	}

	n := 0
	for _, pr := range pattern {
		if n >= len(s) {
			return -1
		}
		sr, size := utf8.DecodeRuneInString(s[n:])
		// an invalid byte decodes to RuneError but is not U+FFFD
		if sr == utf8.RuneError && size == 1 {
			return -1
		}
		if !equalFold(sr, pr) {
			return -1
		}
		n += size
	}
	return n
}

func equalFold(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}
