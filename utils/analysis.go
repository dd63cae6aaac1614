package utils

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ExtractContent returns the text between the end of startMarker and the
// start of the first endMarker that follows it.
func ExtractContent(text, startMarker, endMarker string) (string, error) {
	begin, ok := FindFirstEnd(text, startMarker, Literal)
	if !ok {
		return "", fmt.Errorf("start marker %q: %w", startMarker, ErrMarkerNotFound)
	}
	end, ok := FindFirstStart(text[begin:], endMarker, Literal)
	if !ok {
		return "", fmt.Errorf("end marker %q: %w", endMarker, ErrMarkerNotFound)
	}
	return text[begin : begin+end], nil
}

// WordLookup is the answer for one queried word.
type WordLookup struct {
	Word  string
	Count int
	Found bool
}

// Lookup answers each query word in order. Words absent from the table come
// back with Found unset.
func Lookup(ft *FrequencyTable, words []string) []WordLookup {
	out := make([]WordLookup, len(words))
	for i, w := range words {
		c, ok := ft.Count(w)
		out[i] = WordLookup{Word: w, Count: c, Found: ok}
	}
	return out
}

type AnalyzeOptions struct {
	StartMarker string
	EndMarker   string
	Tokenize    TokenizeOptions
	// WordLists maps a list name such as "scary" to the words to look up.
	WordLists map[string][]string
	// FallbackToWholeText analyzes the full text when a marker is missing
	// instead of failing.
	FallbackToWholeText bool
	Workers             int
	Logger              *zap.Logger
}

type Analysis struct {
	Table *FrequencyTable
	// Reports holds one lookup result per configured word list.
	Reports    map[string][]WordLookup
	ContentLen int
	// WholeText is set when markers were skipped or missing.
	WholeText bool
}

// AnalyzeBook extracts the content between the markers, tokenizes it and
// builds the frequency table plus word-list reports. With no markers
// configured the whole text is analyzed.
func AnalyzeBook(ctx context.Context, text string, opts AnalyzeOptions) (*Analysis, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	a := &Analysis{Reports: make(map[string][]WordLookup, len(opts.WordLists))}

	content := text
	if opts.StartMarker == "" && opts.EndMarker == "" {
		a.WholeText = true
	} else {
		extracted, err := ExtractContent(text, opts.StartMarker, opts.EndMarker)
		switch {
		case err == nil:
			content = extracted
		case errors.Is(err, ErrMarkerNotFound) && opts.FallbackToWholeText:
			log.Warn("marker missing, analyzing whole text", zap.Error(err))
			a.WholeText = true
		default:
			return nil, err
		}
	}
	a.ContentLen = len(content)

	tokens := Analyze(content, opts.Tokenize)
	log.Debug("tokenized content",
		zap.Int("bytes", len(content)),
		zap.Int("tokens", len(tokens)),
	)

	if opts.Workers > 1 {
		ft, err := BuildParallel(ctx, tokens, opts.Workers)
		if err != nil {
			return nil, err
		}
		a.Table = ft
	} else {
		a.Table = Build(tokens)
	}

	for name, words := range opts.WordLists {
		a.Reports[name] = Lookup(a.Table, words)
	}
	return a, nil
}
