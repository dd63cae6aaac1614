package utils

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
)

// WordCount pairs a word with the number of times it was seen.
type WordCount struct {
	Word  string
	Count int
}

// FrequencyTable maps each observed word to its occurrence count. Only
// observed words are keys, so every stored count is at least 1. The zero
// value is an empty table, and a nil *FrequencyTable reads as empty.
type FrequencyTable struct {
	counts map[string]int
	total  int
}

func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[string]int)}
}

// Build counts every token. The result depends only on the multiset of
// tokens, not on their order.
func Build(tokens []string) *FrequencyTable {
	ft := &FrequencyTable{counts: make(map[string]int, len(tokens)/4)}
	for _, t := range tokens {
		ft.counts[t]++
	}
	ft.total = len(tokens)
	return ft
}

// BuildParallel splits tokens into contiguous partitions, counts each one in
// its own goroutine and merges the partial tables. The result equals
// Build(tokens).
func BuildParallel(ctx context.Context, tokens []string, workers int) (*FrequencyTable, error) {
	if workers < 1 {
		return nil, fmt.Errorf("workers must be positive, got %d", workers)
	}
	if len(tokens) == 0 {
		return NewFrequencyTable(), nil
	}

	chunk := (len(tokens) + workers - 1) / workers
	parts := make([]*FrequencyTable, (len(tokens)+chunk-1)/chunk)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range parts {
		i := i
		lo := i * chunk
		hi := min(lo+chunk, len(tokens))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			parts[i] = Build(tokens[lo:hi])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ft := NewFrequencyTable()
	for _, p := range parts {
		ft.Merge(p)
	}
	return ft, nil
}

// Merge adds the counts of other into ft.
func (ft *FrequencyTable) Merge(other *FrequencyTable) {
	if other == nil {
		return
	}
	if ft.counts == nil {
		ft.counts = make(map[string]int, len(other.counts))
	}
	for w, c := range other.counts {
		ft.counts[w] += c
	}
	ft.total += other.total
}

// Count returns the stored count for word. Words that never appeared report
// false rather than a zero count.
func (ft *FrequencyTable) Count(word string) (int, bool) {
	if ft == nil {
		return 0, false
	}
	c, ok := ft.counts[word]
	return c, ok
}

// Relative returns the word's share of all counted tokens.
func (ft *FrequencyTable) Relative(word string) (float64, bool) {
	if ft == nil {
		return 0, false
	}
	c, ok := ft.counts[word]
	if !ok || ft.total == 0 {
		return 0, false
	}
	return float64(c) / float64(ft.total), true
}

// MostFrequent returns the word with the highest count. Ties go to the
// lexicographically smallest word.
func (ft *FrequencyTable) MostFrequent() (WordCount, bool) {
	var best WordCount
	found := false
	if ft == nil {
		return best, found
	}
	for w, c := range ft.counts {
		if !found || c > best.Count || (c == best.Count && w < best.Word) {
			best = WordCount{Word: w, Count: c}
			found = true
		}
	}
	return best, found
}

// Top returns up to n entries ordered by count descending, then word.
func (ft *FrequencyTable) Top(n int) []WordCount {
	if n <= 0 || ft == nil {
		return nil
	}
	ranked := make([]WordCount, 0, len(ft.counts))
	for w, c := range ft.counts {
		ranked = append(ranked, WordCount{Word: w, Count: c})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})

	if len(ranked) > n {
		return ranked[:n]
	}
	return ranked
}

// Size is the number of distinct words.
func (ft *FrequencyTable) Size() int {
	if ft == nil {
		return 0
	}
	return len(ft.counts)
}

// Total is the number of tokens counted.
func (ft *FrequencyTable) Total() int {
	if ft == nil {
		return 0
	}
	return ft.total
}

// Counts returns a copy of the word to count mapping.
func (ft *FrequencyTable) Counts() map[string]int {
	if ft == nil {
		return map[string]int{}
	}
	out := make(map[string]int, len(ft.counts))
	for w, c := range ft.counts {
		out[w] = c
	}
	return out
}
