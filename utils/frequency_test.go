package utils

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAndCount(t *testing.T) {
	ft := Build([]string{"a", "b", "a", "c", "a"})

	c, ok := ft.Count("a")
	assert.True(t, ok)
	assert.Equal(t, 3, c)

	c, ok = ft.Count("b")
	assert.True(t, ok)
	assert.Equal(t, 1, c)

	c, ok = ft.Count("d")
	assert.False(t, ok)
	assert.Zero(t, c)

	assert.Equal(t, 3, ft.Size())
	assert.Equal(t, 5, ft.Total())
}

func TestBuildOrderIndependent(t *testing.T) {
	tokens := []string{"the", "cat", "sat", "on", "the", "mat", "the", "cat"}
	want := Build(tokens).Counts()

	r := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := append([]string(nil), tokens...)
		r.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, Build(shuffled).Counts())
	}
}

func TestBuildParallelMatchesBuild(t *testing.T) {
	tokens := Tokenize("it was the best of times it was the worst of times it was the age of wisdom", " ")
	want := Build(tokens)

	for _, workers := range []int{1, 2, 3, 4, 7, 100} {
		got, err := BuildParallel(context.Background(), tokens, workers)
		require.NoError(t, err)
		assert.Equal(t, want.Counts(), got.Counts(), "workers=%d", workers)
		assert.Equal(t, want.Total(), got.Total(), "workers=%d", workers)
	}
}

func TestBuildParallelEdgeCases(t *testing.T) {
	_, err := BuildParallel(context.Background(), []string{"a"}, 0)
	assert.Error(t, err)

	ft, err := BuildParallel(context.Background(), nil, 4)
	require.NoError(t, err)
	assert.Zero(t, ft.Size())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = BuildParallel(ctx, []string{"a", "b", "c"}, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMerge(t *testing.T) {
	ft := Build([]string{"a", "b"})
	ft.Merge(Build([]string{"b", "c", "c"}))
	ft.Merge(nil)

	assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 2}, ft.Counts())
	assert.Equal(t, 5, ft.Total())
}

func TestMostFrequent(t *testing.T) {
	mf, ok := Build([]string{"x", "x", "y"}).MostFrequent()
	require.True(t, ok)
	assert.Equal(t, WordCount{Word: "x", Count: 2}, mf)

	_, ok = Build(nil).MostFrequent()
	assert.False(t, ok)

	// ties resolve to the smallest word
	for i := 0; i < 10; i++ {
		mf, ok = Build([]string{"pear", "apple", "fig", "pear", "apple", "fig"}).MostFrequent()
		require.True(t, ok)
		assert.Equal(t, WordCount{Word: "apple", Count: 2}, mf)
	}
}

func TestTop(t *testing.T) {
	ft := Build([]string{"b", "a", "a", "b", "c"})

	assert.Equal(t, []WordCount{{"a", 2}, {"b", 2}}, ft.Top(2))
	assert.Equal(t, []WordCount{{"a", 2}, {"b", 2}, {"c", 1}}, ft.Top(10))
	assert.Nil(t, ft.Top(0))
}

func TestRelative(t *testing.T) {
	ft := Build([]string{"a", "a", "b", "c"})

	rel, ok := ft.Relative("a")
	require.True(t, ok)
	assert.InDelta(t, 0.5, rel, 1e-9)

	_, ok = ft.Relative("z")
	assert.False(t, ok)
}

func TestCountsIsACopy(t *testing.T) {
	ft := Build([]string{"a"})
	m := ft.Counts()
	m["a"] = 100
	m["b"] = 1

	c, _ := ft.Count("a")
	assert.Equal(t, 1, c)
	_, ok := ft.Count("b")
	assert.False(t, ok)
}

func TestZeroValueTable(t *testing.T) {
	var ft FrequencyTable
	_, ok := ft.Count("a")
	assert.False(t, ok)
	assert.Zero(t, ft.Size())

	ft.Merge(Build([]string{"a", "b", "a"}))
	c, ok := ft.Count("a")
	require.True(t, ok)
	assert.Equal(t, 2, c)
	assert.Equal(t, 3, ft.Total())
}

func TestNilTableReadsEmpty(t *testing.T) {
	var ft *FrequencyTable

	_, ok := ft.Count("a")
	assert.False(t, ok)
	_, ok = ft.Relative("a")
	assert.False(t, ok)
	_, ok = ft.MostFrequent()
	assert.False(t, ok)
	assert.Nil(t, ft.Top(3))
	assert.Zero(t, ft.Size())
	assert.Zero(t, ft.Total())
	assert.Empty(t, ft.Counts())
}
