package evictingqueue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleAdd(t *testing.T) {
	queue := New[string](3)

	assert.Equal(t, 0, queue.Len())

	for _, v := range []string{"One", "Two", "Three"} {
		_, evicted := queue.Add(v)
		assert.False(t, evicted)
	}

	assert.Equal(t, 3, queue.Len())
	assert.True(t, queue.Full())
	assert.Equal(t, []string{"One", "Two", "Three"}, queue.Slice())
}

func TestEvictingAdd(t *testing.T) {
	queue := New[string](3)

	queue.Add("One")
	queue.Add("Two")
	queue.Add("Three")

	evicted, ok := queue.Add("Four")
	require.True(t, ok)
	assert.Equal(t, "One", evicted)

	assert.Equal(t, 3, queue.Len())

	tests := []struct {
		index int
		value string
	}{
		{0, "Two"},
		{1, "Three"},
		{2, "Four"},
	}

	for _, tt := range tests {
		val, ok := queue.Get(tt.index)

		assert.True(t, ok, "index %d", tt.index)
		assert.Equal(t, tt.value, val, "index %d", tt.index)
	}

	newest, ok := queue.Newest()
	assert.True(t, ok)
	assert.Equal(t, "Four", newest)
}

func TestGetOutOfRange(t *testing.T) {
	queue := New[int](2)

	_, ok := queue.Get(0)
	assert.False(t, ok)

	_, ok = queue.Newest()
	assert.False(t, ok)

	queue.Add(7)

	for _, index := range []int{-1, 1, 2} {
		val, ok := queue.Get(index)

		assert.False(t, ok, "index %d", index)
		assert.Equal(t, 0, val, "index %d", index)
	}
}

func TestSliceIsACopy(t *testing.T) {
	queue := New[int](2)
	queue.Add(1)

	s := queue.Slice()
	s[0] = 99

	val, _ := queue.Get(0)
	assert.Equal(t, 1, val)
}

func TestMinimumSize(t *testing.T) {
	queue := New[int](0)

	queue.Add(1)
	queue.Add(2)

	assert.Equal(t, 1, queue.Cap())
	assert.Equal(t, []int{2}, queue.Slice())
}

func TestConcurrentAdd(t *testing.T) {
	queue := New[int](10)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()
			queue.Add(i)
		}(i)
	}

	wg.Wait()

	assert.Equal(t, 10, queue.Len())
}
