package evictingqueue

import "sync"

//
// EvictingQueue is a thread-safe queue that keeps at most a fixed number of elements by evicting
// its oldest element whenever a new one is added at capacity. It is modeled after the
// EvictingQueue class from the Google Guava library for Java.
//
type EvictingQueue[T any] struct {
	mu    *sync.Mutex
	size  int
	queue []T
}

//
// New instantiates a new evicting queue with the specified maximum size. A size below one is
// treated as one.
//
func New[T any](maxSize int) *EvictingQueue[T] {
	if maxSize < 1 {
		maxSize = 1
	}

	return &EvictingQueue[T]{
		mu:    &sync.Mutex{},
		size:  maxSize,
		queue: make([]T, 0, maxSize),
	}
}

//
// Add appends the provided element to the head of the queue and reports the element that was
// evicted from its tail to make room, if any.
//
func (o *EvictingQueue[T]) Add(e T) (T, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	var evicted T

	full := len(o.queue) == o.size
	if full {
		evicted = o.queue[0]

		copy(o.queue, o.queue[1:])
		o.queue = o.queue[:len(o.queue)-1]
	}

	o.queue = append(o.queue, e)

	return evicted, full
}

//
// Get returns the element at the specified index, oldest first, and a true sentinel, or the zero
// value and a false sentinel if the index is out of range.
//
func (o *EvictingQueue[T]) Get(index int) (T, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if index < 0 || index >= len(o.queue) {
		var zero T
		return zero, false
	}

	return o.queue[index], true
}

//
// Newest returns the most recently added element.
//
func (o *EvictingQueue[T]) Newest() (T, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if len(o.queue) == 0 {
		var zero T
		return zero, false
	}

	return o.queue[len(o.queue)-1], true
}

//
// Slice returns a copy of the queue's elements, oldest first.
//
func (o *EvictingQueue[T]) Slice() []T {
	o.mu.Lock()
	defer o.mu.Unlock()

	out := make([]T, len(o.queue))
	copy(out, o.queue)

	return out
}

func (o *EvictingQueue[T]) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()

	return len(o.queue)
}

func (o *EvictingQueue[T]) Cap() int {
	return o.size
}

func (o *EvictingQueue[T]) Full() bool {
	return o.Len() == o.size
}
