package ringlog

import (
	"encoding/json"
	"fmt"
	"iter"
	"math"
)

// MaxDecodedCapacity bounds the capacity UnmarshalJSON accepts. It matches
// the largest console size the settings can express.
const MaxDecodedCapacity = math.MaxUint16

// Ring is a fixed-capacity buffer that keeps the most recent values.
// Once full, every Push overwrites the oldest value.
//
// Ring is not safe for concurrent use; it has a single owner.
type Ring[T any] struct {
	buf   []T
	head  int // index of the oldest value
	tail  int // index of the next write
	count int
}

// New creates a ring with room for exactly capacity values.
// It panics if capacity is not positive.
func New[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		panic(fmt.Sprintf("ringlog: capacity must be positive, got %d", capacity))
	}
	return &Ring[T]{buf: make([]T, capacity)}
}

// Push appends v, evicting the oldest value when the ring is full.
func (r *Ring[T]) Push(v T) {
	r.buf[r.tail] = v
	r.tail = (r.tail + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
		return
	}
	r.head = (r.head + 1) % len(r.buf)
}

// All yields the stored values from oldest to newest.
func (r *Ring[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < r.count; i++ {
			if !yield(r.buf[(r.head+i)%len(r.buf)]) {
				return
			}
		}
	}
}

// Items returns a copy of the stored values, oldest first.
func (r *Ring[T]) Items() []T {
	return r.GetLastN(r.count)
}

// GetLastN returns at most n values taken from the front of the traversal,
// so the oldest n values when the ring holds more than n.
func (r *Ring[T]) GetLastN(n int) []T {
	if r.count == 0 || n <= 0 {
		return []T{}
	}
	if n > r.count {
		n = r.count
	}
	out := make([]T, 0, n)
	for v := range r.All() {
		if len(out) == n {
			break
		}
		out = append(out, v)
	}
	return out
}

// Clear drops every stored value.
func (r *Ring[T]) Clear() {
	clear(r.buf)
	r.head, r.tail, r.count = 0, 0, 0
}

// IsEmpty reports whether the ring holds no values.
func (r *Ring[T]) IsEmpty() bool { return r.count == 0 }

// Len returns the number of stored values.
func (r *Ring[T]) Len() int { return r.count }

// Cap returns the fixed capacity.
func (r *Ring[T]) Cap() int { return len(r.buf) }

// MarshalJSON encodes the ring as the pair [capacity, [values...]].
func (r *Ring[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{len(r.buf), r.Items()})
}

// UnmarshalJSON rebuilds the ring from [capacity, [values...]] by pushing
// every value, in order, into a fresh ring of that capacity.
func (r *Ring[T]) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("ringlog: decode pair: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("ringlog: expected [capacity, values], got %d elements", len(pair))
	}

	var capacity int
	if err := json.Unmarshal(pair[0], &capacity); err != nil {
		return fmt.Errorf("ringlog: decode capacity: %w", err)
	}
	if capacity <= 0 || capacity > MaxDecodedCapacity {
		return fmt.Errorf("ringlog: capacity must be in [1, %d], got %d", MaxDecodedCapacity, capacity)
	}

	var values []T
	if err := json.Unmarshal(pair[1], &values); err != nil {
		return fmt.Errorf("ringlog: decode values: %w", err)
	}

	fresh := New[T](capacity)
	for _, v := range values {
		fresh.Push(v)
	}
	*r = *fresh
	return nil
}
