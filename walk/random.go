package walk

import "math/rand"

// defaultRandomSeed is used when NewRandom is given no source.
const defaultRandomSeed int64 = 1

// Rand is the uniform random source a Random queue draws from.
// *rand.Rand satisfies it. Intn must return a value in [0, n).
type Rand interface {
	Intn(n int) int
}

// Random pops a uniformly chosen live item.
// Removal swaps the chosen slot with the last one and truncates, O(1).
type Random[T Number] struct {
	src   Rand
	items []Item[T]
}

// NewRandom returns an empty random-order queue drawing from src.
// A nil src uses a deterministic stream seeded with defaultRandomSeed.
func NewRandom[T Number](src Rand) *Random[T] {
	if src == nil {
		src = rand.New(rand.NewSource(defaultRandomSeed))
	}
	return &Random[T]{src: src}
}

// Push appends item.
func (q *Random[T]) Push(item Item[T]) {
	q.items = append(q.items, item)
}

// Pop removes and returns a random item.
func (q *Random[T]) Pop() (Item[T], bool) {
	n := len(q.items)
	if n == 0 {
		return Item[T]{}, false
	}
	i := q.src.Intn(n)
	item := q.items[i]
	q.items[i] = q.items[n-1]
	q.items = q.items[:n-1]
	return item, true
}

// Empty reports whether no items are queued.
func (q *Random[T]) Empty() bool { return len(q.items) == 0 }

// Len returns the number of queued items.
func (q *Random[T]) Len() int { return len(q.items) }

// Clear drops every queued item, keeping capacity.
func (q *Random[T]) Clear() { q.items = q.items[:0] }
