// Package window yields each element of a slice together with its neighbors.
package window

import "iter"

// Window is one element and its immediate neighbors.
type Window[T any] struct {
	Prev    T
	Cur     T
	Next    T
	HasPrev bool
	HasNext bool
}

// Centered yields a Window for every element of items, in order, with its index.
// The first window has no Prev and the last has no Next.
func Centered[T any](items []T) iter.Seq2[int, Window[T]] {
	return func(yield func(int, Window[T]) bool) {
		for i, cur := range items {
			w := Window[T]{Cur: cur}

			if i > 0 {
				w.Prev = items[i-1]
				w.HasPrev = true
			}

			if i+1 < len(items) {
				w.Next = items[i+1]
				w.HasNext = true
			}

			if !yield(i, w) {
				return
			}
		}
	}
}
