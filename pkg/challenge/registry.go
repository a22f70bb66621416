package challenge

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

var (
	// ErrDuplicate is returned when two challenges share a day and part.
	ErrDuplicate = errors.New("duplicate challenge")
	// ErrNoMatch is returned when a selection matches nothing.
	ErrNoMatch = errors.New("no challenge matches")
)

// Registry holds challenges keyed by day and part. It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	challenges map[Key]Challenge
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{challenges: make(map[Key]Challenge)}
}

// Register adds challenges. Nothing is added if any key is already taken.
func (r *Registry) Register(cs ...Challenge) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[Key]struct{}, len(cs))

	for _, c := range cs {
		k := KeyOf(c)

		_, taken := r.challenges[k]
		_, repeated := seen[k]

		if taken || repeated {
			return fmt.Errorf("%w: %s", ErrDuplicate, k)
		}

		seen[k] = struct{}{}
	}

	for _, c := range cs {
		r.challenges[KeyOf(c)] = c
	}

	return nil
}

// Len returns the number of registered challenges.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.challenges)
}

// Lookup returns the challenge registered under k.
func (r *Registry) Lookup(k Key) (Challenge, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.challenges[k]

	return c, ok
}

// All returns every challenge ordered by day, then part.
func (r *Registry) All() []Challenge {
	return r.filter(func(Key) bool { return true })
}

// Select returns challenges matching day and part, ordered. Zero matches any value.
func (r *Registry) Select(day, part int) ([]Challenge, error) {
	selected := r.filter(func(k Key) bool {
		return (day == 0 || k.Day == day) && (part == 0 || k.Part == part)
	})

	if len(selected) == 0 {
		return nil, fmt.Errorf("%w: day %d part %d", ErrNoMatch, day, part)
	}

	return selected, nil
}

func (r *Registry) filter(keep func(Key) bool) []Challenge {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Challenge, 0, len(r.challenges))

	for k, c := range r.challenges {
		if keep(k) {
			out = append(out, c)
		}
	}

	slices.SortFunc(out, func(a, b Challenge) int {
		ka, kb := KeyOf(a), KeyOf(b)

		switch {
		case ka.Less(kb):
			return -1
		case kb.Less(ka):
			return 1
		default:
			return 0
		}
	})

	return out
}
