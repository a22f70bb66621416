// Package digitword finds the first and last digit of a line, where a digit is
// either an ASCII numeral or one of a configurable set of spelled-out words.
//
// Words are recognized by a finite automaton built from the word list, one for
// each scan direction. A failed partial match falls back to the longest suffix
// that is still a word prefix, so overlapping words such as "eightwo" yield
// 8 scanning forward and 2 scanning backward.
package digitword

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidWord is returned for empty words and words containing ASCII numerals.
var ErrInvalidWord = errors.New("invalid digit word")

// English maps the spelled-out digits one to nine.
var English = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9,
}

// None recognizes ASCII numerals only.
var None = map[string]int{}

const noOutput = -1

type automaton struct {
	next [][256]int32
	out  []int
}

// Scanner locates digits in text. It is safe for concurrent use.
type Scanner struct {
	forward  automaton
	backward automaton
}

// New builds a scanner recognizing the given words in addition to ASCII numerals.
func New(words map[string]int) (*Scanner, error) {
	keys := make([]string, 0, len(words))
	for w := range words {
		if w == "" {
			return nil, fmt.Errorf("%w: empty word", ErrInvalidWord)
		}

		for i := range len(w) {
			if isDigit(w[i]) {
				return nil, fmt.Errorf("%w: %q contains a numeral", ErrInvalidWord, w)
			}
		}

		keys = append(keys, w)
	}

	slices.Sort(keys)

	fwd := make([][]byte, len(keys))
	bwd := make([][]byte, len(keys))
	values := make([]int, len(keys))

	for i, w := range keys {
		fwd[i] = []byte(w)
		bwd[i] = reversed(w)
		values[i] = words[w]
	}

	return &Scanner{
		forward:  build(fwd, values),
		backward: build(bwd, values),
	}, nil
}

// MustNew is New for word lists known to be valid. It panics on error.
func MustNew(words map[string]int) *Scanner {
	s, err := New(words)
	if err != nil {
		panic(err)
	}

	return s
}

// First returns the first digit of line scanning left to right.
func (s *Scanner) First(line string) (int, bool) {
	state := int32(0)

	for i := range len(line) {
		c := line[i]
		if isDigit(c) {
			return int(c - '0'), true
		}

		state = s.forward.next[state][c]
		if v := s.forward.out[state]; v != noOutput {
			return v, true
		}
	}

	return 0, false
}

// Last returns the last digit of line scanning right to left.
func (s *Scanner) Last(line string) (int, bool) {
	state := int32(0)

	for i := len(line) - 1; i >= 0; i-- {
		c := line[i]
		if isDigit(c) {
			return int(c - '0'), true
		}

		state = s.backward.next[state][c]
		if v := s.backward.out[state]; v != noOutput {
			return v, true
		}
	}

	return 0, false
}

// Calibration returns first*10 + last. It reports false when the line holds no digit.
func (s *Scanner) Calibration(line string) (int, bool) {
	first, ok := s.First(line)
	if !ok {
		return 0, false
	}

	last, _ := s.Last(line)

	return first*10 + last, true
}

func build(words [][]byte, values []int) automaton {
	const unset = -1

	a := automaton{
		next: make([][256]int32, 1),
		out:  []int{noOutput},
	}

	for i := range a.next[0] {
		a.next[0][i] = unset
	}

	for wi, w := range words {
		state := int32(0)

		for _, c := range w {
			if a.next[state][c] == unset {
				var row [256]int32
				for i := range row {
					row[i] = unset
				}

				a.next = append(a.next, row)
				a.out = append(a.out, noOutput)
				a.next[state][c] = int32(len(a.next) - 1)
			}

			state = a.next[state][c]
		}

		a.out[state] = values[wi]
	}

	// Breadth-first over the trie, turning missing edges into fallback edges.
	fail := make([]int32, len(a.next))
	queue := make([]int32, 0, len(a.next))

	for c := range a.next[0] {
		child := a.next[0][c]
		if child == unset {
			a.next[0][c] = 0

			continue
		}

		fail[child] = 0
		queue = append(queue, child)
	}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		if a.out[u] == noOutput {
			a.out[u] = a.out[fail[u]]
		}

		for c := range a.next[u] {
			v := a.next[u][c]
			if v == unset {
				a.next[u][c] = a.next[fail[u]][c]

				continue
			}

			fail[v] = a.next[fail[u]][c]
			queue = append(queue, v)
		}
	}

	return a
}

func reversed(w string) []byte {
	b := []byte(w)
	slices.Reverse(b)

	return b
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
