// Package challenge defines the contract every puzzle solver implements and a
// registry to look solvers up by day and part.
package challenge

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedInput is wrapped by solvers when puzzle text cannot be parsed.
var ErrMalformedInput = errors.New("malformed input")

// ErrInvalidKey is returned by ParseKey.
var ErrInvalidKey = errors.New("invalid challenge key")

// Input is the puzzle text handed to a solver.
type Input struct {
	Text string
	// Sample is true for the embedded worked example. Some puzzles use a
	// different constant for the example than for the real input.
	Sample bool
}

// Sample is the worked example shipped with a solver.
type Sample struct {
	Input string
	Want  string
}

// Challenge is one part of one day's puzzle.
type Challenge interface {
	Day() int
	Part() int
	Sample() Sample
	Solve(ctx context.Context, in Input) (string, error)
}

// Title returns the display name, e.g. "Day 5 / Part 2".
func Title(c Challenge) string {
	return fmt.Sprintf("Day %d / Part %d", c.Day(), c.Part())
}

// Key identifies a challenge.
type Key struct {
	Day  int
	Part int
}

// KeyOf returns the key of c.
func KeyOf(c Challenge) Key {
	return Key{Day: c.Day(), Part: c.Part()}
}

func (k Key) String() string {
	return fmt.Sprintf("%02d/%d", k.Day, k.Part)
}

// Less orders keys by day, then part.
func (k Key) Less(other Key) bool {
	if k.Day != other.Day {
		return k.Day < other.Day
	}

	return k.Part < other.Part
}

// ParseKey parses "DD/P" or "D/P".
func ParseKey(s string) (Key, error) {
	dayStr, partStr, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return Key{}, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}

	day, err := strconv.Atoi(dayStr)
	if err != nil || day <= 0 {
		return Key{}, fmt.Errorf("%w: day in %q", ErrInvalidKey, s)
	}

	part, err := strconv.Atoi(partStr)
	if err != nil || part <= 0 {
		return Key{}, fmt.Errorf("%w: part in %q", ErrInvalidKey, s)
	}

	return Key{Day: day, Part: part}, nil
}

// Malformed wraps ErrMalformedInput with a formatted detail message.
func Malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedInput, fmt.Sprintf(format, args...))
}
