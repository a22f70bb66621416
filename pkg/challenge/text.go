package challenge

import (
	"strconv"
	"strings"
)

// Lines splits text into lines, dropping a trailing newline and any carriage returns.
func Lines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimRight(text, "\n")

	if text == "" {
		return nil
	}

	return strings.Split(text, "\n")
}

// Blocks splits text into paragraphs separated by one or more blank lines.
func Blocks(text string) [][]string {
	var (
		blocks  [][]string
		current []string
	)

	for _, line := range Lines(text) {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}

			continue
		}

		current = append(current, line)
	}

	if len(current) > 0 {
		blocks = append(blocks, current)
	}

	return blocks
}

// Ints parses whitespace-separated signed integers.
func Ints(s string) ([]int64, error) {
	fields := strings.Fields(s)
	out := make([]int64, 0, len(fields))

	for _, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, Malformed("number %q", f)
		}

		out = append(out, n)
	}

	return out, nil
}

// Uints parses whitespace-separated unsigned integers.
func Uints(s string) ([]uint64, error) {
	fields := strings.Fields(s)
	out := make([]uint64, 0, len(fields))

	for _, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, Malformed("number %q", f)
		}

		out = append(out, n)
	}

	return out, nil
}
