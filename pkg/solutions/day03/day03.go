// Package day03 solves "Gear Ratios": numbers in an engine schematic touching symbols.
package day03

import (
	"context"
	_ "embed"
	"strconv"

	"github.com/Sumatoshi-tech/advent/pkg/challenge"
	"github.com/Sumatoshi-tech/advent/pkg/window"
)

const day = 3

//go:embed input/sample.txt
var sample string

// Number is a run of digits on one row, spanning columns [Start, End).
type Number struct {
	Start int
	End   int
	Value int
}

// Touches reports whether column col is on or diagonally next to the number.
func (n Number) Touches(col int) bool {
	return col >= n.Start-1 && col <= n.End
}

// Symbol is any character that is neither a digit nor '.'.
type Symbol struct {
	Col  int
	Char byte
}

// Row is the parsed content of one schematic line.
type Row struct {
	Numbers []Number
	Symbols []Symbol
}

// Part1 sums the part numbers: those adjacent to any symbol.
type Part1 struct{}

func (Part1) Day() int  { return day }
func (Part1) Part() int { return 1 }

func (Part1) Sample() challenge.Sample {
	return challenge.Sample{Input: sample, Want: "4361"}
}

func (Part1) Solve(_ context.Context, in challenge.Input) (string, error) {
	rows := ParseSchematic(in.Text)
	sum := 0

	for _, w := range window.Centered(rows) {
		near := neighbors(w)

		for _, n := range w.Cur.Numbers {
			if touchesAny(n, near) {
				sum += n.Value
			}
		}
	}

	return strconv.Itoa(sum), nil
}

// Part2 sums the gear ratios: '*' symbols adjacent to exactly two numbers.
type Part2 struct{}

func (Part2) Day() int  { return day }
func (Part2) Part() int { return 2 }

func (Part2) Sample() challenge.Sample {
	return challenge.Sample{Input: sample, Want: "467835"}
}

func (Part2) Solve(_ context.Context, in challenge.Input) (string, error) {
	rows := ParseSchematic(in.Text)
	sum := 0

	for _, w := range window.Centered(rows) {
		for _, s := range w.Cur.Symbols {
			if s.Char != '*' {
				continue
			}

			var adjacent []int

			for _, r := range rowsOf(w) {
				for _, n := range r.Numbers {
					if n.Touches(s.Col) {
						adjacent = append(adjacent, n.Value)
					}
				}
			}

			if len(adjacent) == 2 {
				sum += adjacent[0] * adjacent[1]
			}
		}
	}

	return strconv.Itoa(sum), nil
}

// ParseSchematic scans every line for digit runs and symbols.
func ParseSchematic(text string) []Row {
	lines := challenge.Lines(text)
	rows := make([]Row, len(lines))

	for i, line := range lines {
		var row Row

		for col := 0; col < len(line); col++ {
			c := line[col]

			switch {
			case c >= '0' && c <= '9':
				start, value := col, 0
				for col < len(line) && line[col] >= '0' && line[col] <= '9' {
					value = value*10 + int(line[col]-'0')
					col++
				}

				row.Numbers = append(row.Numbers, Number{Start: start, End: col, Value: value})
				col--
			case c != '.':
				row.Symbols = append(row.Symbols, Symbol{Col: col, Char: c})
			}
		}

		rows[i] = row
	}

	return rows
}

func rowsOf(w window.Window[Row]) []Row {
	rows := []Row{w.Cur}
	if w.HasPrev {
		rows = append(rows, w.Prev)
	}

	if w.HasNext {
		rows = append(rows, w.Next)
	}

	return rows
}

func neighbors(w window.Window[Row]) []Symbol {
	var out []Symbol
	for _, r := range rowsOf(w) {
		out = append(out, r.Symbols...)
	}

	return out
}

func touchesAny(n Number, symbols []Symbol) bool {
	for _, s := range symbols {
		if n.Touches(s.Col) {
			return true
		}
	}

	return false
}
