package day10

import (
	"github.com/Sumatoshi-tech/advent/pkg/challenge"
	"github.com/Sumatoshi-tech/advent/pkg/mathutil"
)

// Point is a (row, column) grid position.
type Point struct {
	Row int
	Col int
}

func (p Point) add(d Point) Point {
	return Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

var (
	north = Point{Row: -1}
	south = Point{Row: 1}
	east  = Point{Col: 1}
	west  = Point{Col: -1}
)

// pipes maps each pipe tile to the two directions it connects.
var pipes = map[byte][2]Point{
	'|': {north, south},
	'-': {east, west},
	'L': {north, east},
	'J': {north, west},
	'7': {south, west},
	'F': {south, east},
}

// shapes is the order start tile candidates are tried in.
const shapes = "|-LJ7F"

// Maze is a rectangular grid of tiles with exactly one 'S'.
type Maze struct {
	rows  []string
	Start Point
}

// ParseMaze reads the grid and locates the start tile.
func ParseMaze(text string) (Maze, error) {
	rows := challenge.Lines(text)
	if len(rows) == 0 {
		return Maze{}, challenge.Malformed("empty maze")
	}

	m := Maze{rows: rows, Start: Point{Row: -1}}

	for r, row := range rows {
		if len(row) != len(rows[0]) {
			return Maze{}, challenge.Malformed("row %d has width %d, want %d", r+1, len(row), len(rows[0]))
		}

		for c := range len(row) {
			if row[c] != 'S' {
				continue
			}

			if m.Start.Row >= 0 {
				return Maze{}, challenge.Malformed("more than one start tile")
			}

			m.Start = Point{Row: r, Col: c}
		}
	}

	if m.Start.Row < 0 {
		return Maze{}, challenge.Malformed("no start tile")
	}

	return m, nil
}

func (m Maze) tile(p Point) byte {
	if p.Row < 0 || p.Row >= len(m.rows) || p.Col < 0 || p.Col >= len(m.rows[p.Row]) {
		return '.'
	}

	return m.rows[p.Row][p.Col]
}

// Loop returns the tiles of the closed loop through the start, in walk order
// beginning at the start. Each pipe shape is tried for the start tile until
// one yields a loop whose neighbors connect back to it.
func (m Maze) Loop() ([]Point, error) {
	for i := range len(shapes) {
		if loop, ok := m.walk(shapes[i]); ok {
			return loop, nil
		}
	}

	return nil, challenge.Malformed("no loop through start at %v", m.Start)
}

func (m Maze) walk(shape byte) ([]Point, bool) {
	ends := pipes[shape]
	for _, d := range ends {
		if !connects(m.tile(m.Start.add(d)), d) {
			return nil, false
		}
	}

	loop := []Point{m.Start}
	prev, at := m.Start, m.Start.add(ends[0])

	for at != m.Start {
		dirs, ok := pipes[m.tile(at)]
		if !ok {
			return nil, false
		}

		next := at.add(dirs[0])
		if next == prev {
			next = at.add(dirs[1])
		} else if at.add(dirs[1]) != prev {
			return nil, false
		}

		loop = append(loop, at)
		prev, at = at, next

		if len(loop) > len(m.rows)*len(m.rows[0]) {
			return nil, false
		}
	}

	// The walk must come back through the start's other end.
	if prev != m.Start.add(ends[1]) {
		return nil, false
	}

	return loop, true
}

// connects reports whether tile, entered by moving in direction d, has an
// opening facing back the way it was entered.
func connects(tile byte, d Point) bool {
	back := Point{Row: -d.Row, Col: -d.Col}
	for _, e := range pipes[tile] {
		if e == back {
			return true
		}
	}

	return false
}

// Enclosed counts the tiles strictly inside the loop by the shoelace
// formula for its area and Pick's theorem.
func Enclosed(loop []Point) int {
	twiceArea := 0

	for i, p := range loop {
		q := loop[(i+1)%len(loop)]
		twiceArea += p.Col*q.Row - q.Col*p.Row
	}

	return (mathutil.Abs(twiceArea)-len(loop))/2 + 1
}
