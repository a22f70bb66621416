package day08

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Sumatoshi-tech/advent/pkg/challenge"
)

// ErrNoExit is returned when a walk cannot reach a goal node.
var ErrNoExit = errors.New("no path to exit")

// Node is one "AAA = (BBB, CCC)" entry.
type Node struct {
	Left  string
	Right string
}

// Network is the parsed puzzle input. It is read-only after parsing.
type Network struct {
	Directions string
	Nodes      map[string]Node
	// Order lists node names as they appear in the input.
	Order []string
}

func (n Network) step(at string, dir byte) (string, error) {
	node, ok := n.Nodes[at]
	if !ok {
		return "", challenge.Malformed("unknown node %q", at)
	}

	if dir == 'L' {
		return node.Left, nil
	}

	return node.Right, nil
}

// Walk follows the directions from start until done reports true and returns
// the number of steps taken. A walk longer than nodes times directions has
// entered a cycle without a goal and fails with ErrNoExit. Walk stops early
// when ctx is cancelled.
func (n Network) Walk(ctx context.Context, start string, done func(string) bool) (int, error) {
	limit := len(n.Nodes) * len(n.Directions)
	at := start

	for steps := 0; ; steps++ {
		if steps > 0 && done(at) {
			return steps, nil
		}

		if steps > limit {
			return 0, fmt.Errorf("%w: from %s after %d steps", ErrNoExit, start, steps)
		}

		if steps%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}

		next, err := n.step(at, n.Directions[steps%len(n.Directions)])
		if err != nil {
			return 0, err
		}

		at = next
	}
}

// ParseNetwork reads the direction line followed by the node list.
func ParseNetwork(text string) (Network, error) {
	blocks := challenge.Blocks(text)
	if len(blocks) != 2 || len(blocks[0]) != 1 {
		return Network{}, challenge.Malformed("expected directions and a node list")
	}

	dirs := strings.TrimSpace(blocks[0][0])
	if dirs == "" || strings.Trim(dirs, "LR") != "" {
		return Network{}, challenge.Malformed("directions %q", dirs)
	}

	net := Network{Directions: dirs, Nodes: make(map[string]Node, len(blocks[1]))}

	for _, line := range blocks[1] {
		name, targets, ok := strings.Cut(line, " = ")
		if !ok {
			return Network{}, challenge.Malformed("node %q", line)
		}

		targets, ok = strings.CutPrefix(targets, "(")
		if ok {
			targets, ok = strings.CutSuffix(targets, ")")
		}

		if !ok {
			return Network{}, challenge.Malformed("node %q", line)
		}

		left, right, ok := strings.Cut(targets, ", ")
		if !ok {
			return Network{}, challenge.Malformed("node %q", line)
		}

		if _, dup := net.Nodes[name]; dup {
			return Network{}, challenge.Malformed("duplicate node %q", name)
		}

		net.Nodes[name] = Node{Left: left, Right: right}
		net.Order = append(net.Order, name)
	}

	return net, nil
}
