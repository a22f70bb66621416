// Package report renders a runner.Summary as a table, JSON, YAML or an HTML
// chart.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Sumatoshi-tech/advent/pkg/runner"
)

// ErrUnknownFormat is returned for a format name Render does not know.
var ErrUnknownFormat = errors.New("unknown report format")

// Format names an output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatPlot  Format = "plot"
)

// Formats lists every supported format.
var Formats = []Format{FormatTable, FormatJSON, FormatYAML, FormatPlot}

// ParseFormat accepts a format name in any case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Options controls rendering.
type Options struct {
	Format  Format
	NoColor bool
	// Verbose adds a character diff to wrong answers in the table.
	Verbose bool
}

// Render writes s to w in the requested format. An empty format means table.
func Render(w io.Writer, s runner.Summary, o Options) error {
	switch o.Format {
	case FormatTable, "":
		return renderTable(w, s, o)
	case FormatJSON:
		return renderJSON(w, s)
	case FormatYAML:
		return renderYAML(w, s)
	case FormatPlot:
		return renderPlot(w, s)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, o.Format)
	}
}
