package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/Sumatoshi-tech/advent/pkg/runner"
)

const (
	markPass      = "✅"
	markFail      = "❌"
	markUnchecked = "❔"
)

// Mark returns the verdict symbol for st.
func Mark(st runner.Status) string {
	switch st {
	case runner.Pass:
		return markPass
	case runner.Fail, runner.Error:
		return markFail
	default:
		return markUnchecked
	}
}

type painter struct {
	noColor bool
}

func (p painter) paint(s string, attrs ...color.Attribute) string {
	c := color.New(attrs...)
	if p.noColor {
		c.DisableColor()
	} else {
		c.EnableColor()
	}

	return c.Sprint(s)
}

func renderTable(w io.Writer, s runner.Summary, o Options) error {
	p := painter{noColor: o.NoColor}

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Format.Footer = text.FormatDefault
	tbl.AppendHeader(table.Row{"", "Challenge", "Answer", "Hint", "Time"})

	for _, r := range s.Results {
		tbl.AppendRow(table.Row{Mark(r.Status), title(r), p.answer(r), p.hint(r, o.Verbose), timing(r)})
	}

	tbl.AppendFooter(table.Row{
		"", "Total",
		fmt.Sprintf("%s passed, %s failed", humanize.Comma(int64(s.Passed())), humanize.Comma(int64(s.Failed()))),
		"", s.Total.Round(time.Microsecond).String(),
	})

	if _, err := fmt.Fprintln(w, tbl.Render()); err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	return nil
}

func title(r runner.Result) string {
	if r.Sample {
		return r.Title + " (sample)"
	}

	return r.Title
}

func (p painter) answer(r runner.Result) string {
	switch r.Status {
	case runner.Pass:
		return p.paint(r.Answer, color.FgGreen)
	case runner.Fail:
		return p.paint(r.Answer, color.FgRed)
	case runner.Error:
		return p.paint("error", color.FgRed, color.Bold)
	default:
		return r.Answer
	}
}

func (p painter) hint(r runner.Result, verbose bool) string {
	switch r.Status {
	case runner.Fail:
		h := "should be " + r.Want
		if verbose {
			h += " " + p.diff(r.Want, r.Answer)
		}

		return h
	case runner.Error:
		if r.Err != nil {
			return r.Err.Error()
		}
	case runner.Unchecked:
		return p.paint("no expected answer", color.Faint)
	}

	return ""
}

// diff marks what the answer deletes from (-) and inserts into (+) the
// expected value.
func (p painter) diff(want, got string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(want, got, false))

	var b strings.Builder

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			b.WriteString(d.Text)
		case diffmatchpatch.DiffDelete:
			b.WriteString(p.paint("[-"+d.Text+"]", color.FgRed))
		case diffmatchpatch.DiffInsert:
			b.WriteString(p.paint("[+"+d.Text+"]", color.FgGreen))
		}
	}

	return "(" + b.String() + ")"
}

func timing(r runner.Result) string {
	if r.Runs > 1 {
		return fmt.Sprintf("%s ± %s (×%d)", r.Mean.Round(time.Microsecond), r.StdDev.Round(time.Microsecond), r.Runs)
	}

	return r.Elapsed.Round(time.Microsecond).String()
}
