package report

import (
	"fmt"
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Sumatoshi-tech/advent/pkg/runner"
)

const (
	plotPageTitle = "advent timings"
	plotHeight    = "500px"
	colorFirst    = "#5470c6"
	colorMean     = "#91cc75"
)

// TimingChart builds a bar chart of first-run and mean solve time per challenge.
func TimingChart(s runner.Summary) *charts.Bar {
	labels := make([]string, len(s.Results))
	first := make([]opts.BarData, len(s.Results))
	mean := make([]opts.BarData, len(s.Results))

	for i, r := range s.Results {
		labels[i] = r.Key.String()
		first[i] = opts.BarData{Value: millis(r.Elapsed), Name: r.Title}
		mean[i] = opts.BarData{Value: millis(r.Mean), Name: r.Title}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: plotPageTitle, Width: "100%", Height: plotHeight}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Solve time per challenge",
			Subtitle: fmt.Sprintf("%d challenges, total %s", len(s.Results), s.Total.Round(time.Microsecond)),
			Left:     "center",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "10%", Left: "center"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Challenge"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "ms"}),
	)
	bar.SetXAxis(labels).
		AddSeries("first run", first, charts.WithItemStyleOpts(opts.ItemStyle{Color: colorFirst})).
		AddSeries("mean", mean, charts.WithItemStyleOpts(opts.ItemStyle{Color: colorMean}))

	return bar
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func renderPlot(w io.Writer, s runner.Summary) error {
	if err := TimingChart(s).Render(w); err != nil {
		return fmt.Errorf("render plot: %w", err)
	}

	return nil
}
