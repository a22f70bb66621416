package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/advent/pkg/runner"
)

type resultDoc struct {
	Day       int    `json:"day"                 yaml:"day"`
	Part      int    `json:"part"                yaml:"part"`
	Title     string `json:"title"               yaml:"title"`
	Answer    string `json:"answer"              yaml:"answer"`
	Want      string `json:"want,omitempty"      yaml:"want,omitempty"`
	Status    string `json:"status"              yaml:"status"`
	Sample    bool   `json:"sample"              yaml:"sample"`
	ElapsedNS int64  `json:"elapsed_ns"          yaml:"elapsed_ns"`
	MeanNS    int64  `json:"mean_ns"             yaml:"mean_ns"`
	StdDevNS  int64  `json:"stddev_ns"           yaml:"stddev_ns"`
	Runs      int    `json:"runs"                yaml:"runs"`
	Error     string `json:"error,omitempty"     yaml:"error,omitempty"`
}

type summaryDoc struct {
	Results []resultDoc `json:"results"  yaml:"results"`
	TotalNS int64       `json:"total_ns" yaml:"total_ns"`
	Passed  int         `json:"passed"   yaml:"passed"`
	Failed  int         `json:"failed"   yaml:"failed"`
}

func toDoc(s runner.Summary) summaryDoc {
	doc := summaryDoc{
		Results: make([]resultDoc, 0, len(s.Results)),
		TotalNS: s.Total.Nanoseconds(),
		Passed:  s.Passed(),
		Failed:  s.Failed(),
	}

	for _, r := range s.Results {
		rd := resultDoc{
			Day:       r.Key.Day,
			Part:      r.Key.Part,
			Title:     r.Title,
			Answer:    r.Answer,
			Want:      r.Want,
			Status:    string(r.Status),
			Sample:    r.Sample,
			ElapsedNS: r.Elapsed.Nanoseconds(),
			MeanNS:    r.Mean.Nanoseconds(),
			StdDevNS:  r.StdDev.Nanoseconds(),
			Runs:      r.Runs,
		}

		if r.Err != nil {
			rd.Error = r.Err.Error()
		}

		doc.Results = append(doc.Results, rd)
	}

	return doc
}

func renderJSON(w io.Writer, s runner.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(toDoc(s)); err != nil {
		return fmt.Errorf("encode json report: %w", err)
	}

	return nil
}

func renderYAML(w io.Writer, s runner.Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(toDoc(s)); err != nil {
		return fmt.Errorf("encode yaml report: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode yaml report: %w", err)
	}

	return nil
}
