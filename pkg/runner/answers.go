package runner

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/advent/pkg/challenge"
)

// Answers file errors.
var (
	ErrInvalidAnswers       = errors.New("invalid answers file")
	ErrDuplicateAnswer      = errors.New("duplicate answer")
	ErrUnsupportedExtension = errors.New("unsupported answers file extension")
)

//go:embed schema/answers.schema.json
var answersSchema []byte

var schemaLoader = gojsonschema.NewBytesLoader(answersSchema)

// Answers maps challenges to their known correct answer on real input.
type Answers map[challenge.Key]string

// Lookup returns the expected answer for k.
func (a Answers) Lookup(k challenge.Key) (string, bool) {
	want, ok := a[k]

	return want, ok
}

type answersDoc struct {
	Answers []answerEntry `json:"answers" yaml:"answers"`
}

type answerEntry struct {
	Day    int    `json:"day"    yaml:"day"`
	Part   int    `json:"part"   yaml:"part"`
	Answer string `json:"answer" yaml:"answer"`
}

// LoadAnswers reads a .json, .yaml or .yml answers file. An empty path
// yields no answers.
func LoadAnswers(path string) (Answers, error) {
	if path == "" {
		return Answers{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseAnswers(data, json.Unmarshal)
	case ".yaml", ".yml":
		return ParseAnswers(data, yaml.Unmarshal)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExtension, path)
	}
}

// ParseAnswers decodes data with unmarshal, validates it against the answers
// schema, and indexes the entries.
func ParseAnswers(data []byte, unmarshal func([]byte, any) error) (Answers, error) {
	var raw any
	if err := unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAnswers, err)
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAnswers, err)
	}

	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			problems = append(problems, e.String())
		}

		return nil, fmt.Errorf("%w: %s", ErrInvalidAnswers, strings.Join(problems, "; "))
	}

	var doc answersDoc
	if err := unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAnswers, err)
	}

	answers := make(Answers, len(doc.Answers))

	for _, e := range doc.Answers {
		k := challenge.Key{Day: e.Day, Part: e.Part}
		if _, dup := answers[k]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAnswer, k)
		}

		answers[k] = e.Answer
	}

	return answers, nil
}
