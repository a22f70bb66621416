package runner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Sumatoshi-tech/advent/pkg/challenge"
)

// ErrInputMissing is returned when a real input file does not exist.
var ErrInputMissing = errors.New("input file missing")

// Source supplies the input a challenge is solved against.
type Source interface {
	Input(c challenge.Challenge) (challenge.Input, error)
}

// SampleSource feeds every challenge its embedded worked example.
type SampleSource struct{}

func (SampleSource) Input(c challenge.Challenge) (challenge.Input, error) {
	return challenge.Input{Text: c.Sample().Input, Sample: true}, nil
}

// DirSource reads real inputs named dayNN.txt from Dir. Both parts of a day
// share one file.
type DirSource struct {
	Dir string
}

// FileName returns the input file name for day.
func FileName(day int) string {
	return fmt.Sprintf("day%02d.txt", day)
}

// Path returns where the input for c is expected.
func (s DirSource) Path(c challenge.Challenge) string {
	return filepath.Join(s.Dir, FileName(c.Day()))
}

func (s DirSource) Input(c challenge.Challenge) (challenge.Input, error) {
	path := s.Path(c)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return challenge.Input{}, fmt.Errorf("%w: %s", ErrInputMissing, path)
	}

	if err != nil {
		return challenge.Input{}, fmt.Errorf("read input: %w", err)
	}

	return challenge.Input{Text: string(data)}, nil
}

// Has reports whether the input file for c exists.
func (s DirSource) Has(c challenge.Challenge) bool {
	_, err := os.Stat(s.Path(c))

	return err == nil
}
