package runner_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/advent/pkg/runner"
)

func TestSampleSource(t *testing.T) {
	t.Parallel()

	in, err := runner.SampleSource{}.Input(fake{day: 3, part: 1, input: "abc", want: "3"})
	require.NoError(t, err)
	assert.Equal(t, "abc", in.Text)
	assert.True(t, in.Sample)
}

func TestDirSource_ReadsDayFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day07.txt"), []byte("32T3K 765\n"), 0o600))

	src := runner.DirSource{Dir: dir}
	c := fake{day: 7, part: 2}

	assert.True(t, src.Has(c))

	in, err := src.Input(c)
	require.NoError(t, err)
	assert.Equal(t, "32T3K 765\n", in.Text)
	assert.False(t, in.Sample)
}

func TestDirSource_Missing(t *testing.T) {
	t.Parallel()

	src := runner.DirSource{Dir: t.TempDir()}
	c := fake{day: 11, part: 1}

	assert.False(t, src.Has(c))

	_, err := src.Input(c)
	require.ErrorIs(t, err, runner.ErrInputMissing)
	assert.Contains(t, err.Error(), "day11.txt")
}

func TestFileName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "day01.txt", runner.FileName(1))
	assert.Equal(t, "day25.txt", runner.FileName(25))
}
