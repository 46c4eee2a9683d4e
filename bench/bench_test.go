// SPDX-License-Identifier: MIT

package bench_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/genmath/algebra"
	"github.com/katalvlaran/genmath/bench"
	"github.com/katalvlaran/genmath/provider"
)

func TestDataset(t *testing.T) {
	t.Parallel()

	xs := bench.Dataset[provider.Int32, int32](20)
	require.Len(t, xs, 20)
	assert.Equal(t, []int32{0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7, 8, 8, 9, 9}, xs)

	assert.Empty(t, bench.Dataset[provider.Float64, float64](0))

	big := bench.Dataset[provider.Uint8, uint8](1_000_000)
	counts := map[uint8]int{}
	for _, v := range big {
		counts[v]++
	}
	assert.Len(t, counts, 10)
	for v, c := range counts {
		assert.Equal(t, 100_000, c, "bucket %d", v)
	}
}

func TestOptions(t *testing.T) {
	t.Parallel()

	o := bench.NewRunner().Options()
	assert.Equal(t, bench.DefaultSize, o.Size)
	assert.Equal(t, bench.DefaultRounds, o.Rounds)
	assert.False(t, o.Progress)
	assert.NotNil(t, o.Logger)

	o = bench.NewRunner(bench.WithSize(10), bench.WithRounds(3), bench.WithProgress(true), bench.WithLogger(nil)).Options()
	assert.Equal(t, 10, o.Size)
	assert.Equal(t, 3, o.Rounds)
	assert.True(t, o.Progress)
	assert.NotNil(t, o.Logger)

	assert.PanicsWithValue(t, "bench: WithSize: size must be positive, got 0", func() { bench.WithSize(0) })
	assert.PanicsWithValue(t, "bench: WithRounds: rounds must be positive, got -1", func() { bench.WithRounds(-1) })
}

func TestLookup(t *testing.T) {
	t.Parallel()

	names := bench.Names()
	require.Len(t, names, len(bench.Cases()))
	assert.Contains(t, names, "native-float64")
	assert.Contains(t, names, "checked-decimal")

	defaults := bench.Defaults()
	assert.Less(t, len(defaults), len(names))
	for _, c := range defaults {
		assert.False(t, c.OptIn, c.Name)
		assert.NotEqual(t, "checked-int16", c.Name)
	}
	opt, err := bench.Lookup("checked-int16")
	require.NoError(t, err)
	assert.True(t, opt.OptIn)

	c, err := bench.Lookup("int64")
	require.NoError(t, err)
	assert.Equal(t, "int64", c.Type)

	_, err = bench.Lookup("int128")
	assert.ErrorIs(t, err, bench.ErrUnknownCase)
}

func TestParse(t *testing.T) {
	t.Parallel()

	f, err := bench.ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, bench.FormatYAML, f)
	_, err = bench.ParseFormat("xml")
	assert.ErrorIs(t, err, bench.ErrUnknownFormat)

	m, err := bench.ParseLogMode("json")
	require.NoError(t, err)
	assert.Equal(t, bench.LogJSON, m)
	assert.Equal(t, "json", m.String())
	_, err = bench.ParseLogMode("syslog")
	assert.ErrorIs(t, err, bench.ErrUnknownLogMode)
}

// RunnerSuite runs every case on a small dataset.
type RunnerSuite struct {
	suite.Suite
	logs   bytes.Buffer
	runner *bench.Runner
}

func (s *RunnerSuite) SetupTest() {
	s.logs.Reset()
	logger := slog.New(slog.NewTextHandler(&s.logs, nil))
	s.runner = bench.NewRunner(bench.WithSize(1000), bench.WithRounds(2), bench.WithLogger(logger))
}

func (s *RunnerSuite) TestAllCasesAgree() {
	report, err := s.runner.Run(context.Background())
	s.Require().NoError(err)
	s.Require().Len(report.Results, len(bench.Defaults()))
	s.Equal(1000, report.Size)
	s.Equal(2, report.Rounds)

	for _, res := range report.Results {
		s.Run(res.Case, func() {
			s.Equal("4500", res.Stats.Sum)
			s.Equal("0", res.Stats.Min)
			s.Equal("9", res.Stats.Max)
			if strings.Contains(res.Type, "int") {
				s.Equal("4", res.Stats.Average)
				s.Equal("2", res.Stats.Sigma)
			} else {
				s.Equal("4.5", res.Stats.Average)
				s.True(strings.HasPrefix(res.Stats.Sigma, "2.87228"), res.Stats.Sigma)
			}
		})
	}
	s.Contains(s.logs.String(), "case done")
}

func (s *RunnerSuite) TestSelectedOrder() {
	report, err := s.runner.Run(context.Background(), "decimal", "int32")
	s.Require().NoError(err)
	s.Require().Len(report.Results, 2)
	s.Equal("decimal", report.Results[0].Case)
	s.Equal("int32", report.Results[1].Case)
}

func (s *RunnerSuite) TestUnknownCase() {
	_, err := s.runner.Run(context.Background(), "int32", "nope")
	s.ErrorIs(err, bench.ErrUnknownCase)
}

func (s *RunnerSuite) TestCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.runner.Run(ctx, "int32")
	s.ErrorIs(err, context.Canceled)
}

// A checked int16 sum overflows past about 7,000 elements of the sequence.
func (s *RunnerSuite) TestCheckedOverflow() {
	r := bench.NewRunner(bench.WithSize(10_000))
	_, err := r.Run(context.Background(), "int32", "checked-int16")
	s.ErrorIs(err, algebra.ErrOverflow)
	s.Contains(err.Error(), "checked-int16")
}

// The default case set must complete at the default size, which is what a
// bare `genbench run` executes.
func TestRun_DefaultsAtDefaultSize(t *testing.T) {
	if testing.Short() {
		t.Skip("runs every default case over 1,000,000 elements")
	}

	report, err := bench.NewRunner().Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, bench.DefaultSize, report.Size)
	require.Len(t, report.Results, len(bench.Defaults()))
	for _, res := range report.Results {
		assert.Equal(t, "0", res.Stats.Min, res.Case)
		assert.Equal(t, "9", res.Stats.Max, res.Case)
	}
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerSuite))
}

func TestReport_Write(t *testing.T) {
	t.Parallel()

	report, err := bench.NewRunner(bench.WithSize(100)).Run(context.Background(), "int32", "float64")
	require.NoError(t, err)

	var text bytes.Buffer
	require.NoError(t, report.Write(&text, bench.FormatText))
	lines := strings.Split(strings.TrimRight(text.String(), "\n"), "\n")
	require.Len(t, lines, 8) // top, title, divider, header, divider, 2 rows, divider
	for _, l := range lines {
		assert.Equal(t, utf8.RuneCountInString(lines[0]), utf8.RuneCountInString(l), "row %q", l)
	}
	assert.Contains(t, lines[1], "size 100, rounds 1")
	assert.Contains(t, text.String(), "| int32 ")

	var out bytes.Buffer
	require.NoError(t, report.Write(&out, bench.FormatYAML))
	var decoded struct {
		Size    int `yaml:"size"`
		Results []struct {
			Case  string `yaml:"case"`
			Stats struct {
				Average string `yaml:"average"`
			} `yaml:"stats"`
		} `yaml:"results"`
	}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, 100, decoded.Size)
	require.Len(t, decoded.Results, 2)
	assert.Equal(t, "float64", decoded.Results[1].Case)
	assert.Equal(t, "4.5", decoded.Results[1].Stats.Average)

	assert.ErrorIs(t, report.Write(&out, bench.Format("csv")), bench.ErrUnknownFormat)
}

func TestVerify(t *testing.T) {
	t.Parallel()

	v, err := bench.Verify(10_000)
	require.NoError(t, err)
	assert.Empty(t, v.Failed())
	assert.Len(t, v.Checks, 10)

	var buf bytes.Buffer
	require.NoError(t, v.Write(&buf, bench.FormatText))
	assert.Contains(t, buf.String(), "int64/sigma")
	assert.NotContains(t, buf.String(), "FAIL")

	_, err = bench.Verify(0)
	assert.ErrorIs(t, err, bench.ErrEmptyDataset)
}

func TestCaseOverflowIsError(t *testing.T) {
	t.Parallel()

	c, err := bench.Lookup("checked-int16")
	require.NoError(t, err)

	_, err = algebra.Catch(c.Prepare(1000))
	require.NoError(t, err)

	_, err = algebra.Catch(c.Prepare(10_000))
	require.Error(t, err)
	var ae *algebra.ArithmeticError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "Add", ae.Op)
	assert.Equal(t, "int16", ae.Type)
}
