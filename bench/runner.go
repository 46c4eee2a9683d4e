// SPDX-License-Identifier: MIT

package bench

import (
	"context"
	"io"
	"time"

	"github.com/cheggaaa/pb/v3"

	"github.com/katalvlaran/genmath/algebra"
)

const opRun = "Run"

// Result is one case's outcome over all rounds.
type Result struct {
	Case    string        `yaml:"case"`
	Type    string        `yaml:"type"`
	Elapsed time.Duration `yaml:"elapsed"` // mean per round
	Stats   Stats         `yaml:"stats"`
}

// Runner executes cases sequentially with fixed Options.
type Runner struct {
	opts Options
}

// NewRunner returns a Runner configured by opts on top of DefaultOptions.
func NewRunner(opts ...Option) *Runner {
	return &Runner{opts: gatherOptions(opts...)}
}

// Options returns the effective configuration.
func (r *Runner) Options() Options { return r.opts }

// Run executes the named cases, or Defaults when names is empty.
//
// Implementation:
//   - Stage 1: Resolve every name before running anything.
//   - Stage 2: For each case build the dataset once, then time Rounds calls.
//   - Stage 3: Collect results in the requested order.
//
// Errors:
//   - ErrUnknownCase for an unregistered name.
//   - ctx.Err() when the context is cancelled between rounds.
//   - An error wrapping algebra.ErrOverflow (or ErrDivideByZero) when a checked
//     provider fails inside a case.
func (r *Runner) Run(ctx context.Context, names ...string) (*Report, error) {
	// Stage 1 (Resolve)
	cases, err := r.resolve(names)
	if err != nil {
		return nil, benchErrorf(opRun, err)
	}

	log := r.opts.Logger
	bar := pb.New(len(cases) * r.opts.Rounds)
	if !r.opts.Progress {
		bar.SetWriter(io.Discard)
	}
	bar.Start()
	defer bar.Finish()

	report := &Report{Size: r.opts.Size, Rounds: r.opts.Rounds}
	for _, c := range cases {
		// Stage 2 (Measure)
		log.Debug("preparing case", "case", c.Name, "size", r.opts.Size)
		timed := c.Prepare(r.opts.Size)

		var (
			total time.Duration
			stats Stats
		)
		for round := 0; round < r.opts.Rounds; round++ {
			if err := ctx.Err(); err != nil {
				return nil, benchErrorf(opRun, err)
			}
			start := time.Now()
			stats, err = algebra.Catch(timed)
			total += time.Since(start)
			if err != nil {
				log.Error("case failed", "case", c.Name, "round", round, "err", err)
				return nil, benchErrorf(c.Name, err)
			}
			bar.Increment()
		}

		// Stage 3 (Collect)
		res := Result{
			Case:    c.Name,
			Type:    c.Type,
			Elapsed: total / time.Duration(r.opts.Rounds),
			Stats:   stats,
		}
		log.Info("case done",
			"case", res.Case,
			"type", res.Type,
			"elapsed", res.Elapsed,
			"average", res.Stats.Average,
			"sigma", res.Stats.Sigma,
		)
		report.Results = append(report.Results, res)
	}

	return report, nil
}

func (r *Runner) resolve(names []string) ([]Case, error) {
	if len(names) == 0 {
		return Defaults(), nil
	}
	cases := make([]Case, 0, len(names))
	for _, name := range names {
		c, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}

	return cases, nil
}
