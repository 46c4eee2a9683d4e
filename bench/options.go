// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"log/slog"
)

// Defaults.
const (
	// DefaultSize is the length of the regression sequence.
	DefaultSize = 1_000_000

	// DefaultRounds is how many times each case is repeated.
	DefaultRounds = 1

	// DefaultProgress disables the progress bar.
	DefaultProgress = false
)

const (
	panicSizeInvalid   = "bench: WithSize: size must be positive, got %d"
	panicRoundsInvalid = "bench: WithRounds: rounds must be positive, got %d"
)

// Options configures a Runner. Build it with DefaultOptions and Option values.
type Options struct {
	Size     int
	Rounds   int
	Progress bool
	Logger   *slog.Logger
}

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// DefaultOptions returns Options populated with the Default* constants and a
// silent logger.
func DefaultOptions() Options {
	return Options{
		Size:     DefaultSize,
		Rounds:   DefaultRounds,
		Progress: DefaultProgress,
		Logger:   NewLogger(LogSilent),
	}
}

// WithSize sets the sequence length. Panics when n <= 0.
func WithSize(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf(panicSizeInvalid, n))
	}

	return func(o *Options) { o.Size = n }
}

// WithRounds sets the repetitions per case. Panics when r <= 0.
func WithRounds(r int) Option {
	if r <= 0 {
		panic(fmt.Sprintf(panicRoundsInvalid, r))
	}

	return func(o *Options) { o.Rounds = r }
}

// WithProgress toggles the progress bar on stderr.
func WithProgress(on bool) Option {
	return func(o *Options) { o.Progress = on }
}

// WithLogger sets the logger; nil restores the silent default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = NewLogger(LogSilent)
		}
		o.Logger = l
	}
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
