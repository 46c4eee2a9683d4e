// SPDX-License-Identifier: MIT

// Package bench measures and cross-checks the generic aggregates over the
// bucketed regression sequence (element i of n is i*10/n, so ten equal runs of
// the values 0..9).
//
// What it provides:
//   - Dataset: the sequence, converted through any provider.
//   - Cases: named measurements. Each runs Sum, Average, Range and Sigma over
//     one representation (hand-written float64 loop, generic aggregate over a
//     provider, or the num.Rational wrapper). OptIn cases, such as the
//     deliberately overflowing checked-int16, run only when named.
//   - Runner: executes cases for a number of rounds with functional Options,
//     logging through log/slog and drawing an optional progress bar.
//   - Verify: compares the generic results with gonum's stat package and with
//     the closed-form integer expectations.
//   - Report: renders results as an aligned text table or YAML.
//
// Errors:
//   - ErrUnknownCase, ErrUnknownFormat, ErrUnknownLogMode for bad names.
//   - ErrMismatch when Verify finds a disagreement, ErrEmptyDataset when it
//     has nothing to check.
//   - Checked-provider overflow inside a case is returned as an error wrapping
//     algebra.ErrOverflow.
//   - Options panic on nonsensical values (programmer error).
package bench
