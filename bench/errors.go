// SPDX-License-Identifier: MIT
// Package bench: sentinel errors, matched with errors.Is.

package bench

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCase is returned when a case name is not registered.
	ErrUnknownCase = errors.New("bench: unknown case")

	// ErrUnknownFormat is returned for a report format other than text or yaml.
	ErrUnknownFormat = errors.New("bench: unknown report format")

	// ErrUnknownLogMode is returned for a log mode other than text, json or silent.
	ErrUnknownLogMode = errors.New("bench: unknown log mode")

	// ErrEmptyDataset is returned by Verify for a non-positive size.
	ErrEmptyDataset = errors.New("bench: empty dataset")

	// ErrMismatch is returned by Verify when a result differs from its oracle.
	ErrMismatch = errors.New("bench: result mismatch")
)

// benchErrorf wraps err with the operation tag, keeping errors.Is matching.
func benchErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
