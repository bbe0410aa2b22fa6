// SPDX-License-Identifier: MIT

package concat

import (
	"errors"
	"fmt"
)

// Sentinel errors for FindConcatenations.
var (
	// ErrUnequalWordLength is returned when the words do not all share one length.
	ErrUnequalWordLength = errors.New("concat: words must all have the same length")

	// ErrEmptyWord is returned when the common word length is zero.
	ErrEmptyWord = errors.New("concat: words must be non-empty")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("concat: invalid option supplied")
)

// Strategy selects how candidate windows are counted.
type Strategy int

const (
	// Rebuild recounts every candidate window from scratch.
	Rebuild Strategy = iota

	// Rolling updates one frequency map per chunk phase as the window slides.
	Rolling
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case Rebuild:
		return "rebuild"
	case Rolling:
		return "rolling"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Option configures FindConcatenations.
type Option func(*Options)

// Options holds the resolved matcher parameters.
type Options struct {
	// Strategy picks the counting strategy; default Rebuild.
	Strategy Strategy

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options using the Rebuild strategy.
func DefaultOptions() Options {
	return Options{Strategy: Rebuild}
}

// WithStrategy selects the counting strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case Rebuild, Rolling:
			o.Strategy = s
		default:
			o.err = fmt.Errorf("%w: unknown strategy %v", ErrOptionViolation, s)
		}
	}
}

func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
