// SPDX-License-Identifier: MIT

package kgram

import (
	"errors"
	"fmt"
)

// Defaults.
const (
	// DefaultK is the k-gram length used when WithK is not given.
	DefaultK = 10

	// DefaultMinCount reports k-grams occurring more than once.
	DefaultMinCount = 2

	// maxPackedK is the longest k-gram that fits a 2-bit-per-base uint64 key.
	maxPackedK = 32
)

// Sentinel errors.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("kgram: invalid option supplied")

	// ErrInvalidNucleotide is returned by RepeatedDNA for bytes outside ACGT.
	ErrInvalidNucleotide = errors.New("kgram: invalid nucleotide")
)

// Option configures a k-gram scan.
type Option func(*Options)

// Options holds the resolved scan parameters.
type Options struct {
	// K is the k-gram length (≥ 1).
	K int

	// MinCount is the occurrence threshold for reporting (≥ 2).
	MinCount int

	// Sorted returns results in lexicographic order instead of discovery order.
	Sorted bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns K=10, MinCount=2, discovery order.
func DefaultOptions() Options {
	return Options{K: DefaultK, MinCount: DefaultMinCount}
}

// WithK sets the k-gram length.
//
//	k ≥ 1: use k
//	k < 1: invalid option → ErrOptionViolation
func WithK(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: K must be at least 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.K = k
	}
}

// WithMinCount sets the occurrence threshold.
//
//	c ≥ 2: report k-grams seen at least c times
//	c < 2: invalid option → ErrOptionViolation
func WithMinCount(c int) Option {
	return func(o *Options) {
		if c < 2 {
			o.err = fmt.Errorf("%w: MinCount must be at least 2 (%d)", ErrOptionViolation, c)
			return
		}
		o.MinCount = c
	}
}

// WithSorted requests lexicographic output order.
func WithSorted() Option {
	return func(o *Options) {
		o.Sorted = true
	}
}

func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
