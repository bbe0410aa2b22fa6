// SPDX-License-Identifier: MIT

package unique

import (
	"errors"
	"fmt"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("unique: invalid option supplied")

// Alphabet selects how the input string is split into symbols.
type Alphabet int

const (
	// Bytes treats every byte as a symbol and counts in a fixed 256-slot table.
	Bytes Alphabet = iota

	// Runes decodes UTF-8 and counts code points in a map.
	Runes
)

// String returns the alphabet name.
func (a Alphabet) String() string {
	switch a {
	case Bytes:
		return "bytes"
	case Runes:
		return "runes"
	default:
		return fmt.Sprintf("Alphabet(%d)", int(a))
	}
}

// Option configures a scan.
type Option func(*Options)

// Options holds the resolved scan parameters.
type Options struct {
	// Alphabet controls symbol granularity; default Bytes.
	Alphabet Alphabet

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the Bytes alphabet.
func DefaultOptions() Options {
	return Options{Alphabet: Bytes}
}

// WithAlphabet selects the symbol alphabet. Unknown values are recorded and
// surfaced as ErrOptionViolation when the scan runs.
func WithAlphabet(a Alphabet) Option {
	return func(o *Options) {
		switch a {
		case Bytes, Runes:
			o.Alphabet = a
		default:
			o.err = fmt.Errorf("%w: unknown alphabet %v", ErrOptionViolation, a)
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
