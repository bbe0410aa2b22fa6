// SPDX-License-Identifier: MIT

package kgram

import "fmt"

// bases maps a 2-bit code back to its nucleotide.
const bases = "ACGT"

// baseCode returns the 2-bit code of b, accepting either case.
func baseCode(b byte) (uint64, bool) {
	switch b {
	case 'A', 'a':
		return 0, true
	case 'C', 'c':
		return 1, true
	case 'G', 'g':
		return 2, true
	case 'T', 't':
		return 3, true
	}

	return 0, false
}

// RepeatedDNA returns every k-gram of the nucleotide string s that occurs at
// least MinCount times, in upper case.
func RepeatedDNA(s string, opts ...Option) ([]string, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if o.K > maxPackedK {
		return nil, fmt.Errorf("%w: K must be at most %d for packed DNA (%d)", ErrOptionViolation, maxPackedK, o.K)
	}

	var (
		mask   = ^uint64(0) >> (64 - 2*uint(o.K))
		key    uint64
		counts = make(map[uint64]int)
		found  []string
	)
	for i := 0; i < len(s); i++ {
		code, ok := baseCode(s[i])
		if !ok {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidNucleotide, s[i], i)
		}
		key = (key<<2 | code) & mask
		if i+1 < o.K {
			continue
		}
		counts[key]++
		if counts[key] == o.MinCount {
			found = append(found, unpack(key, o.K))
		}
	}

	return finish(found, o), nil
}

// unpack renders a packed key as its k-length upper-case k-gram.
func unpack(key uint64, k int) string {
	buf := make([]byte, k)
	for i := k - 1; i >= 0; i-- {
		buf[i] = bases[key&3]
		key >>= 2
	}

	return string(buf)
}
