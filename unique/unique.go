// SPDX-License-Identifier: MIT

package unique

import (
	"github.com/katalvlaran/seqscan/window"
)

// byteAlphabetSize covers every possible byte value.
const byteAlphabetSize = 256

// LongestUnique returns the length of the longest contiguous run of s that
// contains no repeated symbol. An empty s yields 0.
func LongestUnique(s string, opts ...Option) (int, error) {
	w, err := LongestUniqueWindow(s, opts...)
	if err != nil {
		return 0, err
	}

	return w.Len(), nil
}

// LongestUniqueWindow returns the leftmost longest duplicate-free window of s.
// Offsets are byte offsets for Bytes and rune indices for Runes.
func LongestUniqueWindow(s string, opts ...Option) (window.Window, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return window.Window{}, err
	}
	if o.Alphabet == Runes {
		rs := []rune(s)
		return slide(len(rs), func(i int) rune { return rs[i] }, runeTable{}), nil
	}

	return slide(len(s), func(i int) byte { return s[i] }, &byteTable{}), nil
}

// table counts the symbols currently inside the window.
type table[T byte | rune] interface {
	count(T) int
	inc(T)
	dec(T)
}

// byteTable is a fixed array indexed by byte value.
type byteTable [byteAlphabetSize]int

func (t *byteTable) count(b byte) int { return t[b] }
func (t *byteTable) inc(b byte)       { t[b]++ }
func (t *byteTable) dec(b byte)       { t[b]-- }

// runeTable is keyed by code point.
type runeTable map[rune]int

func (t runeTable) count(r rune) int { return t[r] }
func (t runeTable) inc(r rune)       { t[r]++ }
func (t runeTable) dec(r rune)       { t[r]-- }

// slide runs the two-pointer scan over n symbols read through at.
func slide[T byte | rune](n int, at func(int) T, freq table[T]) window.Window {
	var (
		best        window.Window
		left, right int
	)
	for left < n {
		if right < n && freq.count(at(right)) == 0 {
			freq.inc(at(right))
			right++
		} else {
			freq.dec(at(left))
			left++
		}
		if right-left > best.Len() {
			best = window.Window{Left: left, Right: right}
		}
	}

	return best
}
