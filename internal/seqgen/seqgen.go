// SPDX-License-Identifier: MIT
// Package: seqscan/internal/seqgen
//
// seqgen.go: deterministic input fixtures for tests and benchmarks.
//
// Contract:
//   • Every generator is a pure function of (size, seed, params): the same
//     arguments always produce the same sequence. No global RNG is touched.
//   • Invalid sizes yield an empty result rather than a panic.
//   • O(n) time and memory.

package seqgen

import (
	"math/rand"
	"strings"
)

// Nucleotides is the DNA alphabet used by DNA.
const Nucleotides = "ACGT"

// Lowercase is a 26-letter alphabet for Text.
const Lowercase = "abcdefghijklmnopqrstuvwxyz"

// rngFor returns a private RNG seeded with seed.
func rngFor(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// DNA returns a length-n string over A, C, G, T.
func DNA(n int, seed int64) string {
	return Text(n, Nucleotides, seed)
}

// Text returns a length-n string whose bytes are drawn uniformly from alphabet.
func Text(n int, alphabet string, seed int64) string {
	if n <= 0 || alphabet == "" {
		return ""
	}
	rng := rngFor(seed)
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(alphabet[rng.Intn(len(alphabet))])
	}

	return sb.String()
}

// Positive returns n integers drawn uniformly from [1, maxValue].
func Positive(n, maxValue int, seed int64) []int {
	if n <= 0 || maxValue < 1 {
		return []int{}
	}
	rng := rngFor(seed)
	out := make([]int, n)
	for i := range out {
		out[i] = 1 + rng.Intn(maxValue)
	}

	return out
}

// Words cuts n consecutive w-length chunks out of text at a random offset and
// shuffles them. The returned offset is the start of the cut, so
// text[offset:offset+n*w] is guaranteed to be a concatenation of the words.
// It returns nil, -1 when text is too short.
func Words(text string, n, w int, seed int64) ([]string, int) {
	if n <= 0 || w <= 0 || len(text) < n*w {
		return nil, -1
	}
	rng := rngFor(seed)
	offset := rng.Intn(len(text) - n*w + 1)
	words := make([]string, n)
	for j := range words {
		start := offset + j*w
		words[j] = text[start : start+w]
	}
	rng.Shuffle(len(words), func(i, j int) { words[i], words[j] = words[j], words[i] })

	return words, offset
}
