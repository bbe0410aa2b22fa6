// SPDX-License-Identifier: MIT

// Package kgram reports every fixed-length substring (k-gram) that occurs
// more than once in a sequence. The default k is 10, the length used for
// repeated DNA sequence detection.
//
// What
//
//   - Repeated scans any string byte-wise and counts every k-gram in a
//     window.FrequencyMap keyed by its content.
//   - RepeatedDNA scans nucleotide text (A, C, G, T, either case). Each base
//     is packed into 2 bits of a rolling uint64 key, so no substring is
//     materialized until it is reported. Requires k ≤ 32. Reported k-grams
//     are upper-case.
//
// Ordering
//
//	A k-gram is reported at the moment its count reaches MinCount, so the
//	result follows the position of that occurrence, left to right. The order
//	is therefore deterministic for a given input. WithSorted switches to
//	lexicographic order. RepeatedDNA folds case, so RepeatedDNA(s) equals
//	Repeated(strings.ToUpper(s)) under identical options. Repeated compares
//	bytes as given, and the two only agree directly on upper-case input.
//
// Options
//
//   - WithK(k):         k-gram length, k ≥ 1 (default 10).
//   - WithMinCount(c):  report k-grams seen at least c times, c ≥ 2 (default 2).
//   - WithSorted():     lexicographic output.
//
// Errors
//
//   - ErrOptionViolation    for k < 1, c < 2, or k > 32 in RepeatedDNA.
//   - ErrInvalidNucleotide  when RepeatedDNA meets a non-ACGT byte (wrapped
//     with its offset).
//
// Inputs no longer than k yield a nil result.
//
// Complexity (n = len(s))
//
//   - Repeated:    O(n·k) time for hashing, O(n·k) memory worst case.
//   - RepeatedDNA: O(n) time, O(n) memory (one uint64 per distinct k-gram).
package kgram
