// SPDX-License-Identifier: MIT

// Package concat finds every offset in a text where some ordering of a fixed
// list of equal-length words appears concatenated, with nothing in between.
//
// What
//
//	Given text and words (n words, each of length w), FindConcatenations
//	returns, in ascending order, every offset i such that text[i:i+n*w] splits
//	into n chunks of length w whose multiset equals the multiset of words.
//	Duplicate words must appear as many times as they are listed. Overlapping
//	matches are all reported.
//
// Strategies
//
//   - Rebuild (default): for each candidate offset, count its n chunks into a
//     fresh window.FrequencyMap and compare with the reference map.
//     Time O((len(text) − n·w + 1) · n).
//   - Rolling: for each of the w chunk phases, slide a window of n chunks
//     across the text, adding the chunk that enters and removing the chunk
//     that leaves. Time O(len(text)), results identical to Rebuild.
//
// Both strategies compare maps through window.FrequencyMap.Equal, which
// rejects most candidates on a fingerprint mismatch without walking keys.
//
// Errors
//
//   - ErrEmptyWord          if the words have length zero.
//   - ErrUnequalWordLength  if words differ in length. Every offending word is
//     reported in one aggregated error; errors.Is matches the sentinel.
//   - ErrOptionViolation    for an unknown Strategy.
//
// Trivial inputs (no words, text shorter than n·w) return a nil slice and a
// nil error.
//
// Usage
//
//	offs, err := concat.FindConcatenations("barfoofoobarthefoobarman", []string{"bar", "foo", "the"})
//	// offs == [6 9 12]
package concat
