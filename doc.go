// SPDX-License-Identifier: MIT

// Package seqscan is a small toolkit of sliding-window scanners for classic
// substring and subarray problems, each running in linear or near-linear
// time instead of enumerating every candidate range.
//
// 🚀 What is inside?
//
//	Four independent, pure, allocation-light algorithms:
//		• unique/   : longest run without a repeated symbol (bytes or runes)
//		• concat/   : offsets where a word list appears concatenated in any order
//		• minwindow/: shortest run of non-negative integers reaching a target sum
//		• kgram/    : k-grams (default 10) occurring more than once, incl. packed DNA
//
//	Shared data model:
//		• window/   : half-open Window and the fingerprinted FrequencyMap
//
//	Tooling:
//		• cmd/seqscan: command-line harness with structured (zap) logging
//
// ✨ Guarantees
//
//   - Pure functions: no global state, no I/O, safe to call from many goroutines.
//   - Deterministic output for a given input and options.
//   - Explicit precondition errors (sentinels, errors.Is) instead of panics.
//   - Functional options with the same shape in every package.
//
// Quick example:
//
//	n, _ := unique.LongestUnique("abcabcbb")                                          // 3
//	offs, _ := concat.FindConcatenations("barfoofoobarthefoobarman", []string{"bar", "foo", "the"}) // [6 9 12]
//	k, _ := minwindow.MinSubArrayLen(7, []int{2, 3, 1, 2, 4, 3})                      // 2
//	grams, _ := kgram.Repeated("AAAAAAAAAAAAA")                                        // [AAAAAAAAAA]
//
//	go get github.com/katalvlaran/seqscan
package seqscan
