// SPDX-License-Identifier: MIT

// Package unique finds the longest contiguous run of a string in which no
// symbol repeats.
//
// What
//
//   - LongestUnique returns the length of the longest duplicate-free run.
//   - LongestUniqueWindow returns the leftmost such run as a window.Window.
//
// How
//
//	A two-pointer sliding window [left, right) scans the input once. A symbol
//	enters at right only while its count in the window is zero; otherwise the
//	symbol at left is evicted and left advances. The window therefore never
//	holds a duplicate, and every step moves one pointer forward.
//
// Alphabets
//
//   - Bytes (default): counts live in a fixed [256]int table indexed by byte
//     value, so any input (ASCII or not) is scanned byte by byte with O(1)
//     array access. Lengths and windows are in bytes.
//   - Runes: the input is decoded as UTF-8 and counts live in a map keyed by
//     code point. Lengths and windows are in runes. Use this for non-ASCII
//     text where "symbol" means character rather than byte.
//
// Complexity (n = len(s))
//
//   - Time:   O(n), each pointer advances at most n times.
//   - Memory: O(1) for Bytes, O(distinct runes) for Runes.
//
// Errors
//
//   - ErrOptionViolation if an unknown Alphabet is supplied.
//
// Usage
//
//	n, _ := unique.LongestUnique("abcabcbb")                              // 3
//	w, _ := unique.LongestUniqueWindow("héllo wörld", unique.WithAlphabet(unique.Runes))
package unique
