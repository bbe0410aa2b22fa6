// SPDX-License-Identifier: MIT

package window

import "fmt"

// Window is the half-open index range [Left, Right) over a sequence.
// A valid Window over a sequence of length n satisfies 0 ≤ Left ≤ Right ≤ n.
type Window struct {
	Left  int
	Right int
}

// Len returns the number of positions covered by w.
func (w Window) Len() int {
	return w.Right - w.Left
}

// Empty reports whether w covers no positions.
func (w Window) Empty() bool {
	return w.Right <= w.Left
}

// Valid reports whether w is a well-formed window over a sequence of length n.
func (w Window) Valid(n int) bool {
	return 0 <= w.Left && w.Left <= w.Right && w.Right <= n
}

// String renders w in interval notation, e.g. "[3,7)".
func (w Window) String() string {
	return fmt.Sprintf("[%d,%d)", w.Left, w.Right)
}

// Slice returns the part of s covered by w, interpreting w as byte offsets.
// It returns "" when w is not valid for s.
func Slice(s string, w Window) string {
	if !w.Valid(len(s)) {
		return ""
	}

	return s[w.Left:w.Right]
}
