// SPDX-License-Identifier: MIT

// Package minwindow finds the shortest contiguous run of non-negative
// integers whose sum reaches a target.
//
// How
//
//	An expanding/contracting window keeps a running sum of nums[left..right].
//	Each step adds nums[right]; while the sum is at least target, the window
//	length is recorded and nums[left] is dropped. Because every element is
//	non-negative, dropping an element never raises the sum, so each index
//	enters and leaves the window at most once.
//
// API
//
//   - MinSubArrayLen returns the minimal length, or 0 when no run reaches
//     target.
//   - MinWindow returns the leftmost minimal run as a window.Window plus an ok
//     flag.
//
// Both are generic over signed integer types.
//
// Errors
//
//   - ErrNonPositiveTarget if target ≤ 0.
//   - ErrNegativeElement   if any element is negative (wrapped with its index).
//
// An empty nums slice yields 0 and no error.
//
// Complexity (n = len(nums))
//
//   - Time:   O(n)
//   - Memory: O(1)
package minwindow
