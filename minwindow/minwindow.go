// SPDX-License-Identifier: MIT

package minwindow

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/seqscan/window"
)

// Sentinel errors for precondition violations.
var (
	// ErrNonPositiveTarget is returned when target ≤ 0.
	ErrNonPositiveTarget = errors.New("minwindow: target must be positive")

	// ErrNegativeElement is returned when nums holds a negative value.
	ErrNegativeElement = errors.New("minwindow: elements must be non-negative")
)

// Integer is the set of element types accepted by the finder.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// MinSubArrayLen returns the length of the shortest contiguous run of nums
// whose sum is at least target, or 0 if no such run exists.
func MinSubArrayLen[T Integer](target T, nums []T) (int, error) {
	w, ok, err := MinWindow(target, nums)
	if err != nil || !ok {
		return 0, err
	}

	return w.Len(), nil
}

// MinWindow returns the leftmost shortest window of nums whose sum is at
// least target. ok is false when no window qualifies.
func MinWindow[T Integer](target T, nums []T) (w window.Window, ok bool, err error) {
	if err = validate(target, nums); err != nil {
		return window.Window{}, false, err
	}

	// The window sum is never stored: below target it is kept as the
	// shortfall need = target - sum, at or above target as the surplus
	// over = sum - target. Both stay within [0, max(T)], so no element
	// type can overflow however large the true sum gets.
	var (
		sentinel = len(nums) + 1
		best     = sentinel
		left     int
		need     = target
	)
	for right, v := range nums {
		if v < need {
			need -= v
			continue
		}
		over := v - need
		for {
			if size := right - left + 1; size < best {
				best = size
				w = window.Window{Left: left, Right: right + 1}
			}
			drop := nums[left]
			left++
			if drop > over {
				need = drop - over
				break
			}
			over -= drop
		}
	}
	if best == sentinel {
		return window.Window{}, false, nil
	}

	return w, true, nil
}

func validate[T Integer](target T, nums []T) error {
	if target <= 0 {
		return fmt.Errorf("%w: got %d", ErrNonPositiveTarget, int64(target))
	}
	for i, v := range nums {
		if v < 0 {
			return fmt.Errorf("%w: nums[%d] = %d", ErrNegativeElement, i, int64(v))
		}
	}

	return nil
}
