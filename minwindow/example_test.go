package minwindow_test

import (
	"fmt"

	"github.com/katalvlaran/seqscan/minwindow"
)

// ExampleMinSubArrayLen finds the shortest run summing to at least 7.
func ExampleMinSubArrayLen() {
	n, err := minwindow.MinSubArrayLen(7, []int{2, 3, 1, 2, 4, 3})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(n)

	none, _ := minwindow.MinSubArrayLen(100, []int{1, 1, 1})
	fmt.Println(none)
	// Output:
	// 2
	// 0
}

// ExampleMinWindow reports where the shortest run is.
func ExampleMinWindow() {
	nums := []int{2, 3, 1, 2, 4, 3}
	w, ok, _ := minwindow.MinWindow(7, nums)
	fmt.Println(w, ok, nums[w.Left:w.Right])
	// Output:
	// [4,6) true [4 3]
}
