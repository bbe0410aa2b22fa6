package concat_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/seqscan/concat"
)

// ExampleFindConcatenations finds every arrangement of bar/foo/the.
func ExampleFindConcatenations() {
	offs, err := concat.FindConcatenations("barfoofoobarthefoobarman", []string{"bar", "foo", "the"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(offs)
	// Output:
	// [6 9 12]
}

// ExampleWithStrategy uses the rolling strategy; the result is unchanged.
func ExampleWithStrategy() {
	offs, _ := concat.FindConcatenations("barfoothefoobarman", []string{"foo", "bar"},
		concat.WithStrategy(concat.Rolling))
	fmt.Println(offs)
	// Output:
	// [0 9]
}

// ExampleFindConcatenations_unequal shows the precondition error.
func ExampleFindConcatenations_unequal() {
	_, err := concat.FindConcatenations("abcd", []string{"ab", "c"})
	fmt.Println(errors.Is(err, concat.ErrUnequalWordLength))
	// Output:
	// true
}
