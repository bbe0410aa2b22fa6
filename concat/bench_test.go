package concat_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/seqscan/concat"
	"github.com/katalvlaran/seqscan/internal/seqgen"
)

// BenchmarkFindConcatenations compares both strategies as the word count grows.
func BenchmarkFindConcatenations(b *testing.B) {
	text := seqgen.DNA(1<<14, 42)
	for _, n := range []int{2, 8, 32} {
		words, _ := seqgen.Words(text, n, 4, 42)
		for _, st := range []concat.Strategy{concat.Rebuild, concat.Rolling} {
			b.Run(fmt.Sprintf("%s/n=%d", st, n), func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(text)))
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					_, _ = concat.FindConcatenations(text, words, concat.WithStrategy(st))
				}
			})
		}
	}
}
