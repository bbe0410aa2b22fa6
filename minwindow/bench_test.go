package minwindow_test

import (
	"testing"

	"github.com/katalvlaran/seqscan/internal/seqgen"
	"github.com/katalvlaran/seqscan/minwindow"
)

// BenchmarkMinSubArrayLen scans 1M small positive values.
func BenchmarkMinSubArrayLen(b *testing.B) {
	nums := seqgen.Positive(1<<20, 100, 42)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = minwindow.MinSubArrayLen(5000, nums)
	}
}
