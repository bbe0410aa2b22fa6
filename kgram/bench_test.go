package kgram_test

import (
	"testing"

	"github.com/katalvlaran/seqscan/internal/seqgen"
	"github.com/katalvlaran/seqscan/kgram"
)

// BenchmarkRepeated measures the string-keyed scanner on 64 KiB of DNA.
func BenchmarkRepeated(b *testing.B) {
	s := seqgen.DNA(1<<16, 42)

	b.ReportAllocs()
	b.SetBytes(int64(len(s)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = kgram.Repeated(s)
	}
}

// BenchmarkRepeatedDNA measures the packed scanner on the same input.
func BenchmarkRepeatedDNA(b *testing.B) {
	s := seqgen.DNA(1<<16, 42)

	b.ReportAllocs()
	b.SetBytes(int64(len(s)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = kgram.RepeatedDNA(s)
	}
}
