package timescale

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-timescale/dsp/core"
	"github.com/cwbudde/algo-timescale/internal/testutil"
)

func BenchmarkSynthesize(b *testing.B) {
	input := testutil.DeterministicSine(440, 48000, 0.8, 10*48000)

	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			s, err := Configure(input, 4096, 0.25, 1.2, core.WithWorkers(workers))
			if err != nil {
				b.Fatalf("Configure() error = %v", err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for range b.N {
				_ = s.Synthesize()
			}
		})
	}
}
