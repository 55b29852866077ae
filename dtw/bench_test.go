package dtw_test

import (
	"testing"

	"github.com/katalvlaran/hclust/dtw"
)

func ramp(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = float64(i % 17)
	}

	return s
}

func BenchmarkDistance500(b *testing.B) {
	x, y := ramp(500), ramp(480)
	opts := dtw.DefaultOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dtw.Distance(x, y, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDistance500Window(b *testing.B) {
	x, y := ramp(500), ramp(480)
	opts := dtw.DefaultOptions()
	opts.Window = 25
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dtw.Distance(x, y, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPath200(b *testing.B) {
	x, y := ramp(200), ramp(190)
	opts := dtw.DefaultOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := dtw.Path(x, y, opts); err != nil {
			b.Fatal(err)
		}
	}
}
