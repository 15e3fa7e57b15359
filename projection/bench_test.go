package projection_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/hypernet/projection"
)

// BenchmarkProjections measures every kind on a 2 000-node synthetic hypergraph.
func BenchmarkProjections(b *testing.B) {
	q := random(b, 2000, 3000, 8, 42)
	for _, k := range projection.AllKinds() {
		b.Run(k.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = projection.Project(k, q)
			}
		})
	}
}

// BenchmarkAll measures the parallel driver over every kind.
func BenchmarkAll(b *testing.B) {
	q := random(b, 2000, 3000, 8, 42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = projection.All(context.Background(), q, nil)
	}
}
