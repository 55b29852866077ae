package cluster_test

import (
	"testing"

	"github.com/katalvlaran/hclust/cluster"
	"github.com/katalvlaran/hclust/matrix"
)

func benchmarkCluster(b *testing.B, n int, linkage cluster.Linkage, opts ...cluster.Option) {
	rows := randomRows(42, n)
	src, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		m := src.CloneDense()
		b.StartTimer()
		if _, err := cluster.ClusterIndices(m, cluster.Distance, linkage, opts...); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSingle500(b *testing.B)   { benchmarkCluster(b, 500, cluster.Single) }
func BenchmarkComplete500(b *testing.B) { benchmarkCluster(b, 500, cluster.Complete) }
func BenchmarkUPGMA500(b *testing.B)    { benchmarkCluster(b, 500, cluster.UPGMA) }

func BenchmarkSingle500Provenance(b *testing.B) {
	benchmarkCluster(b, 500, cluster.Single, cluster.WithProvenance(cluster.ProvenanceRequired))
}
