package benchmarks

import "testing"

// BenchmarkAllocationsPerPush checks that append cost stays amortized: total
// allocations grow logarithmically with the push count, not linearly.
func BenchmarkAllocationsPerPush(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v := GenVector(0)
		for j := 0; j < 4096; j++ {
			if err := v.PushBack(j); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkSnapshotDump keeps the YAML fixture path honest.
func BenchmarkSnapshotDump(b *testing.B) {
	v := GenVector(256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if len(DumpYAML(v)) == 0 {
			b.Fatal("empty snapshot")
		}
	}
}
