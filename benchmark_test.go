package tlog

import "testing"

func discard(string) {}

func newBenchLogger(b *testing.B) *Logger {
	b.Helper()
	l, err := NewBuilder().
		WithOutput(discard).
		WithFormatter(bodyOnly).
		Build()
	if err != nil {
		b.Fatalf("build logger: %v", err)
	}
	return l
}

func BenchmarkAppendFlush(b *testing.B) {
	l := newBenchLogger(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Apply(Info).Str("request ").Int(int64(i)).Str(" done").Apply(Endl)
	}
}

func BenchmarkAppendOnly(b *testing.B) {
	l := newBenchLogger(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Str("x")
		if i%64 == 63 {
			l.Flush()
		}
	}
	l.Flush()
}

func BenchmarkAppendFlushParallel(b *testing.B) {
	l := newBenchLogger(b)
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l.Str("parallel record").Apply(Endl)
		}
	})
}
