package benchmarks

import (
	"context"
	"testing"

	"github.com/notifykit/multicast/pkg/multicast"
)

// BenchmarkAdapt_Exact adapts a function whose signature already matches.
func BenchmarkAdapt_Exact(b *testing.B) {
	fn := func(ctx context.Context, source any, data Payload) error { return nil }
	for i := 0; i < b.N; i++ {
		_, _ = multicast.Adapt[Payload](fn)
	}
}

// BenchmarkAdapt_Contravariant adapts a function taking a wider payload type.
func BenchmarkAdapt_Contravariant(b *testing.B) {
	fn := func(ctx context.Context, source any, data any) error { return nil }
	for i := 0; i < b.N; i++ {
		_, _ = multicast.Adapt[Payload](fn)
	}
}

// BenchmarkRaise_Adapted raises a list built from a contravariant function,
// measuring the reflective invocation path.
func BenchmarkRaise_Adapted(b *testing.B) {
	fn := func(ctx context.Context, source any, data any) error { return nil }
	list, err := multicast.Adapt[Payload](fn)
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = multicast.Raise(ctx, list, nil, Payload{Value: i})
	}
}

// BenchmarkCombine_2 combines two single-callback lists.
func BenchmarkCombine_2(b *testing.B) {
	x := buildList(1)
	y := buildList(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = multicast.Combine(x, y)
	}
}

// BenchmarkCombine_10 combines ten 10-callback lists.
func BenchmarkCombine_10(b *testing.B) {
	lists := make([]multicast.List[Payload], 10)
	for i := range lists {
		lists[i] = buildList(10)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = multicast.Combine(lists...)
	}
}

// BenchmarkCombine_WithNil combines lists where most operands are nil.
func BenchmarkCombine_WithNil(b *testing.B) {
	x := buildList(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = multicast.Combine(nil, x, nil, nil)
	}
}

// BenchmarkResilient_Wrap measures decorator construction overhead.
func BenchmarkResilient_Wrap(b *testing.B) {
	list := buildList(10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = multicast.Resilient(list, nil)
	}
}

// BenchmarkParallel_Wrap measures decorator construction overhead.
func BenchmarkParallel_Wrap(b *testing.B) {
	list := buildList(10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = multicast.Parallel(list)
	}
}
