package walk_test

import (
	"testing"

	"github.com/lvlath/zoowalk/builder"
	"github.com/lvlath/zoowalk/walk"
)

// BenchmarkWalk_Zoo measures one attempt on the zoo, with and without pruning.
func BenchmarkWalk_Zoo(b *testing.B) {
	g, err := builder.Zoo()
	if err != nil {
		b.Fatal(err)
	}

	for _, bc := range []struct {
		name  string
		bound walk.Bound
	}{
		{"Unbounded", nil},
		{"Bounded1600", fixedBound(zooOptimum)},
	} {
		b.Run(bc.name, func(b *testing.B) {
			w, err := walk.NewWalker(g, walk.DefaultOptions(), walk.NewRand(seedDet))
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				w.Walk(bc.bound)
			}
		})
	}
}
