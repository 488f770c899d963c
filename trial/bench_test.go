package trial_test

import (
	"context"
	"testing"

	"github.com/lvlath/zoowalk/builder"
	"github.com/lvlath/zoowalk/trial"
)

// BenchmarkRun measures a 10k-attempt run sequentially and on four workers.
func BenchmarkRun(b *testing.B) {
	g, err := builder.Zoo()
	if err != nil {
		b.Fatal(err)
	}

	for _, bc := range []struct {
		name    string
		workers int
	}{
		{"Sequential", 1},
		{"Workers4", 4},
	} {
		b.Run(bc.name, func(b *testing.B) {
			opts := trial.DefaultOptions()
			opts.Attempts = 10000
			opts.Workers = bc.workers
			opts.Seed = seedDet
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, _, err := trial.Run(context.Background(), g, opts); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
