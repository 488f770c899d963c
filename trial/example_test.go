package trial_test

import (
	"context"
	"fmt"

	"github.com/lvlath/zoowalk/builder"
	"github.com/lvlath/zoowalk/trial"
)

// ExampleRun searches the zoo with a fixed seed and reports the best walk's
// endpoints.
func ExampleRun() {
	g, err := builder.Zoo()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	opts := trial.DefaultOptions()
	opts.Attempts = 50000
	opts.Seed = 7

	set, stats, err := trial.Run(context.Background(), g, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	rep := set.Rank()
	best := rep.Best.Path
	fmt.Println("attempts:", stats.Attempts)
	fmt.Println("found:", rep.Count > 0)
	fmt.Println("from", best[0], "to", best[len(best)-1])
	fmt.Println("at least 1600 m:", rep.Best.Distance >= 1600)

	// Output:
	// attempts: 50000
	// found: true
	// from D to F
	// at least 1600 m: true
}
