package builder_test

import (
	"fmt"

	"github.com/lvlath/zoowalk/builder"
)

// ExampleZoo builds the zoo and lists the exits of the entrance.
func ExampleZoo() {
	g, err := builder.Zoo()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	ids, _ := g.NeighborIDs(builder.ZooEntry)
	fmt.Println(g.VertexCount(), "enclosures,", g.EdgeCount(), "paths")
	fmt.Println("from", builder.ZooEntry, "to", ids)

	// Output:
	// 9 enclosures, 16 paths
	// from D to [A B G H E]
}
