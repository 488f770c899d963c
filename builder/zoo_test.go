package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath/zoowalk/builder"
	"github.com/lvlath/zoowalk/core"
)

// TestZoo_Topology pins the fixed data: 9 enclosures, 16 paths, lengths in {150,200,250}.
func TestZoo_Topology(t *testing.T) {
	g, err := builder.Zoo()
	require.NoError(t, err)

	require.Equal(t, 9, g.VertexCount())
	require.Equal(t, 16, g.EdgeCount())
	require.Equal(t, []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"}, g.Vertices())
	require.True(t, g.HasVertex(builder.ZooEntry))
	require.True(t, g.HasVertex(builder.ZooExit))
	require.True(t, g.Connected())

	for _, e := range g.Edges() {
		assert.Contains(t, []int64{builder.Short, builder.Medium, builder.Long}, e.Weight, "edge %s", e.ID)
		assert.Equal(t, e.From+e.To, e.ID)
	}
}

// TestZoo_Degrees checks every enclosure's neighbors against the map.
func TestZoo_Degrees(t *testing.T) {
	g, err := builder.Zoo()
	require.NoError(t, err)

	want := map[string][]string{
		"A": {"B", "D"},
		"B": {"A", "C", "E", "F", "D"},
		"C": {"B", "F"},
		"D": {"A", "B", "G", "H", "E"},
		"E": {"B", "D", "H", "F"},
		"F": {"B", "C", "E", "I", "H"},
		"G": {"D", "H"},
		"H": {"D", "E", "F", "G", "I"},
		"I": {"F", "H"},
	}
	for id, neighbors := range want {
		got, err := g.NeighborIDs(id)
		require.NoError(t, err)
		assert.ElementsMatch(t, neighbors, got, "neighbors of %s", id)
	}
}

// TestZoo_Distances checks the concrete path sums used as reference scenarios.
func TestZoo_Distances(t *testing.T) {
	g, err := builder.Zoo()
	require.NoError(t, err)

	cases := []struct {
		path []string
		want int64
	}{
		{[]string{"D", "A", "B", "C", "F"}, 700},
		{[]string{"D", "G", "H", "E", "B", "A", "D", "E", "H", "I", "F"}, 1700},
		{[]string{"D"}, 0},
	}
	for _, tc := range cases {
		d, err := g.PathDistance(tc.path)
		require.NoError(t, err)
		assert.Equal(t, tc.want, d, "%v", tc.path)
	}
}

// TestZoo_Overrides exercises each option and its failure mode.
func TestZoo_Overrides(t *testing.T) {
	t.Run("custom triangle", func(t *testing.T) {
		g, err := builder.Zoo(
			builder.WithVertices("X", "Y", "Z"),
			builder.WithEdges(
				core.Edge{ID: "XY", From: "X", To: "Y", Weight: 1},
				core.Edge{ID: "YZ", From: "Y", To: "Z", Weight: 1},
			),
		)
		require.NoError(t, err)
		require.Equal(t, 3, g.VertexCount())
	})

	t.Run("empty vertex set", func(t *testing.T) {
		_, err := builder.Zoo(builder.WithVertices())
		require.ErrorIs(t, err, builder.ErrEmptyTopology)
	})

	t.Run("core rejection keeps both sentinels", func(t *testing.T) {
		bad := builder.ZooEdges()
		bad[0].Weight = 0
		_, err := builder.Zoo(builder.WithEdges(bad...))
		require.ErrorIs(t, err, builder.ErrConstructFailed)
		require.ErrorIs(t, err, core.ErrBadWeight)
	})

	t.Run("disconnected", func(t *testing.T) {
		vs := append(builder.ZooVertices(), "J")
		_, err := builder.Zoo(builder.WithVertices(vs...))
		require.ErrorIs(t, err, builder.ErrDisconnected)

		g, err := builder.Zoo(builder.WithVertices(vs...), builder.WithRequireConnected(false))
		require.NoError(t, err)
		require.False(t, g.Connected())
	})

	t.Run("explicit incidence accepted", func(t *testing.T) {
		g, err := builder.Zoo(builder.WithIncidence("H", "GH", "DH", "HI", "EH", "FH"))
		require.NoError(t, err)
		ids, err := g.NeighborIDs("H")
		require.NoError(t, err)
		require.Equal(t, []string{"G", "D", "I", "E", "F"}, ids)
	})

	t.Run("edge list repeating DH and omitting FH is rejected", func(t *testing.T) {
		_, err := builder.Zoo(builder.WithIncidence("H", "GH", "DH", "HI", "EH", "DH"))
		require.ErrorIs(t, err, builder.ErrConstructFailed)
		require.ErrorIs(t, err, core.ErrIncidenceMismatch)
	})

	t.Run("empty edge table panics", func(t *testing.T) {
		require.Panics(t, func() { builder.WithEdges() })
	})
}

// TestZooEdges_ReturnsCopy guards the shared table.
func TestZooEdges_ReturnsCopy(t *testing.T) {
	edges := builder.ZooEdges()
	edges[0].Weight = 1
	require.Equal(t, builder.Medium, builder.ZooEdges()[0].Weight)

	vs := builder.ZooVertices()
	vs[0] = "Z"
	require.Equal(t, "A", builder.ZooVertices()[0])
}
