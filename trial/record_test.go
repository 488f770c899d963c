package trial

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lvlath/zoowalk/builder"
	"github.com/lvlath/zoowalk/result"
	"github.com/lvlath/zoowalk/walk"
)

// TestRecord_Verify feeds record a walk the generator would never produce.
func TestRecord_Verify(t *testing.T) {
	g, err := builder.Zoo()
	require.NoError(t, err)

	o := DefaultOptions()
	o.Verify = true
	r := &run{g: g, opts: o, set: result.NewSet(), bound: walk.NewBound()}

	bad := walk.Result{Path: []string{"D", "A", "B", "C", "F"}, Distance: 700}
	err = r.record(bad)
	require.ErrorIs(t, err, ErrInvalidWalk)
	require.ErrorIs(t, err, walk.ErrIncomplete)
	require.Zero(t, r.set.Len())

	o.Verify = false
	r.opts = o
	require.NoError(t, r.record(bad))
	require.Equal(t, 1, r.set.Len())
}
