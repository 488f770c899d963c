package result

import (
	"strings"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
)

// Report is the ranked view of a Set.
type Report struct {
	// Count is the number of unique walks.
	Count int

	// Best is the shortest walk; nil when Count == 0.
	Best *Entry

	// Equivalents are the other walks tied with Best, in path order.
	Equivalents []Entry

	// All lists every walk ascending by distance, ties by path.
	All []Entry
}

// rankKey orders entries by distance, then by rendered path.
type rankKey struct {
	distance int64
	path     string
}

// rankComparator implements utils.Comparator for rankKey.
func rankComparator(a, b interface{}) int {
	ka, kb := a.(rankKey), b.(rankKey)
	if c := utils.Int64Comparator(ka.distance, kb.distance); c != 0 {
		return c
	}
	return strings.Compare(ka.path, kb.path)
}

// Rank builds a Report from a snapshot of s.
//
// Complexity: O(n log n) for n unique walks.
func (s *Set) Rank() Report {
	return RankEntries(s.Entries())
}

// RankEntries ranks arbitrary entries. Entries with identical paths collapse
// into one (the later one wins), so raw trial outcomes can be ranked directly.
func RankEntries(entries []Entry) Report {
	tree := redblacktree.NewWith(rankComparator)
	byPath := make(map[string]rankKey, len(entries))
	for _, e := range entries {
		k := rankKey{distance: e.Distance, path: strings.Join(e.Path, keySep)}
		if prev, ok := byPath[k.path]; ok {
			tree.Remove(prev)
		}
		byPath[k.path] = k
		tree.Put(k, e)
	}

	rep := Report{
		Count: tree.Size(),
		All:   make([]Entry, 0, tree.Size()),
	}
	it := tree.Iterator()
	for it.Next() {
		rep.All = append(rep.All, it.Value().(Entry))
	}
	if rep.Count == 0 {
		return rep
	}

	best := rep.All[0]
	rep.Best = &best
	for _, e := range rep.All[1:] {
		if e.Distance != best.Distance {
			break
		}
		rep.Equivalents = append(rep.Equivalents, e)
	}

	return rep
}
