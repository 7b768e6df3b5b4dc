package reconcile

import "sort"

// Diff computes the changeset between a declared and an observed resource
// set. The three result sets are disjoint by key: a resource lands in
// exactly one of ToCreate, ToRemove, or Matched.
//
// Results are sorted by key for deterministic log output only; callers must
// not rely on ordering for correctness.
func Diff[T Keyed](declared, observed []T) *Changeset[T] {
	declaredIdx := buildIndex(declared)
	observedIdx := buildIndex(observed)

	cs := &Changeset[T]{}

	for _, d := range declared {
		if o, ok := observedIdx[d.Key()]; ok {
			cs.Matched = append(cs.Matched, Pair[T]{Declared: d, Observed: o})
		} else {
			cs.ToCreate = append(cs.ToCreate, d)
		}
	}
	for _, o := range observed {
		if _, ok := declaredIdx[o.Key()]; !ok {
			cs.ToRemove = append(cs.ToRemove, o)
		}
	}

	sort.Slice(cs.ToCreate, func(i, j int) bool { return cs.ToCreate[i].Key() < cs.ToCreate[j].Key() })
	sort.Slice(cs.ToRemove, func(i, j int) bool { return cs.ToRemove[i].Key() < cs.ToRemove[j].Key() })
	sort.Slice(cs.Matched, func(i, j int) bool {
		return cs.Matched[i].Declared.Key() < cs.Matched[j].Declared.Key()
	})

	return cs
}

// buildIndex maps each resource by its key. Sets are expected to be
// internally unique by identity; a duplicate key keeps the last entry.
func buildIndex[T Keyed](items []T) map[string]T {
	idx := make(map[string]T, len(items))
	for _, item := range items {
		idx[item.Key()] = item
	}
	return idx
}
