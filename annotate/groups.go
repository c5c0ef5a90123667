package annotate

import "sort"

// GroupIndices partitions row indices by their GroupKey. The returned
// map has no iteration-order guarantee; use SortedKeys for a
// deterministic traversal order.
func GroupIndices(rows []Row) map[GroupKey][]int {
	groups := make(map[GroupKey][]int)
	for i, r := range rows {
		k := keyOf(r)
		groups[k] = append(groups[k], i)
	}
	return groups
}

// SortedKeys returns the keys of groups sorted by (SrcState, Activity,
// TgtState) as strings, the canonical order that fixes RNG consumption
// in the sampling stage.
func SortedKeys(groups map[GroupKey][]int) []GroupKey {
	keys := make([]GroupKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].canonical() < keys[j].canonical()
	})
	return keys
}

// normalizeGroup sets NrmRelTime for every row in indices: min==max
// gives 0 for every member; otherwise each row is min-max scaled.
func normalizeGroup(rows []Row, indices []int) {
	rMin, rMax := rows[indices[0]].RelTime, rows[indices[0]].RelTime
	for _, i := range indices {
		if rows[i].RelTime < rMin {
			rMin = rows[i].RelTime
		}
		if rows[i].RelTime > rMax {
			rMax = rows[i].RelTime
		}
	}
	if rMax == rMin {
		for _, i := range indices {
			rows[i].NrmRelTime = 0.0
		}
		return
	}
	span := rMax - rMin
	for _, i := range indices {
		rows[i].NrmRelTime = (rows[i].RelTime - rMin) / span
	}
}

// precisionGroup sets Prec for every row in indices: degenerate groups
// (R==0) get the 0.01 fallback; otherwise the first-in-group row
// (RelTime==rMin) gets a wide (1.0) window and follow-up rows a tight
// (10/60) window, both divided by R.
func precisionGroup(rows []Row, indices []int) {
	rMin, rMax := rows[indices[0]].RelTime, rows[indices[0]].RelTime
	for _, i := range indices {
		if rows[i].RelTime < rMin {
			rMin = rows[i].RelTime
		}
		if rows[i].RelTime > rMax {
			rMax = rows[i].RelTime
		}
	}
	r := rMax - rMin
	if r == 0 {
		for _, i := range indices {
			rows[i].Prec = 0.01
		}
		return
	}
	for _, i := range indices {
		precisionReal := 10.0 / 60.0
		if rows[i].RelTime == rMin {
			precisionReal = 1.0
		}
		rows[i].Prec = precisionReal / r
	}
}
