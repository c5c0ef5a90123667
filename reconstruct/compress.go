package reconstruct

// Compress linearly rescales AnonTimestamp into the [tMin, tMax]
// envelope of the original (filtered) log, preserving relative
// spacing between events. If the reconstructed span collapses to a
// single instant (AMax==AMin), timestamps pass through unscaled.
func Compress(rows []Row, tMin, tMax int64) []Row {
	if len(rows) == 0 {
		return rows
	}

	aMin, aMax := rows[0].AnonTimestamp, rows[0].AnonTimestamp
	for _, r := range rows {
		if r.AnonTimestamp < aMin {
			aMin = r.AnonTimestamp
		}
		if r.AnonTimestamp > aMax {
			aMax = r.AnonTimestamp
		}
	}

	out := make([]Row, len(rows))
	if aMax == aMin {
		copy(out, rows)
		return out
	}

	factor := float64(tMax-tMin) / float64(aMax-aMin)
	for i, r := range rows {
		out[i] = r
		out[i].AnonTimestamp = tMin + int64(factor*float64(r.AnonTimestamp-aMin))
	}
	return out
}
