package reconstruct

import (
	"github.com/dpseq/dafsa-privacy/event"
	"github.com/dpseq/dafsa-privacy/sampling"
)

// Run chains Reconstruct, Compress, and Anonymize: reconstructs
// absolute timestamps from noisy relative times, compresses them back
// into the original [tMin, tMax] envelope, and anonymizes case ids for
// the final output table.
func Run(rows []sampling.Row, tMin, tMax int64) []event.OutputRow {
	walked := Reconstruct(rows)
	compressed := Compress(walked, tMin, tMax)
	return Anonymize(compressed)
}
