package reconstruct

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/dpseq/dafsa-privacy/event"
)

// Anonymize builds a fresh CaseID -> UUIDv4 bijection (one token per
// distinct original case id, duplicates included -- a duplicate and its
// origin get distinct tokens, since they are distinct cases from here
// on), floors each row's timestamp to whole seconds, and sorts the
// result ascending by timestamp.
func Anonymize(rows []Row) []event.OutputRow {
	tokens := make(map[string]string)
	out := make([]event.OutputRow, len(rows))
	for i, r := range rows {
		token, ok := tokens[r.CaseID]
		if !ok {
			token = uuid.NewString()
			tokens[r.CaseID] = token
		}
		// Integer division floors toward zero; correct here since
		// Compress's envelope rescale keeps AnonTimestamp non-negative.
		out[i] = event.OutputRow{
			CaseID:    token,
			Activity:  r.Activity,
			Timestamp: time.Unix(r.AnonTimestamp/int64(time.Second), 0).UTC(),
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out
}
