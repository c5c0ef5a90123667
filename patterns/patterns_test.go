package patterns

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpseq/dafsa-privacy/event"
)

func mkCase(caseID string, acts ...string) event.Case {
	c := event.Case{CaseID: caseID}
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, a := range acts {
		c.Events = append(c.Events, event.Event{CaseID: caseID, Activity: a, Timestamp: base.Add(time.Duration(i) * time.Minute)})
	}
	return c
}

func TestMostCommonRanksByDescendingCount(t *testing.T) {
	cases := []event.Case{
		mkCase("1", "A", "B"),
		mkCase("2", "A", "B"),
		mkCase("3", "A", "C"),
	}
	out := MostCommon(cases)
	require.Len(t, out, 2)
	assert.Equal(t, "AB", out[0].Sequence)
	assert.Equal(t, 2, out[0].Count)
	assert.Equal(t, "AC", out[1].Sequence)
	assert.Equal(t, 1, out[1].Count)
}

func TestMostCommonEmptyLog(t *testing.T) {
	assert.Empty(t, MostCommon(nil))
}
