package sampling

import (
	"testing"

	"github.com/dpseq/dafsa-privacy/budget"
	"github.com/dpseq/dafsa-privacy/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkRows(caseIDs ...string) []budget.Row {
	rows := make([]budget.Row, len(caseIDs))
	for i, cid := range caseIDs {
		rows[i] = budget.Row{CaseID: cid, Activity: "A", SrcState: 0, TgtState: 1, EpsilonT: 0.2}
	}
	return rows
}

func TestSampleRejectsNonPositiveEpsilonD(t *testing.T) {
	_, _, err := Sample(mkRows("1"), 0, rng.New(1))
	require.Error(t, err)
}

func TestSampleCaseAtomicity(t *testing.T) {
	rows := []budget.Row{
		{CaseID: "1", Activity: "A", SrcState: 0, TgtState: 1, EpsilonT: 0.2},
		{CaseID: "1", Activity: "B", SrcState: 1, TgtState: 2, EpsilonT: 0.2},
		{CaseID: "2", Activity: "A", SrcState: 0, TgtState: 1, EpsilonT: 0.2},
	}
	out, _, err := Sample(rows, 0.5, rng.New(7))
	require.NoError(t, err)

	counts := make(map[string]int)
	for _, r := range out {
		counts[r.CaseID]++
	}
	for cid, n := range counts {
		want := 1
		if origin := originCaseID(cid); origin == "1" {
			want = 2
		}
		assert.Equal(t, want, n, "case %s has %d rows, want %d", cid, n, want)
	}
}

func TestSampleDuplicateSuffixIsUnique(t *testing.T) {
	rows := mkRows("1", "1", "1")
	rows[0].Activity, rows[1].Activity, rows[2].Activity = "A", "B", "C"
	out, dup, err := Sample(rows, 5.0, rng.New(3))
	require.NoError(t, err)
	for cid, n := range dup {
		for k := 1; k <= n; k++ {
			found := false
			for _, r := range out {
				if r.CaseID == cid+"_dup"+itoa(k) {
					found = true
				}
			}
			assert.True(t, found, "expected a dup row for %s_dup%d", cid, k)
		}
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := ""
	for n > 0 {
		digits = string(rune('0'+n%10)) + digits
		n /= 10
	}
	return digits
}

func TestSampleNeverEmitsDupZero(t *testing.T) {
	rows := mkRows("only")
	out, _, err := Sample(rows, 50.0, rng.New(42))
	require.NoError(t, err)
	for _, r := range out {
		assert.NotContains(t, r.CaseID, "_dup0")
	}
}
