package riskfilter

import (
	"testing"

	"github.com/dpseq/dafsa-privacy/annotate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterDropsRiskyCase(t *testing.T) {
	rows := []annotate.Row{
		{CaseID: "1", Activity: "A", SrcState: 0, TgtState: 1, NrmRelTime: 0.1, Prec: 0.5, PK: 0.2},
		{CaseID: "2", Activity: "A", SrcState: 0, TgtState: 1, NrmRelTime: 0.2, Prec: 0.5, PK: 0.75},
		{CaseID: "3", Activity: "A", SrcState: 0, TgtState: 1, NrmRelTime: 0.3, Prec: 0.5, PK: 0.1},
	}
	out, err := Filter(rows, 0.3, 1.0)
	require.NoError(t, err)

	for _, r := range out {
		assert.NotEqual(t, "2", r.CaseID, "risky case must be dropped")
	}
	assert.Len(t, out, 2)
}

func TestFilterEmptyWhenAllRisky(t *testing.T) {
	rows := []annotate.Row{
		{CaseID: "1", Activity: "A", PK: 0.9},
		{CaseID: "2", Activity: "A", PK: 0.95},
	}
	out, err := Filter(rows, 0.3, 1.0)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFilterKeepsCaseAtomicity(t *testing.T) {
	rows := []annotate.Row{
		{CaseID: "1", Activity: "A", SrcState: 0, TgtState: 1, PK: 0.9},
		{CaseID: "1", Activity: "B", SrcState: 1, TgtState: 2, PK: 0.1},
	}
	out, err := Filter(rows, 0.3, 1.0)
	require.NoError(t, err)
	assert.Empty(t, out, "any risky row in a case drops the whole case")
}
