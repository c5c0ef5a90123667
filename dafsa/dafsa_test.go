package dafsa

import (
	"testing"

	"github.com/dpseq/dafsa-privacy/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(caseID string, acts ...string) event.Sequence {
	return event.Sequence{CaseID: caseID, Activities: append([]string{event.StartActivity}, acts...)}
}

func TestBuildSingletonLog(t *testing.T) {
	a, err := Build([]event.Sequence{seq("1", "A", "B")})
	require.NoError(t, err)
	// root, after START, after A, after B => 4 states.
	assert.Equal(t, 4, a.NumStates())
	assert.Equal(t, 0, a.Root())

	s1, err := a.Next(a.Root(), event.StartActivity)
	require.NoError(t, err)
	s2, err := a.Next(s1, "A")
	require.NoError(t, err)
	s3, err := a.Next(s2, "B")
	require.NoError(t, err)
	assert.NotEqual(t, s1, s2)
	assert.NotEqual(t, s2, s3)
}

func TestBuildSharedSuffixMerges(t *testing.T) {
	// Two cases sharing a common suffix "B" after divergent prefixes
	// should merge into the same state for that suffix.
	a, err := Build([]event.Sequence{
		seq("1", "A", "B"),
		seq("2", "C", "B"),
	})
	require.NoError(t, err)

	root := a.Root()
	s1, err := a.Next(root, event.StartActivity)
	require.NoError(t, err)

	sA, err := a.Next(s1, "A")
	require.NoError(t, err)
	sC, err := a.Next(s1, "C")
	require.NoError(t, err)

	bAfterA, err := a.Next(sA, "B")
	require.NoError(t, err)
	bAfterC, err := a.Next(sC, "B")
	require.NoError(t, err)

	assert.Equal(t, bAfterA, bAfterC, "suffix languages coincide, states must merge")
}

func TestNextUnknownTransition(t *testing.T) {
	a, err := Build([]event.Sequence{seq("1", "A")})
	require.NoError(t, err)
	_, err = a.Next(a.Root(), "nonexistent")
	require.Error(t, err)
	assert.ErrorIs(t, err, event.ErrUnknownTransition)
}

func TestEdgesDeterministicOrder(t *testing.T) {
	a, err := Build([]event.Sequence{seq("1", "A", "B"), seq("2", "A", "C")})
	require.NoError(t, err)
	edges := a.Edges()
	for i := 1; i < len(edges); i++ {
		less := edges[i-1].Src < edges[i].Src ||
			(edges[i-1].Src == edges[i].Src && edges[i-1].Activity <= edges[i].Activity)
		assert.True(t, less)
	}
}

func TestRootHasNoIncomingEdges(t *testing.T) {
	a, err := Build([]event.Sequence{seq("1", "A", "B"), seq("2", "C")})
	require.NoError(t, err)
	for _, e := range a.Edges() {
		assert.NotEqual(t, a.Root(), e.Tgt, "root must have zero in-edges")
	}
}
