package dotrender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpseq/dafsa-privacy/dafsa"
	"github.com/dpseq/dafsa-privacy/event"
)

func TestDOTRendersEveryStateAndEdge(t *testing.T) {
	a, err := dafsa.Build([]event.Sequence{
		{CaseID: "1", Activities: []string{event.StartActivity, "A", "B"}},
	})
	require.NoError(t, err)

	out, err := DOT(a)
	require.NoError(t, err)
	assert.Contains(t, out, "digraph")
	// State ids are bare integers, which DOT accepts as node ids unquoted.
	for state := 0; state < a.NumStates(); state++ {
		assert.Regexp(t, `(?m)^\s*`+itoa(state)+`\s*\[`, out)
	}
	for _, e := range a.Edges() {
		assert.Regexp(t, `(?m)^\s*`+itoa(e.Src)+`\s*->\s*`+itoa(e.Tgt)+`\b`, out)
		assert.Contains(t, out, "\""+e.Activity+"\"")
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
