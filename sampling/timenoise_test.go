package sampling

import (
	"testing"

	"github.com/dpseq/dafsa-privacy/budget"
	"github.com/dpseq/dafsa-privacy/rng"
	"github.com/stretchr/testify/assert"
)

func TestInjectTimeNoisePassthroughWhenBudgetZero(t *testing.T) {
	rows := []budget.Row{{CaseID: "1", RelTime: 5.0, EpsilonT: 0}}
	out := InjectTimeNoise(rows, DuplicationCounter{}, rng.New(1))
	assert.Equal(t, 5.0, out[0].NoisyRelTime)
}

func TestInjectTimeNoiseAttenuatesByDuplicateCount(t *testing.T) {
	rows := []budget.Row{
		{CaseID: "1", RelTime: 5.0, EpsilonT: 2.0},
		{CaseID: "1_dup1", RelTime: 5.0, EpsilonT: 2.0},
	}
	dup := DuplicationCounter{"1": 1}

	a := InjectTimeNoise(rows, dup, rng.New(9))
	b := InjectTimeNoise(rows, dup, rng.New(9))
	// same seed, same inputs => identical draws for both rows
	assert.Equal(t, a[0].NoisyRelTime, b[0].NoisyRelTime)
	assert.Equal(t, a[1].NoisyRelTime, b[1].NoisyRelTime)

	// D = 2 copies, so epsilon_t 2.0 becomes 1.0 and both rows draw with
	// Laplace scale 1/1.0 = 1.0 (not the unattenuated 1/2.0).
	src := rng.New(9)
	want0 := 5.0 + src.Laplace(1.0)
	want1 := 5.0 + src.Laplace(1.0)
	assert.Equal(t, want0, a[0].NoisyRelTime)
	assert.Equal(t, want1, a[1].NoisyRelTime)
}

func TestOriginCaseIDStripsSuffix(t *testing.T) {
	assert.Equal(t, "42", originCaseID("42_dup3"))
	assert.Equal(t, "42", originCaseID("42"))
}
