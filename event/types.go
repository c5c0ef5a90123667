// Package event defines the input/output data model shared by every stage
// of the anonymization pipeline, and the sentinel errors each stage wraps
// with its own stage/group context.
//
// Errors:
//
//	ErrIOError           - input unreadable.
//	ErrSchemaError        - missing columns or unparseable timestamp.
//	ErrStructuralError    - zero or multiple automaton roots.
//	ErrUnknownTransition  - automaton walk diverged from the log (builder bug).
//	ErrNumericError       - non-finite intermediate value.
package event

import (
	"errors"
	"time"
)

// Sentinel error kinds, one per spec failure mode. Stages wrap these with
// "%w" and attach the stage name plus the CaseID/group under processing;
// callers branch with errors.Is, never string comparison.
var (
	// ErrIOError indicates the input source could not be read.
	ErrIOError = errors.New("event: input unreadable")

	// ErrSchemaError indicates a missing column or an unparseable timestamp.
	ErrSchemaError = errors.New("event: schema violation")

	// ErrStructuralError indicates zero or multiple automaton roots.
	ErrStructuralError = errors.New("event: structural violation")

	// ErrUnknownTransition indicates the automaton walk diverged from the log.
	ErrUnknownTransition = errors.New("event: unknown transition")

	// ErrNumericError indicates a non-finite intermediate value.
	ErrNumericError = errors.New("event: non-finite value")
)

// StartActivity is the synthetic sentinel activity prefixed onto every
// case's sequence before automaton construction and annotation.
const StartActivity = "START"

// Event is one input row: a single activity occurrence within a case.
type Event struct {
	CaseID    string
	Activity  string
	Timestamp time.Time
}

// Sequence is the ordered, START-prefixed list of activities for one case.
type Sequence struct {
	CaseID     string
	Activities []string
}

// Parameters collects the tunable knobs of the pipeline. Zero-value
// Parameters is invalid; use DefaultParameters then override fields, or
// Validate before use.
type Parameters struct {
	// Delta is the privacy margin delta in (0,1); both a risk-filter knob
	// (PK+Delta>=Theta drops the case) and a term in the epsilon_t formula.
	Delta float64 `mapstructure:"delta" yaml:"delta"`

	// Theta is the risk threshold (condition number), default 1.0.
	Theta float64 `mapstructure:"theta" yaml:"theta"`

	// EpsilonD is the frequency-noise budget for per-group case-count perturbation.
	EpsilonD float64 `mapstructure:"epsilon_d" yaml:"epsilon_d"`

	// Seed seeds the single PRNG threaded through every stochastic stage.
	// Seed==0 selects a fixed, documented default seed (see rng.DefaultSeed).
	Seed int64 `mapstructure:"seed" yaml:"seed"`
}

// DefaultParameters returns the documented defaults.
func DefaultParameters() Parameters {
	return Parameters{
		Delta:    0.3,
		Theta:    1.0,
		EpsilonD: 0.5,
		Seed:     0,
	}
}

// Validate checks Parameters against the pipeline's domain constraints.
func (p Parameters) Validate() error {
	if p.Delta <= 0 || p.Delta >= 1 {
		return errorf("Parameters.Validate", ErrSchemaError, "delta %v out of (0,1)", p.Delta)
	}
	if p.Theta <= 0 {
		return errorf("Parameters.Validate", ErrSchemaError, "theta %v must be > 0", p.Theta)
	}
	if p.EpsilonD <= 0 {
		return errorf("Parameters.Validate", ErrSchemaError, "epsilon_d %v must be > 0", p.EpsilonD)
	}
	return nil
}

// Case groups the rows belonging to one CaseID; used by stages that reason
// about case atomicity (risk-drop, duplication/removal).
type Case struct {
	CaseID string
	Events []Event
}

// OutputRow is one row of the final anonymized log, after the final projection.
type OutputRow struct {
	CaseID    string // "Case ID" column, a fresh opaque token
	Activity  string
	Timestamp time.Time
}
