// Package pipeline is the single orchestrator that chains automaton
// construction, annotation, risk filtering, budget derivation,
// sampling, and reconstruction into one run whose timestamps and row
// order are reproducible for a fixed seed. The final case-id tokens are
// random version-4 UUIDs that do not come from the seeded PRNG.
//
// Run is the one public entry point, mirroring a single-orchestrator
// contract: resolve the automaton, then thread one PRNG stream and one
// structured logger through every stage in dependency order, wrapping
// and returning the first error a stage reports.
package pipeline
