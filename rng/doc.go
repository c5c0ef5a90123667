// Package rng centralizes deterministic random generation for every
// stochastic step of the pipeline: per-group frequency noise and case
// sampling, per-row time noise, and (optionally) any deterministic UUID
// generation a caller layers on top.
//
// Goals:
//   - Determinism: same seed => identical results across platforms.
//   - Encapsulation: a single Source; no time-based sources hidden anywhere.
//   - Consumption order: callers MUST draw in a fixed, documented order
//     (group-count noise in canonical group order, then duplication/removal
//     sampling within each group, then per-row time noise in row order) for
//     the pipeline as a whole to be reproducible; Source itself is just the
//     single-threaded tap, not an order enforcer.
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. A Source must not be shared across
//     goroutines; the pipeline is single-threaded by design.
package rng
