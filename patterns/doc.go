// Package patterns ranks a log's distinct case activity sequences by
// how often each occurs, the frequency-of-behavior view used to sanity
// check that anonymization preserved the dominant process patterns.
package patterns
