// Package synthlog generates a synthetic event log by random-walking
// an already-annotated automaton: at each step it samples a transition
// uniformly from the candidates leaving the current state, then draws
// an inter-event gap from that transition's empirical (mean, stddev)
// of RelTime. Useful for producing disposable test fixtures that carry
// the same transition-time statistics as a real annotated log, without
// ever exposing the real log itself.
package synthlog
