// Package annotate walks each case through the DAFSA to resolve
// SrcState/TgtState, computes the position-dependent RelTime, then the
// per-transition-group NrmRelTime, Prec, and PK (via kde).
//
// Group-wise statistics are each a pure function operating on a group
// (here, a slice of row indices sharing a GroupKey) that returns new
// column values, driven by an outer loop over the sorted group index --
// no mutable global state.
package annotate
