// Package dafsa builds a minimal deterministic acyclic finite-state
// automaton over a multiset of START-prefixed activity sequences and
// exposes the transition oracle every later stage walks.
//
// Construction: a trie is built over the sequences, then minimized
// bottom-up by merging nodes whose (finality, sorted label->child-class
// signature) are identical -- the standard tree-to-DAWG reduction. Two
// sequences land in the same state exactly when their reversed suffix
// languages coincide. States are then renumbered 0..|V|-1 by a
// label-ordered BFS from the root, so Root() is always state 0.
package dafsa
