// Package dotrender is the optional, purely informational external
// collaborator that renders a built automaton as Graphviz DOT text
// (and, via the system "dot" binary, a PNG). No pipeline stage
// consumes its output; it exists for humans inspecting the automaton.
package dotrender
