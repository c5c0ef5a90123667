package dafsa

import (
	"sort"
	"strconv"
	"strings"

	"github.com/dpseq/dafsa-privacy/event"
)

// Automaton is a minimal DAFSA: dense int state ids 0..NumStates()-1,
// a unique root (always id 0), and deterministic per-label transitions.
type Automaton struct {
	root   int
	trans  []map[string]int // trans[state][activity] = target state
	final  []bool           // final[state] = some sequence ends exactly here
}

// trieNode is the intermediate, pre-minimization representation.
type trieNode struct {
	children map[string]*trieNode
	final    bool
}

func newTrieNode() *trieNode {
	return &trieNode{children: map[string]*trieNode{}}
}

// Build constructs the minimal DAFSA over sequences. Every sequence must
// be non-empty (callers are expected to have already prefixed with
// event.StartActivity). Returns event.ErrStructuralError if the
// resulting automaton does not have exactly one root.
func Build(sequences []event.Sequence) (*Automaton, error) {
	root := newTrieNode()
	for _, seq := range sequences {
		cur := root
		for _, act := range seq.Activities {
			next, ok := cur.children[act]
			if !ok {
				next = newTrieNode()
				cur.children[act] = next
			}
			cur = next
		}
		cur.final = true
	}

	var (
		classOf     = map[*trieNode]int{}
		registry    = map[string]int{}
		transByID   = [][]labelTarget{}
		finalByID   = []bool{}
		nextClassID = 0
	)

	var assign func(n *trieNode) int
	assign = func(n *trieNode) int {
		if id, ok := classOf[n]; ok {
			return id
		}
		labels := make([]string, 0, len(n.children))
		for label := range n.children {
			labels = append(labels, label)
		}
		sort.Strings(labels)

		targets := make([]labelTarget, len(labels))
		var sb strings.Builder
		if n.final {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
		for i, label := range labels {
			childID := assign(n.children[label])
			targets[i] = labelTarget{label: label, target: childID}
			sb.WriteString(label)
			sb.WriteByte(0)
			sb.WriteString(strconv.Itoa(childID))
			sb.WriteByte(0)
		}

		key := sb.String()
		if existing, ok := registry[key]; ok {
			classOf[n] = existing
			return existing
		}

		id := nextClassID
		nextClassID++
		registry[key] = id
		classOf[n] = id
		transByID = append(transByID, targets)
		finalByID = append(finalByID, n.final)
		return id
	}
	rootClassID := assign(root)

	// Renumber classes 0..|V|-1 via a label-ordered BFS from the root so
	// Root() is always state 0 and numbering is deterministic.
	order := []int{rootClassID}
	visited := map[int]bool{rootClassID: true}
	for i := 0; i < len(order); i++ {
		id := order[i]
		for _, lt := range transByID[id] {
			if !visited[lt.target] {
				visited[lt.target] = true
				order = append(order, lt.target)
			}
		}
	}
	remap := make(map[int]int, len(order))
	for newID, oldID := range order {
		remap[oldID] = newID
	}

	a := &Automaton{
		trans: make([]map[string]int, len(order)),
		final: make([]bool, len(order)),
	}
	indegree := make([]int, len(order))
	for oldID, newID := range remap {
		a.final[newID] = finalByID[oldID]
		m := make(map[string]int, len(transByID[oldID]))
		for _, lt := range transByID[oldID] {
			tgt := remap[lt.target]
			m[lt.label] = tgt
			indegree[tgt]++
		}
		a.trans[newID] = m
	}

	roots := 0
	rootID := 0
	for id, d := range indegree {
		if d == 0 {
			roots++
			rootID = id
		}
	}
	if roots != 1 {
		return nil, wrapf("Build", event.ErrStructuralError, "found %d root candidates, want exactly 1", roots)
	}
	a.root = rootID

	return a, nil
}

type labelTarget struct {
	label  string
	target int
}

// Root returns the unique root state id (always 0).
func (a *Automaton) Root() int { return a.root }

// NumStates returns the dense state count |V|.
func (a *Automaton) NumStates() int { return len(a.trans) }

// Next is the transition oracle: it returns the target state reached
// from state by consuming activity, or event.ErrUnknownTransition if no
// such edge exists. Determinism guarantees at most one candidate.
func (a *Automaton) Next(state int, activity string) (int, error) {
	if state < 0 || state >= len(a.trans) {
		return 0, wrapf("Next", event.ErrUnknownTransition, "state %d out of range", state)
	}
	target, ok := a.trans[state][activity]
	if !ok {
		return 0, wrapf("Next", event.ErrUnknownTransition, "no transition from state %d on %q", state, activity)
	}
	return target, nil
}

// Edges returns every (SrcState, Activity, TgtState) edge, sorted by
// SrcState then Activity, for deterministic DOT rendering and tests.
func (a *Automaton) Edges() []Edge {
	var edges []Edge
	for src, m := range a.trans {
		labels := make([]string, 0, len(m))
		for label := range m {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			edges = append(edges, Edge{Src: src, Activity: label, Tgt: m[label]})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Src != edges[j].Src {
			return edges[i].Src < edges[j].Src
		}
		return edges[i].Activity < edges[j].Activity
	})
	return edges
}

// Edge is one (SrcState, Activity, TgtState) transition.
type Edge struct {
	Src      int
	Activity string
	Tgt      int
}
