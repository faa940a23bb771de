package wcfg

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/graph/traverse"
)

// symbolGraph indexes Symbol values to gonum's int64 node IDs, letting
// the left-corner analysis reuse gonum's unweighted graph algorithms
// (SCC, BFS reachability): gonum's graph package only carries float64
// edge weights, so it cannot serve the semiring-generic Lehmann closure
// in closure.go, but the left-corner graph here is unweighted by
// construction and is exactly gonum's niche.
type symbolGraph struct {
	ids  map[Symbol]int64
	syms []Symbol
	g    *simple.DirectedGraph
}

func newSymbolGraph() *symbolGraph {
	return &symbolGraph{ids: map[Symbol]int64{}, g: simple.NewDirectedGraph()}
}

func (sg *symbolGraph) id(s Symbol) int64 {
	if id, ok := sg.ids[s]; ok {
		return id
	}
	id := int64(len(sg.syms))
	sg.ids[s] = id
	sg.syms = append(sg.syms, s)
	sg.g.AddNode(simple.Node(id))
	return id
}

func (sg *symbolGraph) addEdge(from, to Symbol) {
	f, t := sg.id(from), sg.id(to)
	if sg.g.HasEdgeFromTo(f, t) {
		return
	}
	sg.g.SetEdge(sg.g.NewEdge(simple.Node(f), simple.Node(t)))
}

// leftCornerGraphFull builds the left-corner graph over the given symbol
// universe: an edge head->body[0] for every rule with a non-empty body,
// pre-registering every symbol as a node so isolated symbols still get
// an ID.
func leftCornerGraphFull(universe []Symbol, rules []*Rule) *symbolGraph {
	sg := newSymbolGraph()
	for _, s := range universe {
		sg.id(s)
	}
	for _, r := range rules {
		if len(r.Body) == 0 {
			continue
		}
		sg.addEdge(r.Head, r.Body[0])
	}
	return sg
}

// FindLeftRecursiveRules returns every rule that lies on a left-recursion
// cycle, via gonum's Tarjan SCC: a rule head -> body[0]... is
// left-recursive exactly when head and body[0] land in the same strongly
// connected component of the left-corner graph (a component of size one
// still counts when head == body[0], i.e. direct self-recursion).
func (g *Grammar) FindLeftRecursiveRules() map[*Rule]bool {
	sg := leftCornerGraphFull(g.allSymbols(), g.Rules)
	sccs := topo.TarjanSCC(sg.g)

	component := make(map[int64]int, len(sg.syms))
	for idx, scc := range sccs {
		for _, n := range scc {
			component[n.ID()] = idx
		}
	}

	lr := map[*Rule]bool{}
	for _, r := range g.Rules {
		if len(r.Body) == 0 {
			continue
		}
		if component[sg.id(r.Head)] == component[sg.id(r.Body[0])] {
			lr[r] = true
		}
	}
	return lr
}

// IsLeftRecursive reports whether the grammar has any left-recursive
// rule.
func (g *Grammar) IsLeftRecursive() bool {
	return len(g.FindLeftRecursiveRules()) != 0
}

// SufficientXs computes a set of left-corner symbols sufficient for
// LeftCornerGeneralized to eliminate the given rule set Ps entirely:
// (V ∪ {heads of rules outside Ps}) ∩ {left corners of rules in Ps}.
func (g *Grammar) SufficientXs(ps map[*Rule]bool) map[Symbol]bool {
	candidateHeads := map[Symbol]bool{}
	for _, r := range g.Rules {
		if !ps[r] {
			candidateHeads[r.Head] = true
		}
	}
	leftCorners := map[Symbol]bool{}
	for r := range ps {
		if len(r.Body) > 0 {
			leftCorners[r.Body[0]] = true
		}
	}

	out := map[Symbol]bool{}
	for t := range g.V {
		if leftCorners[t] {
			out[t] = true
		}
	}
	for s := range candidateHeads {
		if leftCorners[s] {
			out[s] = true
		}
	}
	return out
}

// ElimLeftRecursion eliminates left recursion via the generalized
// left-corner transformation with Ps = every left-recursive rule and
// Xs = SufficientXs(Ps).
func (g *Grammar) ElimLeftRecursion(opts ...GLCTOption) *Grammar {
	ps := g.FindLeftRecursiveRules()
	xs := g.SufficientXs(ps)
	return g.LeftCornerGeneralized(xs, ps, opts...)
}

// transitiveClosureReversed returns, for every den in universe, the set
// of num reachable by chaining body[0]->head edges of rules starting from
// den (i.e. the reflexive-transitive closure of the *reversed*
// left-corner graph restricted to rules), via gonum's breadth-first
// traversal. Backs GLCT's num-given-den lookup.
func transitiveClosureReversed(universe []Symbol, rules []*Rule) map[Symbol]map[Symbol]bool {
	sg := newSymbolGraph()
	for _, s := range universe {
		sg.id(s)
	}
	for _, r := range rules {
		if len(r.Body) == 0 {
			continue
		}
		sg.addEdge(r.Body[0], r.Head)
	}

	out := make(map[Symbol]map[Symbol]bool, len(universe))
	for _, den := range universe {
		reach := map[Symbol]bool{den: true}
		var bf traverse.BreadthFirst
		bf.Walk(sg.g, simple.Node(sg.id(den)), func(n graph.Node, _ int) bool {
			reach[sg.syms[n.ID()]] = true
			return false
		})
		out[den] = reach
	}
	return out
}
