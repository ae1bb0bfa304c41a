package trie

import "testing"

func TestTrieGetOrCreateChainAndValue(t *testing.T) {
	tr := New[string, int]()
	node := tr.GetOrCreateChain(ROOT, []string{"a", "b", "c"})
	tr.SetValue(node, 42)

	got, ok := tr.Chain(ROOT, []string{"a", "b", "c"})
	if !ok || got != node {
		t.Fatalf("Chain did not find the created path: got=%d ok=%v", got, ok)
	}
	v, ok := tr.Value(node)
	if !ok || v != 42 {
		t.Fatalf("Value(node) = %d, %v; want 42, true", v, ok)
	}

	if _, ok := tr.Chain(ROOT, []string{"a", "x"}); ok {
		t.Errorf("Chain found a path that was never created")
	}
}

func TestTrieSharedPrefixesReuseNodes(t *testing.T) {
	tr := New[string, int]()
	n1 := tr.GetOrCreateChain(ROOT, []string{"a", "b"})
	n2 := tr.GetOrCreateChain(ROOT, []string{"a", "c"})
	shared, _ := tr.Chain(ROOT, []string{"a"})
	other, _ := tr.Chain(shared, []string{"b"})
	if other != n1 {
		t.Errorf("expected shared prefix node to lead to n1")
	}
	if n1 == n2 {
		t.Errorf("diverging chains should not collapse to the same node")
	}
}

func TestNFAFirstOrCreateChildReusesFirstEdge(t *testing.T) {
	nfa := NewNFA[string]()
	n1 := nfa.FirstOrCreateChild(ROOT, "S-", &TransitionCostInfo[string]{Cost: 1, Value: "a"})
	n2 := nfa.FirstOrCreateChild(ROOT, "S-", &TransitionCostInfo[string]{Cost: 2, Value: "b"})
	if n1 != n2 {
		t.Fatalf("FirstOrCreateChild should return the same node for repeat (src,key), got %d and %d", n1, n2)
	}
}

func TestNFALinkParallelEdge(t *testing.T) {
	nfa := NewNFA[string]()
	a := nfa.FirstOrCreateChild(ROOT, "S-", &TransitionCostInfo[string]{Cost: 1, Value: "a"})
	b := nfa.FirstOrCreateChild(ROOT, "T-", &TransitionCostInfo[string]{Cost: 1, Value: "b"})
	nfa.Link(a, b, "-F", &TransitionCostInfo[string]{Cost: 1, Value: "a"})

	nfa.SetTranslation(b, "a")
	nfa.SetTranslation(b, "b")

	front := NewFrontier()
	front = nfa.Advance(front, "S-")
	front = nfa.Advance(front, "-F")
	if _, ok := front[b]; !ok {
		t.Fatalf("expected frontier to reach node %d via the linked edge", b)
	}

	choices := nfa.TranslationsWithCosts(front)
	if _, ok := choices["a"]; !ok {
		t.Errorf("expected translation %q reachable via linked edge", "a")
	}
}

// TestAdvanceConvergenceIsDeterministic exercises the fix for
// Frontier's lack of a natural iteration order: two distinct frontier
// nodes (n1, n2) both have an edge labeled "X" to the same destination.
// Advance must resolve this convergence the same way on every call,
// regardless of Go's randomized map iteration, by always visiting
// frontier nodes in ascending node-id order.
func TestAdvanceConvergenceIsDeterministic(t *testing.T) {
	nfa := NewNFA[string]()
	n1 := nfa.FirstOrCreateChild(ROOT, "A", nil)
	n2 := nfa.FirstOrCreateChild(ROOT, "B", nil)
	if n1 >= n2 {
		t.Fatalf("expected n1 (%d) < n2 (%d) from creation order", n1, n2)
	}
	dst := nfa.FirstOrCreateChild(n1, "X", &TransitionCostInfo[string]{Cost: 1, Value: "v"})
	nfa.Link(n2, dst, "X", &TransitionCostInfo[string]{Cost: 5, Value: "v"})
	nfa.SetTranslation(dst, "v")

	frontier := Frontier{
		n1: Path{{Node: ROOT, Key: "A", Ordinal: 0}},
		n2: Path{{Node: ROOT, Key: "B", Ordinal: 0}},
	}

	for i := 0; i < 20; i++ {
		next := nfa.Advance(frontier, "X")
		path, ok := next[dst]
		if !ok {
			t.Fatalf("iteration %d: expected frontier to reach dst", i)
		}
		if len(path) != 2 || path[len(path)-1].Node != n1 {
			t.Fatalf("iteration %d: expected the retained path to arrive via n1 (%d), got %+v", i, n1, path)
		}
	}
}

func TestUnionFrontierKeepsFirstSeenPath(t *testing.T) {
	a := Frontier{1: Path{{Node: 0, Key: "x", Ordinal: 0}}}
	b := Frontier{1: Path{{Node: 0, Key: "y", Ordinal: 0}}, 2: nil}
	out := UnionFrontier(a, b)
	if len(out) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(out))
	}
	if out[1][0].Key != "x" {
		t.Errorf("expected first-seen path for node 1 to win, got key %q", out[1][0].Key)
	}
}

func TestBuildReverseLookup(t *testing.T) {
	nfa := NewNFA[string]()
	n1 := nfa.FirstOrCreateChain(ROOT, []string{"S-", "-F"}, &TransitionCostInfo[string]{Cost: 1, Value: "abs"})
	nfa.SetTranslation(n1, "abs")

	search := nfa.BuildReverseLookup(8)
	paths := search("abs")
	if len(paths) != 1 {
		t.Fatalf("expected 1 reverse path, got %d", len(paths))
	}
	want := []string{"S-", "-F"}
	if len(paths[0]) != len(want) {
		t.Fatalf("expected path %v, got %v", want, paths[0])
	}
	for i := range want {
		if paths[0][i] != want[i] {
			t.Errorf("path[%d] = %q, want %q", i, paths[0][i], want[i])
		}
	}

	if got := search("nonexistent"); len(got) != 0 {
		t.Errorf("expected no paths for an unknown translation, got %v", got)
	}
}

func TestTranslationsWithCostsPicksMinimum(t *testing.T) {
	nfa := NewNFA[string]()
	cheap := nfa.FirstOrCreateChild(ROOT, "S-", &TransitionCostInfo[string]{Cost: 1, Value: "v"})
	nfa.SetTranslation(cheap, "v")

	expensive := nfa.createChild(ROOT, "T-")
	nfa.Link(ROOT, expensive, "T-", &TransitionCostInfo[string]{Cost: 5, Value: "v"})
	nfa.SetTranslation(expensive, "v")

	frontier := Frontier{cheap: Path{{Node: ROOT, Key: "S-", Ordinal: 0}}, expensive: Path{{Node: ROOT, Key: "T-", Ordinal: 0}}}
	out := nfa.TranslationsWithCosts(frontier)
	if out["v"].Cost != 1 {
		t.Errorf("expected minimum cost 1, got %v", out["v"].Cost)
	}
}
