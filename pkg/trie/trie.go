// Package trie implements the arena-allocated deterministic trie and
// nondeterministic trie (NFA) used to index outline variants.
//
// spec.md §4.2 describes the exact operation set; the cost-bearing
// NFA implementation it is grounded on
// (plover_writeouts/lib/util/Trie.py, referenced from
// lookup/build_trie.py) was not present in the retrieved
// original_source (filtered by the retrieval pack's size cap), so
// spec.md §4.2 is the authoritative source for the cost/frontier
// semantics implemented here. The simpler, cost-less
// plover_writeouts/lib/Trie.py and lib/DagTrie.py (both present)
// ground the deterministic-trie half (Root/child/chain/freeze shape).
package trie

import "sort"

// ROOT is the index of the arena root node in every Trie and
// NondeterministicTrie. Node 0 is never reclaimed.
const ROOT = 0

// --- Deterministic trie -----------------------------------------------

// Trie is an arena-allocated deterministic trie from key sequences of
// type K to values of type V. Keys are interned per node via a plain
// Go map; the interning is local to each Trie, as spec.md §9 requires.
type Trie[K comparable, V any] struct {
	children []map[K]int
	values   map[int]V
}

// New constructs an empty Trie with just the root node.
func New[K comparable, V any]() *Trie[K, V] {
	return &Trie[K, V]{children: []map[K]int{make(map[K]int)}}
}

func (t *Trie[K, V]) newNode() int {
	t.children = append(t.children, make(map[K]int))
	return len(t.children) - 1
}

// GetOrCreateChild returns the existing child of src for key, or
// creates one.
func (t *Trie[K, V]) GetOrCreateChild(src int, key K) int {
	if dst, ok := t.children[src][key]; ok {
		return dst
	}
	dst := t.newNode()
	t.children[src][key] = dst
	return dst
}

// GetOrCreateChain walks (creating as needed) a chain of keys from src.
func (t *Trie[K, V]) GetOrCreateChain(src int, keys []K) int {
	cur := src
	for _, k := range keys {
		cur = t.GetOrCreateChild(cur, k)
	}
	return cur
}

// Child returns the existing child of src for key, if any.
func (t *Trie[K, V]) Child(src int, key K) (int, bool) {
	dst, ok := t.children[src][key]
	return dst, ok
}

// Chain walks an existing chain of keys from src, failing as soon as
// any link is missing.
func (t *Trie[K, V]) Chain(src int, keys []K) (int, bool) {
	cur := src
	for _, k := range keys {
		dst, ok := t.children[cur][k]
		if !ok {
			return 0, false
		}
		cur = dst
	}
	return cur, true
}

// SetValue assigns a terminal value to node.
func (t *Trie[K, V]) SetValue(node int, v V) {
	if t.values == nil {
		t.values = make(map[int]V)
	}
	t.values[node] = v
}

// Value returns the terminal value at node, if any.
func (t *Trie[K, V]) Value(node int) (V, bool) {
	v, ok := t.values[node]
	return v, ok
}

// Freeze returns a read-only view of the trie. Go's type system does
// not enforce the immutability itself (no copy is made, matching
// freeze() being a cheap view in the original); callers are expected
// to stop mutating the Trie afterwards.
func (t *Trie[K, V]) Freeze() *Trie[K, V] { return t }

// --- Nondeterministic trie (NFA) ---------------------------------------

// Transition identifies a single NFA edge: the source node, the key
// it is labeled with, and an ordinal distinguishing parallel edges
// sharing the same (src, key).
type Transition struct {
	Node    int
	Key     string
	Ordinal int
}

// HasKey reports whether t is labeled with key.
func (t Transition) HasKey(key string) bool { return t.Key == key }

// Path is the sequence of transitions taken from ROOT to reach a
// frontier node.
type Path []Transition

// TransitionCostInfo attaches a cost to a newly-created or newly-linked
// edge, keyed eventually by (transition, value).
type TransitionCostInfo[V comparable] struct {
	Cost  float64
	Value V
}

type costKey[V comparable] struct {
	t Transition
	v V
}

// NondeterministicTrie is the NFA substrate used by the entry builder
// and lookup driver. Each node maps a key to an ordered list of
// destination nodes (parallel edges); a transition-cost map records,
// per (transition, value), the cost of using that edge toward that
// value.
type NondeterministicTrie[V comparable] struct {
	children  []map[string][]int
	costs     map[costKey[V]]float64
	terminals []map[V]struct{}
}

// NewNFA constructs an empty NondeterministicTrie with just the root.
func NewNFA[V comparable]() *NondeterministicTrie[V] {
	return &NondeterministicTrie[V]{
		children:  []map[string][]int{make(map[string][]int)},
		costs:     make(map[costKey[V]]float64),
		terminals: []map[V]struct{}{nil},
	}
}

func (t *NondeterministicTrie[V]) newNode() int {
	t.children = append(t.children, make(map[string][]int))
	t.terminals = append(t.terminals, nil)
	return len(t.children) - 1
}

func (t *NondeterministicTrie[V]) setCost(tr Transition, info *TransitionCostInfo[V]) {
	if info == nil {
		return
	}
	t.costs[costKey[V]{tr, info.Value}] = info.Cost
}

// FirstOrCreateChild returns the first existing child of src for key
// if any, else creates one. When info is non-nil, the cost is
// recorded against the (possibly newly created) edge regardless of
// whether it pre-existed, so that the same physical edge can serve
// multiple translations at different costs.
func (t *NondeterministicTrie[V]) FirstOrCreateChild(src int, key string, info *TransitionCostInfo[V]) int {
	dsts := t.children[src][key]
	var dst int
	if len(dsts) > 0 {
		dst = dsts[0]
	} else {
		dst = t.newNode()
		t.children[src][key] = append(dsts, dst)
	}
	t.setCost(Transition{src, key, 0}, info)
	return dst
}

// FirstOrCreateChain walks FirstOrCreateChild across a chain of keys.
// Only the terminal edge carries the supplied cost, matching
// link_chain's convention so a multi-key chord's cost is charged once,
// not once per key.
func (t *NondeterministicTrie[V]) FirstOrCreateChain(src int, keys []string, info *TransitionCostInfo[V]) int {
	cur := src
	for i, k := range keys {
		if i == len(keys)-1 {
			cur = t.FirstOrCreateChild(cur, k, info)
		} else {
			cur = t.FirstOrCreateChild(cur, k, nil)
		}
	}
	return cur
}

// createChild always creates a fresh node and appends a new parallel
// edge, used internally by LinkChain for intermediate nodes so that a
// linked alternate path never silently merges with an unrelated one.
func (t *NondeterministicTrie[V]) createChild(src int, key string) int {
	dst := t.newNode()
	t.children[src][key] = append(t.children[src][key], dst)
	return dst
}

// Link appends a parallel edge from src to the existing node dst,
// labeled key, recording cost keyed by (transition, value). If an
// edge to dst already exists for (src, key), its ordinal is reused so
// the new value's cost can be attached without duplicating the edge.
func (t *NondeterministicTrie[V]) Link(src, dst int, key string, info *TransitionCostInfo[V]) {
	dsts := t.children[src][key]
	ordinal := -1
	for i, d := range dsts {
		if d == dst {
			ordinal = i
			break
		}
	}
	if ordinal == -1 {
		ordinal = len(dsts)
		t.children[src][key] = append(dsts, dst)
	}
	t.setCost(Transition{src, key, ordinal}, info)
}

// LinkChain connects src to the existing node dst via a chain of
// keys, creating fresh intermediate nodes for all but the last key and
// linking the last key directly onto dst. Only the terminal edge
// carries the supplied cost.
func (t *NondeterministicTrie[V]) LinkChain(src, dst int, keys []string, info *TransitionCostInfo[V]) {
	if len(keys) == 0 {
		return
	}
	cur := src
	for _, k := range keys[:len(keys)-1] {
		cur = t.createChild(cur, k)
	}
	t.Link(cur, dst, keys[len(keys)-1], info)
}

// SetTranslation marks node as a terminal for value.
func (t *NondeterministicTrie[V]) SetTranslation(node int, value V) {
	if t.terminals[node] == nil {
		t.terminals[node] = make(map[V]struct{})
	}
	t.terminals[node][value] = struct{}{}
}

// Frontier maps a reachable node to the path that reached it. When
// two paths converge on the same node, one path is retained rather
// than both, matching the tie-break rule in spec.md §5 and the
// documented simplification in spec.md §9 ("Frontier dedup"): a
// stricter implementation would retain whichever path is cheapest for
// the eventual translation, but cost is only defined once a value is
// known at the terminal, so a purely structural dedup is what the
// source (and this port) performs.
//
// Go maps have no iteration order, so Frontier itself cannot supply
// the "first-encountered" ordering the original's insertion-ordered
// dict gives for free (spec.md §5's "lookup is deterministic"
// guarantee requires one). Advance and TranslationsWithCosts below
// restore determinism explicitly by visiting frontier nodes in
// ascending node-id order before resolving any convergence or cost
// tie, rather than relying on range order over the map.
type Frontier map[int]Path

// sortedNodes returns frontier's node ids in ascending order, giving
// every caller that walks a Frontier a fixed, reproducible visitation
// order in place of Go's randomized map iteration.
func sortedNodes(frontier Frontier) []int {
	nodes := make([]int, 0, len(frontier))
	for node := range frontier {
		nodes = append(nodes, node)
	}
	sort.Ints(nodes)
	return nodes
}

// NewFrontier returns the initial frontier: {ROOT: empty path}.
func NewFrontier() Frontier {
	return Frontier{ROOT: nil}
}

// Advance expands every frontier entry by a single key. Frontier nodes
// are visited in ascending node-id order (see sortedNodes) so that
// when two source nodes converge on the same destination, which path
// is kept is fixed and reproducible rather than dependent on Go's
// randomized map iteration.
func (t *NondeterministicTrie[V]) Advance(frontier Frontier, key string) Frontier {
	next := make(Frontier)
	for _, node := range sortedNodes(frontier) {
		path := frontier[node]
		for ordinal, dst := range t.children[node][key] {
			tr := Transition{node, key, ordinal}
			if _, seen := next[dst]; seen {
				continue
			}
			newPath := make(Path, len(path), len(path)+1)
			copy(newPath, path)
			newPath = append(newPath, tr)
			next[dst] = newPath
		}
	}
	return next
}

// AdvanceChain applies Advance for each key in sequence, short-circuiting
// once the frontier empties.
func (t *NondeterministicTrie[V]) AdvanceChain(frontier Frontier, keys []string) Frontier {
	cur := frontier
	for _, k := range keys {
		if len(cur) == 0 {
			return cur
		}
		cur = t.Advance(cur, k)
	}
	return cur
}

// UnionFrontier returns the set-union of two frontiers, keeping whichever
// path was already recorded for a node present in both (first-seen
// wins, matching the dedup policy documented on Frontier).
func UnionFrontier(a, b Frontier) Frontier {
	out := make(Frontier, len(a)+len(b))
	for node, path := range a {
		out[node] = path
	}
	for node, path := range b {
		if _, ok := out[node]; !ok {
			out[node] = path
		}
	}
	return out
}

// TransitionHasKey reports whether tr is labeled with key.
func TransitionHasKey(tr Transition, key string) bool { return tr.HasKey(key) }

// CostPath pairs a summed cost with the path that produced it.
type CostPath struct {
	Cost float64
	Path Path
}

// BuildReverseLookup derives a search function enumerating every key
// path from ROOT to a node terminal for a given value, depth-capped at
// maxDepth to guard against runaway enumeration. Grounded on the
// generic reversal spec.md §4.7 describes ("The NFA can be reversed
// once and queried by translation"); the cost-bearing Python
// counterpart (Trie.build_reverse_lookup) was not present in the
// retrieved source, so this is built directly against spec.md's NFA
// operation set.
func (t *NondeterministicTrie[V]) BuildReverseLookup(maxDepth int) func(v V) [][]string {
	type redge struct {
		key string
		src int
	}
	reverse := make([][]redge, len(t.children))
	for src, edges := range t.children {
		for key, dsts := range edges {
			for _, dst := range dsts {
				reverse[dst] = append(reverse[dst], redge{key, src})
			}
		}
	}

	return func(v V) [][]string {
		var results [][]string

		var walk func(node int, suffix []string, depth int)
		walk = func(node int, suffix []string, depth int) {
			if node == ROOT {
				out := make([]string, len(suffix))
				copy(out, suffix)
				results = append(results, out)
				return
			}
			if depth >= maxDepth {
				return
			}
			for _, e := range reverse[node] {
				walk(e.src, append([]string{e.key}, suffix...), depth+1)
			}
		}

		for node, terms := range t.terminals {
			if _, ok := terms[v]; ok {
				walk(node, nil, 0)
			}
		}
		return results
	}
}

// TranslationsWithCosts sums, for every translation reachable from any
// frontier node, the per-value transition costs along that node's
// recorded path, keeping the minimum across frontier nodes that share
// a translation. Frontier nodes are visited in ascending node-id order
// (see sortedNodes) so that a strict cost tie between two frontier
// nodes resolves to a fixed path rather than whichever Go's randomized
// map iteration happened to visit first.
func (t *NondeterministicTrie[V]) TranslationsWithCosts(frontier Frontier) map[V]CostPath {
	out := make(map[V]CostPath)
	for _, node := range sortedNodes(frontier) {
		path := frontier[node]
		for value := range t.terminals[node] {
			cost := 0.0
			for _, tr := range path {
				cost += t.costs[costKey[V]{tr, value}]
			}
			if existing, ok := out[value]; !ok || cost < existing.Cost {
				out[value] = CostPath{cost, path}
			}
		}
	}
	return out
}
