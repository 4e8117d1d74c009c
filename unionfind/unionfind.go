package unionfind

import (
	"errors"
	"fmt"
)

// ErrUnknownElement is returned when an operation references a label that was
// never registered with MakeSet.
var ErrUnknownElement = errors.New("unionfind: unknown element")

// UnionFind is a disjoint-set forest over string labels.
//
// parent maps every registered label to its parent (roots point to themselves).
// size is meaningful only for roots and holds the number of labels in the set.
type UnionFind struct {
	parent map[string]string
	size   map[string]int
	sets   int // number of disjoint sets currently tracked
}

// New returns an empty UnionFind with room for capacity labels.
func New(capacity int) *UnionFind {
	if capacity < 0 {
		capacity = 0
	}

	return &UnionFind{
		parent: make(map[string]string, capacity),
		size:   make(map[string]int, capacity),
	}
}

// NewFrom returns a UnionFind with every label in labels registered as a singleton.
// Duplicate labels are registered once.
func NewFrom(labels []string) *UnionFind {
	uf := New(len(labels))
	for _, label := range labels {
		uf.MakeSet(label)
	}

	return uf
}

// MakeSet registers x as a new singleton set and reports whether it was added.
// Registering a label twice leaves the existing set untouched and returns false.
// Complexity: O(1).
func (uf *UnionFind) MakeSet(x string) bool {
	if _, ok := uf.parent[x]; ok {
		return false
	}
	uf.parent[x] = x
	uf.size[x] = 1
	uf.sets++

	return true
}

// Has reports whether x was registered.
func (uf *UnionFind) Has(x string) bool {
	_, ok := uf.parent[x]
	return ok
}

// Len returns the number of registered labels.
func (uf *UnionFind) Len() int { return len(uf.parent) }

// Sets returns the number of disjoint sets.
func (uf *UnionFind) Sets() int { return uf.sets }

// Find returns the representative of the set containing x.
//
// Steps:
//  1. Walk parent links from x until a self-parented root is reached.
//  2. Walk the same chain again, pointing every node directly at the root.
//
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Find(x string) (string, error) {
	p, ok := uf.parent[x]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownElement, x)
	}

	// 1. Locate the root.
	root := x
	for p != root {
		root = p
		p = uf.parent[root]
	}

	// 2. Compress the path.
	for cur := x; cur != root; {
		next := uf.parent[cur]
		uf.parent[cur] = root
		cur = next
	}

	return root, nil
}

// Union merges the sets containing a and b and reports whether a merge happened.
// The root of the smaller set is attached under the root of the larger one; on a
// size tie b's root goes under a's root. The surviving root's size grows by the
// absorbed root's size.
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Union(a, b string) (bool, error) {
	rootA, err := uf.Find(a)
	if err != nil {
		return false, err
	}
	rootB, err := uf.Find(b)
	if err != nil {
		return false, err
	}
	if rootA == rootB {
		return false, nil
	}

	if uf.size[rootA] < uf.size[rootB] {
		rootA, rootB = rootB, rootA
	}
	uf.parent[rootB] = rootA
	uf.size[rootA] += uf.size[rootB]
	delete(uf.size, rootB)
	uf.sets--

	return true, nil
}

// Connected reports whether a and b belong to the same set.
func (uf *UnionFind) Connected(a, b string) (bool, error) {
	rootA, err := uf.Find(a)
	if err != nil {
		return false, err
	}
	rootB, err := uf.Find(b)
	if err != nil {
		return false, err
	}

	return rootA == rootB, nil
}

// SetSize returns the number of labels in the set containing x.
func (uf *UnionFind) SetSize(x string) (int, error) {
	root, err := uf.Find(x)
	if err != nil {
		return 0, err
	}

	return uf.size[root], nil
}
