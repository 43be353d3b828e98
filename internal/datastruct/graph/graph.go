package graph

import (
	"iter"
	"slices"

	"github.com/emirpasic/gods/v2/maps/linkedhashmap"
	"github.com/xvzc/containers/internal/ptr"
)

// Graph is an undirected graph stored as an adjacency list.
//
// Vertices are identified by their value and enumerated in the order they
// were first added. Neighbor lists keep insertion order and are not
// deduplicated, so parallel edges show up as repeated entries.
//
// A Graph is not safe for concurrent use.
type Graph[T comparable] struct {
	adj *linkedhashmap.Map[T, []T]
}

// NewGraph creates an empty graph.
func NewGraph[T comparable]() *Graph[T] {
	return &Graph[T]{adj: linkedhashmap.New[T, []T]()}
}

// AddNode inserts v with no neighbors. It does nothing if v already exists.
func (g *Graph[T]) AddNode(v T) {
	if _, ok := g.adj.Get(v); ok {
		return
	}

	g.adj.Put(v, []T{})
}

// AddEdge connects v1 and v2, creating either vertex if needed.
//
// A self-loop AddEdge(v, v) appends v to its own list twice, once for each
// endpoint, which keeps every neighbor count symmetric.
func (g *Graph[T]) AddEdge(v1, v2 T) {
	g.AddNode(v1)
	g.AddNode(v2)

	g.appendNeighbor(v1, v2)
	g.appendNeighbor(v2, v1)
}

func (g *Graph[T]) appendNeighbor(v, neighbor T) {
	ns, _ := g.adj.Get(v)
	g.adj.Put(v, append(ns, neighbor))
}

// RemoveNode deletes v and strips every occurrence of v from the other
// neighbor lists. Vertices left without neighbors stay in the graph.
// It does nothing if v does not exist.
func (g *Graph[T]) RemoveNode(v T) {
	if _, ok := g.adj.Get(v); !ok {
		return
	}

	for _, k := range g.adj.Keys() {
		if k == v {
			continue
		}

		ns, _ := g.adj.Get(k)
		g.adj.Put(k, slices.DeleteFunc(ns, func(n T) bool { return n == v }))
	}

	g.adj.Remove(v)
}

// HasNode reports whether v is a vertex of the graph.
func (g *Graph[T]) HasNode(v T) bool {
	_, ok := g.adj.Get(v)
	return ok
}

// Neighbors returns a copy of v's neighbor list.
// The second result is false if v is not a vertex.
func (g *Graph[T]) Neighbors(v T) ([]T, bool) {
	ns, ok := g.adj.Get(v)
	if !ok {
		return nil, false
	}

	return ptr.CloneSlice(ns), true
}

// Nodes returns the vertices in insertion order.
func (g *Graph[T]) Nodes() []T {
	return g.adj.Keys()
}

// Len returns the number of vertices.
func (g *Graph[T]) Len() int {
	return g.adj.Size()
}

// All yields every vertex with a copy of its neighbor list,
// in vertex insertion order.
func (g *Graph[T]) All() iter.Seq2[T, []T] {
	return func(yield func(T, []T) bool) {
		for _, k := range g.adj.Keys() {
			ns, _ := g.adj.Get(k)
			if !yield(k, ptr.CloneSlice(ns)) {
				return
			}
		}
	}
}
