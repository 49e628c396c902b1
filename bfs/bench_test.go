package bfs_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/core"
)

// BenchmarkShortestPath_Chain measures a goal search along a linear chain of N+1 vertices.
func BenchmarkShortestPath_Chain(b *testing.B) {
	const N = 10000
	g := core.NewGraph()
	for i := 0; i < N; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
	}
	g.Freeze()
	end := fmt.Sprintf("v%d", N)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = bfs.ShortestPath(g, "v0", end)
	}
}

// BenchmarkSearch_RandomSparse measures a full traversal of a sparse random graph.
func BenchmarkSearch_RandomSparse(b *testing.B) {
	const V = 5000
	const E = 10000

	rnd := rand.New(rand.NewSource(42))
	g := core.NewGraph()
	for i := 0; i < V; i++ {
		_ = g.AddVertex(fmt.Sprintf("n%d", i))
	}
	// loops are rejected by core and repeats are no-ops
	for k := 0; k < E; k++ {
		_, _ = g.AddEdge(fmt.Sprintf("n%d", rnd.Intn(V)), fmt.Sprintf("n%d", rnd.Intn(V)))
	}
	g.Freeze()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Search(g, "n0")
	}
}
