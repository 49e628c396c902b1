package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/wordladder/core"
	"github.com/stretchr/testify/assert"
)

// TestConcurrentMutationAndReads hammers AddEdge and NeighborIDs from many goroutines.
// Run with -race to check lock coverage.
func TestConcurrentMutationAndReads(t *testing.T) {
	g := core.NewGraph()
	const workers = 8
	const perWorker = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				_, _ = g.AddEdge("hub", fmt.Sprintf("w%d_%d", w, i))
				_, _ = g.NeighborIDs("hub")
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker, g.EdgeCount())
	assert.Equal(t, workers*perWorker+1, g.VertexCount())
}

// TestConcurrentReadsOnFrozen checks a frozen graph serves parallel readers.
func TestConcurrentReadsOnFrozen(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("cat", "cot")
	_, _ = g.AddEdge("cot", "dot")
	g.Freeze()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			nbrs, err := g.NeighborIDs("cot")
			assert.NoError(t, err)
			assert.Equal(t, []string{"cat", "dot"}, nbrs)
		}()
	}
	wg.Wait()
}
