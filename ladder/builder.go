package ladder

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/katalvlaran/wordladder/core"
)

// Strategy selects how Build discovers neighbor pairs.
type Strategy string

const (
	// StrategyPairwise compares each new word with all words inserted before it.
	StrategyPairwise Strategy = "pairwise"
	// StrategyBucket links words that share a one-position wildcard signature.
	StrategyBucket Strategy = "bucket"
)

// ParseStrategy maps a configuration string to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(strings.ToLower(strings.TrimSpace(s))); st {
	case StrategyPairwise, StrategyBucket:
		return st, nil
	case "":
		return StrategyPairwise, nil
	default:
		return "", fmt.Errorf("%w: unknown build strategy %q", ErrUsage, s)
	}
}

// BuildOption configures Build.
type BuildOption func(*buildOptions)

type buildOptions struct {
	strategy Strategy
}

// WithStrategy selects the neighbor discovery strategy. Unknown values fall
// back to StrategyPairwise.
func WithStrategy(s Strategy) BuildOption {
	return func(o *buildOptions) {
		if s == StrategyBucket {
			o.strategy = s
		}
	}
}

// Build creates a frozen word graph from words, keeping only valid UTF-8
// words of the given length. Duplicates collapse to one vertex. Two kept words are joined
// iff IsNeighbor holds for them; the edge set does not depend on input order
// or strategy.
func Build(words []string, length int, opts ...BuildOption) *core.Graph {
	o := buildOptions{strategy: StrategyPairwise}
	for _, opt := range opts {
		opt(&o)
	}

	started := time.Now()
	kept := lo.Filter(words, func(w string, _ int) bool {
		return w != "" && utf8.ValidString(w) && WordLen(w) == length
	})
	g := core.NewGraph(core.WithCapacity(len(kept)))

	var err error
	switch o.strategy {
	case StrategyBucket:
		err = buildBucketed(g, kept)
	default:
		err = buildPairwise(g, kept)
	}
	if err != nil {
		// kept words are non-empty and g is not frozen until the helpers return
		panic(fmt.Sprintf("ladder: build word graph: %v", err))
	}
	g.Freeze()

	log.Debug().
		Str("strategy", string(o.strategy)).
		Int("length", length).
		Int("candidates", len(words)).
		Int("words", g.VertexCount()).
		Int("edges", g.EdgeCount()).
		Dur("elapsed", time.Since(started)).
		Msg("word graph built")

	return g
}

// buildPairwise inserts words in order, comparing each new word with every
// word inserted before it.
func buildPairwise(g *core.Graph, words []string) error {
	inserted := make([]string, 0, len(words))
	for _, w := range words {
		if g.HasVertex(w) {
			continue
		}
		if err := g.AddVertex(w); err != nil {
			return fmt.Errorf("add %q: %w", w, err)
		}
		for _, prev := range inserted {
			if !IsNeighbor(w, prev) {
				continue
			}
			if _, err := g.AddEdge(w, prev); err != nil {
				return fmt.Errorf("link %q and %q: %w", w, prev, err)
			}
		}
		inserted = append(inserted, w)
	}

	return nil
}

// signature identifies the words that are equal everywhere except at pos.
type signature struct {
	pos  int
	rest string
}

// buildBucketed links every pair of distinct words sharing a signature.
// Two distinct equal-length words share a signature iff they differ at
// exactly that one position.
func buildBucketed(g *core.Graph, words []string) error {
	buckets := make(map[signature][]string)
	for _, w := range words {
		if g.HasVertex(w) {
			continue
		}
		if err := g.AddVertex(w); err != nil {
			return fmt.Errorf("add %q: %w", w, err)
		}
		for _, sig := range signatures(w) {
			for _, other := range buckets[sig] {
				if _, err := g.AddEdge(w, other); err != nil {
					return fmt.Errorf("link %q and %q: %w", w, other, err)
				}
			}
			buckets[sig] = append(buckets[sig], w)
		}
	}

	return nil
}

// signatures returns one signature per rune position of w.
func signatures(w string) []signature {
	runes := []rune(w)
	out := make([]signature, len(runes))
	for i := range runes {
		out[i] = signature{pos: i, rest: string(runes[:i]) + string(runes[i+1:])}
	}

	return out
}
