package ladder

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/core"
)

// DefaultSeparator joins ladder words in Ladder.String.
const DefaultSeparator = " -> "

// WordSupplier yields the candidate words for a given length.
// dictionary.Source implements it.
type WordSupplier interface {
	Words(length int) ([]string, error)
}

// Ladder is an ordered word sequence, start first, end last.
type Ladder []string

// Steps returns the number of single-character substitutions in l.
func (l Ladder) Steps() int {
	if len(l) == 0 {
		return 0
	}
	return len(l) - 1
}

// String joins the words with sep, or DefaultSeparator when sep is empty.
func (l Ladder) String(sep string) string {
	if sep == "" {
		sep = DefaultSeparator
	}
	return strings.Join(l, sep)
}

// Valid reports whether l is non-empty, every word is in g and each
// consecutive pair is a neighbor pair.
func (l Ladder) Valid(g *core.Graph) bool {
	if len(l) == 0 {
		return false
	}
	for i, w := range l {
		if !g.HasVertex(w) {
			return false
		}
		if i > 0 && !IsNeighbor(l[i-1], w) {
			return false
		}
	}
	return true
}

// Validate checks the query preconditions: both words non-empty and of equal length.
func Validate(start, end string) error {
	if start == "" || end == "" {
		return ErrEmptyWord
	}
	if WordLen(start) != WordLen(end) {
		return fmt.Errorf("%w (%q has %d, %q has %d)",
			ErrLengthMismatch, start, WordLen(start), end, WordLen(end))
	}
	return nil
}

// Solver answers ladder queries against a word supplier.
type Solver struct {
	words    WordSupplier
	strategy Strategy
	maxSteps int
}

// SolverOption configures a Solver.
type SolverOption func(*Solver)

// WithBuildStrategy sets the strategy used to build each graph.
func WithBuildStrategy(s Strategy) SolverOption {
	return func(sv *Solver) { sv.strategy = s }
}

// WithMaxSteps limits ladders to at most n substitutions. n <= 0 means no limit.
func WithMaxSteps(n int) SolverOption {
	return func(sv *Solver) {
		if n > 0 {
			sv.maxSteps = n
		}
	}
}

// NewSolver returns a Solver drawing candidates from words.
func NewSolver(words WordSupplier, opts ...SolverOption) *Solver {
	sv := &Solver{words: words, strategy: StrategyPairwise}
	for _, opt := range opts {
		opt(sv)
	}
	return sv
}

// Graph loads the words of the given length and builds their frozen graph.
func (s *Solver) Graph(length int) (*core.Graph, error) {
	words, err := s.words.Words(length)
	if err != nil {
		return nil, err
	}
	return Build(words, length, WithStrategy(s.strategy)), nil
}

// Solve returns a shortest ladder from start to end.
//
// Usage errors (ErrUsage) are returned before the supplier is consulted;
// supplier errors are returned unchanged. found is false when either word is
// missing from the dictionary or no ladder connects them.
func (s *Solver) Solve(ctx context.Context, start, end string) (Ladder, bool, error) {
	if err := Validate(start, end); err != nil {
		return nil, false, err
	}
	g, err := s.Graph(WordLen(start))
	if err != nil {
		return nil, false, err
	}

	path, found, err := bfs.ShortestPath(g, start, end,
		bfs.WithContext(ctx),
		bfs.WithMaxDepth(s.maxSteps),
	)
	if err != nil {
		return nil, false, fmt.Errorf("ladder: search %q → %q: %w", start, end, err)
	}
	log.Debug().
		Str("start", start).
		Str("end", end).
		Bool("found", found).
		Int("steps", Ladder(path).Steps()).
		Msg("ladder search finished")

	return Ladder(path), found, nil
}

// Reachability is the outcome of Reach: the traversal from the word plus the
// number of words one step away.
type Reachability struct {
	*bfs.Result
	Neighbors int
}

// Reach explores every dictionary word reachable from word. found is false
// when word is not in the dictionary.
func (s *Solver) Reach(ctx context.Context, word string) (*Reachability, bool, error) {
	if word == "" {
		return nil, false, ErrEmptyWord
	}
	g, err := s.Graph(WordLen(word))
	if err != nil {
		return nil, false, err
	}
	if !g.HasVertex(word) {
		return nil, false, nil
	}

	degree, err := g.Degree(word)
	if err != nil {
		return nil, false, fmt.Errorf("ladder: reach %q: %w", word, err)
	}
	res, err := bfs.Search(g, word, bfs.WithContext(ctx), bfs.WithMaxDepth(s.maxSteps))
	if err != nil {
		return nil, false, fmt.Errorf("ladder: reach %q: %w", word, err)
	}

	return &Reachability{Result: res, Neighbors: degree}, true, nil
}
