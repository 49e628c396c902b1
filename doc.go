// Package wordladder finds the shortest word ladder between two words: a
// chain of dictionary words in which each step changes exactly one letter.
//
//	cold → cord → card → ward → warm
//
// The work is split across small packages, used in this order:
//
//	dictionary/ - picks the word file for a length and reads its lines
//	ladder/     - builds the one-substitution word graph; Solver ties it together
//	core/       - thread-safe word graph storage (vertices, undirected edges)
//	bfs/        - breadth-first shortest path and full traversal
//	config/     - defaults, YAML file, WORDLADDER_* env and flags
//	cmd/wordladder - the command-line tool
//
// Quick example:
//
//	src := dictionary.NewSource(os.DirFS("./data"), nil)
//	l, found, err := ladder.NewSolver(src).Solve(ctx, "cold", "warm")
//	if err == nil && found {
//	    fmt.Println(l.String(" -> "))
//	}
//
// A graph is built once per word length and frozen; any number of searches
// may then run over it, each with its own visited set.
//
//	go install github.com/katalvlaran/wordladder/cmd/wordladder@latest
package wordladder
