package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wordladder/config"
	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/ladder"
)

// errNoLadder is reported when the query is valid but no ladder exists.
var errNoLadder = errors.New("no word ladder found")

// app carries state shared by the commands of one invocation.
type app struct {
	cfg *config.Config
	in  io.Reader
}

// solver builds a Solver over the configured dictionary directory.
func (a *app) solver() *ladder.Solver {
	files, _ := a.cfg.DictionaryFiles()
	src := dictionary.NewSource(os.DirFS(a.cfg.DictionaryDir()), files)

	return ladder.NewSolver(src,
		ladder.WithBuildStrategy(a.cfg.Strategy()),
		ladder.WithMaxSteps(a.cfg.MaxSteps()),
	)
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{cfg: config.New(), in: in}

	root := &cobra.Command{
		Use:   "wordladder [start] [end]",
		Short: "Find the shortest word ladder between two words",
		Long: `wordladder changes one letter at a time to turn the start word into the
end word, using only dictionary words, and prints the shortest such ladder.
Words that are not given as arguments are read from standard input.`,
		Args:          usageArgs(cobra.MaximumNArgs(2)),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.cfg.Load(cmd.Flags()); err != nil {
				if errors.Is(err, ladder.ErrUsage) {
					return err
				}
				return fmt.Errorf("%w: %v", ladder.ErrUsage, err)
			}
			setupLogger(cmd.ErrOrStderr(), a.cfg.Debug())
			log.Debug().Interface("settings", a.cfg.Settings()).Msg("configuration loaded")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := a.readWords(cmd.OutOrStdout(), args)
			if err != nil {
				return err
			}
			return a.runLadder(cmd.Context(), cmd.OutOrStdout(), start, end)
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ladder.ErrUsage, err)
	})
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(newReachCmd(a), newConfigCmd(a))

	return root
}

func newReachCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reach <word>",
		Short: "Count the dictionary words reachable from a word",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]
			res, found, err := a.solver().Reach(cmd.Context(), word)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("%q is not in the dictionary", word)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d neighbors, %d words reachable, farthest %d steps\n",
				word, res.Neighbors, len(res.Order)-1, res.MaxDepth())
			return err
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := yaml.Marshal(a.cfg.Settings())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

// usageArgs tags argument validation failures as usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", ladder.ErrUsage, err)
		}
		return nil
	}
}

// readWords takes start and end from args, prompting on the input stream for
// any that are missing.
func (a *app) readWords(out io.Writer, args []string) (string, string, error) {
	words := append([]string(nil), args...)
	if len(words) == 2 {
		return words[0], words[1], nil
	}

	scanner := bufio.NewScanner(a.in)
	scanner.Split(bufio.ScanWords)
	prompts := []string{"Enter the beginning word", "Enter the ending word"}
	for len(words) < 2 {
		fmt.Fprintln(out, prompts[len(words)])
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", "", fmt.Errorf("reading input: %w", err)
			}
			return "", "", fmt.Errorf("%w: missing %s word", ladder.ErrUsage, []string{"beginning", "ending"}[len(words)])
		}
		words = append(words, scanner.Text())
	}

	return words[0], words[1], nil
}

func (a *app) runLadder(ctx context.Context, out io.Writer, start, end string) error {
	l, found, err := a.solver().Solve(ctx, start, end)
	if err != nil {
		return err
	}
	if !found {
		return errNoLadder
	}
	_, err = fmt.Fprintln(out, l.String(a.cfg.Separator()))

	return err
}

// run executes the command line and maps the outcome to an exit status.
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	root := newRootCmd(in, out, errOut)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	fmt.Fprintf(errOut, "ERROR! %v\n", err)

	return exitCode(err)
}

// exitCode maps err to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ladder.ErrUsage), errors.Is(err, dictionary.ErrUnsupportedLength):
		return 2
	default:
		return 1
	}
}
