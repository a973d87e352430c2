package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/search"
)

var errOneAlgorithm = errors.New("run takes a single algorithm; use compare for several")

// trace is the outcome of one search together with its expansion order.
type trace struct {
	res     *search.Result
	order   []gridgraph.Cell
	elapsed time.Duration
}

// runSearch runs algo on the setup, recording the expansion order. At debug
// level every expansion and discovery is logged.
func runSearch(ctx context.Context, s *setup, algo search.Algorithm, extra ...search.Option) (*trace, error) {
	logger := loggerFromContext(ctx)
	debug := logger.GetLevel() <= log.DebugLevel
	t := &trace{}

	opts := append(s.options(),
		search.WithContext(ctx),
		search.WithOnVisit(func(c gridgraph.Cell) error {
			t.order = append(t.order, c)
			if debug {
				logger.Debug("visit", "algorithm", algo.String(), "cell", c.String(), "n", len(t.order))
			}
			return nil
		}),
	)
	if debug {
		opts = append(opts, search.WithOnEnqueue(func(c gridgraph.Cell, priority float64) {
			logger.Debug("enqueue", "algorithm", algo.String(), "cell", c.String(), "priority", priority)
		}))
	}
	opts = append(opts, extra...)

	prog := newProgress(logger)
	res, err := search.Search(s.grid, s.spec, algo, opts...)
	t.res, t.elapsed = res, prog.elapsed()
	if err != nil {
		return t, fmt.Errorf("%s: %w", algo, err)
	}
	prog.done(algo.String()+" finished", "found", res.Found, "visited", res.Visited, "added", res.Added)

	return t, nil
}

func (c *CLI) runCommand() *cobra.Command {
	var (
		flags       scenarioFlags
		showVisited bool
	)

	cmd := &cobra.Command{
		Use:   "run [layout-file]",
		Short: "Run one search and draw the path",
		Long: `Run one search algorithm (A* unless --algorithm says otherwise) and draw the grid with the path.

When the goal is unreachable, run reports how many cells the start can reach
and the fewest obstacles that would have to be cleared to connect the two.`,
		Example: `  gridsearch run maps/simple.txt --start 6,2 --goal 2,12 -a bfs
  gridsearch run -s scenario.toml --show-visited`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.resolve(cmd, args, []search.Algorithm{search.AlgorithmAStar})
			if err != nil {
				return err
			}
			if len(s.algos) != 1 {
				return errOneAlgorithm
			}
			algo := s.algos[0]

			t, err := runSearch(cmd.Context(), s, algo)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var visited map[gridgraph.Cell]bool
			if showVisited {
				visited = visitedSet(t.order)
			}
			fmt.Fprintln(out, renderGrid(s.grid, t.res.Path, visited))
			fmt.Fprintln(out)

			if t.res.Found {
				printSuccess(out, "path found in %d steps", t.res.Cost)
			} else {
				printWarning(out, "no path")
				explainUnreachable(out, s)
			}
			printKeyValue(out, "algorithm", algo.String())
			printKeyValue(out, "path", t.res.PathString())
			printKeyValue(out, "visited", fmt.Sprint(t.res.Visited))
			printKeyValue(out, "added", fmt.Sprint(t.res.Added))
			printKeyValue(out, "time", t.elapsed.String())

			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&showVisited, "show-visited", false, "mark expanded cells")

	return cmd
}

// explainUnreachable prints the size of the start region and the cheapest breach.
func explainUnreachable(w io.Writer, s *setup) {
	start, _ := s.grid.Start()
	dirs := s.spec.Directions()
	printInfo(w, "start reaches %d cells", len(s.grid.Reachable(start, dirs)))
	printInfo(w, "open cells split into %d regions", len(s.grid.Regions(dirs)))

	_, cost, err := s.grid.MinBreach(dirs)
	switch {
	case errors.Is(err, gridgraph.ErrNoBreach):
		printInfo(w, "the boundary separates start and goal")
	case err == nil && cost > 0:
		printInfo(w, "clearing %d obstacle(s) would connect start and goal", cost)
	}
}
