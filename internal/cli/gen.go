package cli

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridsearch/builder"
	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/motion"
)

// genSettings are the inputs of the gen command.
type genSettings struct {
	rows, cols int
	seed       int64
	density    float64
	maze       bool
	walls      []string
	start      string
	goal       string
}

// layout builds the rows: room, optional maze, walls, scatter, then markers.
// Markers default to the top-left and bottom-right interior cells.
func (gs genSettings) layout() ([]string, error) {
	cons := []builder.Constructor{builder.Room()}
	if gs.maze {
		cons = append(cons, builder.Maze())
	}
	for _, w := range gs.walls {
		from, to, ok := strings.Cut(w, ":")
		if !ok {
			return nil, fmt.Errorf("wall %q: want \"row,col:row,col\"", w)
		}
		a, err := parseCell(from)
		if err != nil {
			return nil, fmt.Errorf("wall: %w", err)
		}
		b, err := parseCell(to)
		if err != nil {
			return nil, fmt.Errorf("wall: %w", err)
		}
		cons = append(cons, builder.Wall(gridgraph.Cell{Row: a[0], Col: a[1]}, gridgraph.Cell{Row: b[0], Col: b[1]}))
	}
	if gs.density > 0 {
		cons = append(cons, builder.Scatter(gs.density))
	}

	start := gridgraph.Cell{Row: 1, Col: 1}
	goal := gridgraph.Cell{Row: gs.rows - 2, Col: gs.cols - 2}
	if gs.start != "" {
		rc, err := parseCell(gs.start)
		if err != nil {
			return nil, fmt.Errorf("--start: %w", err)
		}
		start = gridgraph.Cell{Row: rc[0], Col: rc[1]}
	}
	if gs.goal != "" {
		rc, err := parseCell(gs.goal)
		if err != nil {
			return nil, fmt.Errorf("--goal: %w", err)
		}
		goal = gridgraph.Cell{Row: rc[0], Col: rc[1]}
	}
	cons = append(cons, builder.Markers(start, goal))

	return builder.BuildLayout(gs.rows, gs.cols, []builder.BuilderOption{builder.WithSeed(gs.seed)}, cons...)
}

func (c *CLI) genCommand() *cobra.Command {
	var (
		gs     genSettings
		output string
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a grid layout",
		Long: `Generate a bounded layout with start and goal markers: an open room, a maze,
straight or diagonal walls, and randomly scattered obstacles. The same flags and
seed always produce the same layout.`,
		Example: `  gridsearch gen --rows 21 --cols 41 --maze --seed 7 -o maze.txt
  gridsearch gen --rows 10 --cols 20 --wall 1,9:7,9 --density 0.2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := gs.layout()
			if err != nil {
				return err
			}
			text := strings.Join(rows, "\n") + "\n"

			g, err := gridgraph.LoadStrings(rows)
			if err != nil {
				return err
			}
			start, _ := g.Start()
			goal, _ := g.Goal()
			connected := slices.Contains(g.Reachable(start, motion.Offsets4), goal)
			loggerFromContext(cmd.Context()).Info("layout generated",
				"rows", gs.rows, "cols", gs.cols, "obstacles", len(g.Obstacles()), "connected", connected)

			if output == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), text)
				return err
			}
			if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess(cmd.ErrOrStderr(), "%d×%d layout written", gs.rows, gs.cols)
			printFile(cmd.ErrOrStderr(), output)
			if !connected {
				printWarning(cmd.ErrOrStderr(), "goal is not reachable from start with 4-way motion")
			}
			return nil
		},
	}

	fs := cmd.Flags()
	fs.IntVar(&gs.rows, "rows", 12, "number of rows")
	fs.IntVar(&gs.cols, "cols", 24, "number of columns")
	fs.Int64Var(&gs.seed, "seed", 1, "random seed for maze and scatter")
	fs.Float64Var(&gs.density, "density", 0, "obstacle probability per interior cell, in [0,1)")
	fs.BoolVar(&gs.maze, "maze", false, "carve a maze")
	fs.StringArrayVar(&gs.walls, "wall", nil, `obstacle segment "row,col:row,col" (repeatable)`)
	fs.StringVar(&gs.start, "start", "", `start cell "row,col" (default 1,1)`)
	fs.StringVar(&gs.goal, "goal", "", `goal cell "row,col" (default bottom-right interior)`)
	fs.StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}
