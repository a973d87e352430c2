package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridsearch/search"
)

func (c *CLI) compareCommand() *cobra.Command {
	var flags scenarioFlags

	cmd := &cobra.Command{
		Use:   "compare [layout-file]",
		Short: "Run several algorithms on one grid and tabulate the counters",
		Long: `Run every selected algorithm (all four by default) on the same grid, start,
goal and motion, and print steps, visited and added counts side by side.`,
		Example: `  gridsearch compare maps/diagonal.txt -m 8 --start 11,2 --goal 4,8
  gridsearch compare -s scenario.toml -a bfs,astar`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.resolve(cmd, args, search.Algorithms())
			if err != nil {
				return err
			}

			traces := make([]*trace, 0, len(s.algos))
			for _, algo := range s.algos {
				t, err := runSearch(cmd.Context(), s, algo)
				if err != nil {
					return err
				}
				traces = append(traces, t)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderCompare(traces))
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

// renderCompare formats one table row per trace.
func renderCompare(traces []*trace) string {
	rows := make([][]string, 0, len(traces))
	for _, t := range traces {
		steps, found := "-", "no"
		if t.res.Found {
			steps, found = fmt.Sprint(t.res.Cost), "yes"
		}
		rows = append(rows, []string{
			t.res.Algorithm.String(),
			found,
			steps,
			fmt.Sprint(t.res.Visited),
			fmt.Sprint(t.res.Added),
			t.elapsed.Round(time.Microsecond).String(),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("Algorithm", "Found", "Steps", "Visited", "Added", "Time").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if row == -1 { // header
				return s.Inherit(styleHeader)
			}
			if col == 0 {
				return s.Inherit(StyleValue)
			}
			return s
		}).
		String()
}
