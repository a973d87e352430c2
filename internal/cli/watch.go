package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/search"
)

// =============================================================================
// ReplayModel - step-by-step replay of a finished search
// =============================================================================

// tickMsg advances autoplay by one expansion.
type tickMsg struct{}

// ReplayModel is the bubbletea model that replays a search's expansion order
// over the grid. The path is drawn once the last expansion is shown.
type ReplayModel struct {
	Grid    *gridgraph.Grid
	Result  *search.Result
	Order   []gridgraph.Cell
	Step    int
	Playing bool
	Delay   time.Duration
}

// NewReplayModel creates a replay positioned before the first expansion.
func NewReplayModel(g *gridgraph.Grid, res *search.Result, order []gridgraph.Cell, delay time.Duration, autoplay bool) ReplayModel {
	return ReplayModel{Grid: g, Result: res, Order: order, Delay: delay, Playing: autoplay}
}

func (m ReplayModel) tick() tea.Cmd {
	return tea.Tick(m.Delay, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m ReplayModel) Init() tea.Cmd {
	if m.Playing {
		return m.tick()
	}
	return nil
}

func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "n":
			m.Playing = false
			if m.Step < len(m.Order) {
				m.Step++
			}
		case "left", "h", "p":
			m.Playing = false
			if m.Step > 0 {
				m.Step--
			}
		case "home", "g":
			m.Playing, m.Step = false, 0
		case "end", "G":
			m.Playing, m.Step = false, len(m.Order)
		case " ":
			m.Playing = !m.Playing
			if m.Playing {
				if m.Step == len(m.Order) {
					m.Step = 0
				}
				return m, m.tick()
			}
		}
	case tickMsg:
		if !m.Playing {
			return m, nil
		}
		if m.Step < len(m.Order) {
			m.Step++
		}
		if m.Step == len(m.Order) {
			m.Playing = false
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

// Done reports whether every expansion is shown.
func (m ReplayModel) Done() bool {
	return m.Step == len(m.Order)
}

func (m ReplayModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Replay " + m.Result.Algorithm.String()))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ step  space play/pause  g/G first/last  q quit"))
	b.WriteString("\n\n")

	var path []gridgraph.Cell
	if m.Done() {
		path = m.Result.Path
	}
	b.WriteString(renderGrid(m.Grid, path, visitedSet(m.Order[:m.Step])))
	b.WriteString("\n\n")

	status := fmt.Sprintf("expansion %d/%d", m.Step, len(m.Order))
	if m.Step > 0 {
		status += "  " + iconArrow + " " + m.Order[m.Step-1].String()
	}
	b.WriteString(StyleValue.Render(status))
	if m.Done() {
		b.WriteString("\n")
		if m.Result.Found {
			b.WriteString(styleIconSuccess.Render(iconSuccess) + fmt.Sprintf(" path found in %d steps", m.Result.Cost))
		} else {
			b.WriteString(styleIconWarning.Render(iconWarning) + StyleWarning.Render(" no path"))
		}
	}
	b.WriteString("\n")

	return b.String()
}

func (c *CLI) watchCommand() *cobra.Command {
	var (
		flags    scenarioFlags
		delay    time.Duration
		autoplay bool
	)

	cmd := &cobra.Command{
		Use:   "watch [layout-file]",
		Short: "Replay a search expansion by expansion",
		Long: `Run one search, then replay its expansion order interactively.
Each expanded cell is marked as it is popped; the path appears after the last one.`,
		Example: `  gridsearch watch maps/simple.txt --start 6,2 --goal 2,12 -a dfs --autoplay`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.resolve(cmd, args, []search.Algorithm{search.AlgorithmAStar})
			if err != nil {
				return err
			}
			if len(s.algos) != 1 {
				return errOneAlgorithm
			}

			t, err := runSearch(cmd.Context(), s, s.algos[0])
			if err != nil {
				return err
			}

			model := NewReplayModel(s.grid, t.res, t.order, delay, autoplay)
			p := tea.NewProgram(model,
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().DurationVar(&delay, "delay", 60*time.Millisecond, "autoplay delay per expansion")
	cmd.Flags().BoolVar(&autoplay, "autoplay", false, "start playing immediately")

	return cmd
}
