package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/motion"
	"github.com/katalvlaran/gridsearch/search"
)

var (
	errNoGrid    = errors.New("no grid: pass a layout file, --grid, or a scenario with grid/layout")
	errCellValue = errors.New(`cell must be "row,col"`)
)

// Scenario is one search setup, read from TOML and overridden by flags.
//
//	grid = "maps/simple.txt"       # or an inline layout = '''...'''
//	start = [6, 2]
//	goal = [2, 12]
//	obstacles = [[3, 4]]
//	clear = [[2, 6]]
//	motion = "8"                   # or offsets = [[-1, 0], [0, 1]]
//	probabilities = [0.1, 0.2, 0.3, 0.4, 0, 0, 0, 0]
//	seed = 7
//	algorithms = ["bfs", "astar"]
//	max_visits = 10000
type Scenario struct {
	Grid          string    `toml:"grid"`
	Layout        string    `toml:"layout"`
	Start         []int     `toml:"start"`
	Goal          []int     `toml:"goal"`
	Obstacles     [][]int   `toml:"obstacles"`
	Clear         [][]int   `toml:"clear"`
	Motion        string    `toml:"motion"`
	Offsets       [][]int   `toml:"offsets"`
	Probabilities []float64 `toml:"probabilities"`
	Seed          int64     `toml:"seed"`
	Algorithms    []string  `toml:"algorithms"`
	MaxVisits     int       `toml:"max_visits"`
}

// loadScenario reads a TOML scenario. A relative grid path is resolved
// against the scenario file's directory.
func loadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var sc Scenario
	if err := toml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if sc.Grid != "" && !filepath.IsAbs(sc.Grid) {
		sc.Grid = filepath.Join(filepath.Dir(path), sc.Grid)
	}
	return &sc, nil
}

// setup is a resolved Scenario, ready to search.
type setup struct {
	grid      *gridgraph.Grid
	spec      motion.Spec
	algos     []search.Algorithm
	seed      int64
	maxVisits int
}

// options returns the search options shared by every algorithm of the setup.
func (s *setup) options() []search.Option {
	return []search.Option{search.WithSeed(s.seed), search.WithMaxVisits(s.maxVisits)}
}

// build loads the grid, applies edits and markers, and resolves motion and
// algorithms. defaults is used when the scenario names no algorithm.
func (sc *Scenario) build(defaults []search.Algorithm) (*setup, error) {
	var (
		g   *gridgraph.Grid
		err error
	)
	switch {
	case sc.Layout != "":
		g, err = gridgraph.LoadStrings(splitLayout(sc.Layout))
	case sc.Grid != "":
		g, err = gridgraph.ReadFile(sc.Grid)
	default:
		return nil, errNoGrid
	}
	if err != nil {
		return nil, err
	}

	for _, rc := range sc.Obstacles {
		c, err := cellOf(rc)
		if err != nil {
			return nil, fmt.Errorf("obstacles: %w", err)
		}
		if err := g.AddObstacle(c); err != nil {
			return nil, err
		}
	}
	for _, rc := range sc.Clear {
		c, err := cellOf(rc)
		if err != nil {
			return nil, fmt.Errorf("clear: %w", err)
		}
		if err := g.RemoveObstacle(c); err != nil {
			return nil, err
		}
	}
	if sc.Start != nil {
		c, err := cellOf(sc.Start)
		if err != nil {
			return nil, fmt.Errorf("start: %w", err)
		}
		if err := g.SetStart(c); err != nil {
			return nil, err
		}
	}
	if sc.Goal != nil {
		c, err := cellOf(sc.Goal)
		if err != nil {
			return nil, fmt.Errorf("goal: %w", err)
		}
		if err := g.SetGoal(c); err != nil {
			return nil, err
		}
	}

	spec, err := sc.motionSpec()
	if err != nil {
		return nil, err
	}

	algos := defaults
	if len(sc.Algorithms) > 0 {
		algos = make([]search.Algorithm, 0, len(sc.Algorithms))
		for _, name := range sc.Algorithms {
			a, err := search.ParseAlgorithm(name)
			if err != nil {
				return nil, err
			}
			algos = append(algos, a)
		}
	}

	return &setup{grid: g, spec: spec, algos: algos, seed: sc.Seed, maxVisits: sc.MaxVisits}, nil
}

// motionSpec resolves explicit offsets, else the preset (default "4").
func (sc *Scenario) motionSpec() (motion.Spec, error) {
	var dirs []motion.Direction
	if len(sc.Offsets) > 0 {
		for _, rc := range sc.Offsets {
			if len(rc) != 2 {
				return motion.Spec{}, fmt.Errorf("offsets: %v: %w", rc, errCellValue)
			}
			dirs = append(dirs, motion.Direction{DRow: rc[0], DCol: rc[1]})
		}
	} else {
		name := sc.Motion
		if name == "" {
			name = "4"
		}
		var err error
		if dirs, err = motion.Preset(name); err != nil {
			return motion.Spec{}, err
		}
	}

	var probs []float64
	if len(sc.Probabilities) > 0 {
		probs = sc.Probabilities
	}
	return motion.New(dirs, probs)
}

// splitLayout turns an inline layout into rows, dropping the trailing newline.
func splitLayout(s string) []string {
	s = strings.TrimSuffix(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	return strings.Split(s, "\n")
}

func cellOf(rc []int) (gridgraph.Cell, error) {
	if len(rc) != 2 {
		return gridgraph.Cell{}, fmt.Errorf("%v: %w", rc, errCellValue)
	}
	return gridgraph.Cell{Row: rc[0], Col: rc[1]}, nil
}

// parseCell parses "row,col".
func parseCell(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%q: %w", s, errCellValue)
	}
	rc := make([]int, 2)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, errCellValue)
		}
		rc[i] = v
	}
	return rc, nil
}

// =============================================================================
// Flags
// =============================================================================

// scenarioFlags are the flags shared by every command that runs a search.
type scenarioFlags struct {
	scenario  string
	grid      string
	start     string
	goal      string
	motion    string
	probs     []float64
	seed      int64
	algos     []string
	maxVisits int
}

// register adds the flags to cmd.
func (f *scenarioFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.scenario, "scenario", "s", "", "TOML scenario file")
	fs.StringVarP(&f.grid, "grid", "g", "", "layout file (overrides the scenario)")
	fs.StringVar(&f.start, "start", "", `start cell "row,col"`)
	fs.StringVar(&f.goal, "goal", "", `goal cell "row,col"`)
	fs.StringVarP(&f.motion, "motion", "m", "", "motion preset: 4, rook, 8, king")
	fs.Float64SliceVar(&f.probs, "probs", nil, "direction probabilities, one per offset")
	fs.Int64Var(&f.seed, "seed", 0, "seed for weighted motion (0 = default seed)")
	fs.StringSliceVarP(&f.algos, "algorithm", "a", nil, "algorithms: dfs, bfs, dijkstra, astar")
	fs.IntVar(&f.maxVisits, "max-visits", 0, "abort after this many expansions (0 = no limit)")
}

// resolve merges the scenario file, positional layout argument and changed
// flags, then builds the setup.
func (f *scenarioFlags) resolve(cmd *cobra.Command, args []string, defaults []search.Algorithm) (*setup, error) {
	sc := &Scenario{}
	if f.scenario != "" {
		loaded, err := loadScenario(f.scenario)
		if err != nil {
			return nil, err
		}
		sc = loaded
	}

	fs := cmd.Flags()
	if len(args) > 0 {
		sc.Grid, sc.Layout = args[0], ""
	}
	if fs.Changed("grid") {
		sc.Grid, sc.Layout = f.grid, ""
	}
	if fs.Changed("start") {
		rc, err := parseCell(f.start)
		if err != nil {
			return nil, fmt.Errorf("--start: %w", err)
		}
		sc.Start = rc
	}
	if fs.Changed("goal") {
		rc, err := parseCell(f.goal)
		if err != nil {
			return nil, fmt.Errorf("--goal: %w", err)
		}
		sc.Goal = rc
	}
	if fs.Changed("motion") {
		sc.Motion, sc.Offsets = f.motion, nil
	}
	if fs.Changed("probs") {
		sc.Probabilities = f.probs
	}
	if fs.Changed("seed") {
		sc.Seed = f.seed
	}
	if fs.Changed("algorithm") {
		sc.Algorithms = f.algos
	}
	if fs.Changed("max-visits") {
		sc.MaxVisits = f.maxVisits
	}

	return sc.build(defaults)
}
