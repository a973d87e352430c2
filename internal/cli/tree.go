package cli

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/goccy/go-graphviz"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/search"
)

// treeDOT converts a search tree to Graphviz DOT. Nodes are discovered cells,
// edges run from predecessor to successor, and path cells are filled.
// Output is deterministic: nodes and edges are emitted in row-major order.
func treeDOT(start gridgraph.Cell, res *search.Result) string {
	onPath := make(map[gridgraph.Cell]bool, len(res.Path))
	for _, c := range res.Path {
		onPath[c] = true
	}

	cells := slices.SortedFunc(maps.Keys(res.Tree), compareCells)
	nodes := append([]gridgraph.Cell{start}, cells...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", res.Algorithm.String())
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=monospace];\n")
	buf.WriteString("\n")

	for i, c := range nodes {
		attrs := ""
		switch {
		case i == 0:
			attrs = ", fillcolor=palegreen"
		case res.Found && c == res.Path[len(res.Path)-1]:
			attrs = ", fillcolor=gold"
		case onPath[c]:
			attrs = ", fillcolor=lightblue"
		}
		fmt.Fprintf(&buf, "  %q [label=%q%s];\n", c.String(), c.String(), attrs)
	}

	buf.WriteString("\n")
	for _, c := range cells {
		edge := ""
		if onPath[c] && onPath[res.Tree[c]] {
			edge = " [penwidth=2]"
		}
		fmt.Fprintf(&buf, "  %q -> %q%s;\n", res.Tree[c].String(), c.String(), edge)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func compareCells(a, b gridgraph.Cell) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	return cmp.Compare(a.Col, b.Col)
}

// renderSVG renders a DOT graph to SVG using Graphviz.
func renderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *CLI) treeCommand() *cobra.Command {
	var (
		flags  scenarioFlags
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "tree [layout-file]",
		Short: "Export the search tree as DOT or SVG",
		Long: `Run one search and export its predecessor tree: every discovered cell with an
edge from the cell that discovered it. The start is green, the goal gold and the
path blue.`,
		Example: `  gridsearch tree maps/simple.txt --start 6,2 --goal 2,12 -a bfs -f svg -o bfs.svg`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "dot" && format != "svg" {
				return fmt.Errorf("unknown format %q: want dot or svg", format)
			}
			s, err := flags.resolve(cmd, args, []search.Algorithm{search.AlgorithmAStar})
			if err != nil {
				return err
			}
			if len(s.algos) != 1 {
				return errOneAlgorithm
			}

			t, err := runSearch(cmd.Context(), s, s.algos[0], search.WithTree())
			if err != nil {
				return err
			}
			start, _ := s.grid.Start()
			data := []byte(treeDOT(start, t.res))

			if format == "svg" {
				prog := newProgress(loggerFromContext(cmd.Context()))
				if data, err = renderSVG(cmd.Context(), string(data)); err != nil {
					return err
				}
				prog.done("svg rendered", "bytes", len(data))
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess(cmd.ErrOrStderr(), "%d tree nodes written", len(t.res.Tree)+1)
			printFile(cmd.ErrOrStderr(), output)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot, svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}
