package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadLayout reads one row per line from r and loads it.
// Line terminators ("\n" or "\r\n") are stripped; all other runes, including
// trailing spaces, are kept.
func ReadLayout(r io.Reader) (*Grid, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read layout: %w", err)
	}

	return LoadStrings(rows)
}

// ReadFile loads the layout stored at path.
func ReadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridgraph: open layout: %w", err)
	}
	defer f.Close()

	g, err := ReadLayout(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}
