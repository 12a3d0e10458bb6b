// Package puzzle reads mazes from plain-text layouts and YAML puzzle sets.
package puzzle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"keymaze/pkg/engine/world"
)

// StdinName is the file name that selects standard input.
const StdinName = "-"

// ErrNoPuzzles is returned for a puzzle set without entries.
var ErrNoPuzzles = errors.New("puzzle set is empty")

// Puzzle is one named maze layout. Expect, when set, is the known answer.
type Puzzle struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Layout      []string `yaml:"layout"`
	Expect      *int     `yaml:"expect,omitempty"`
}

// Set is the on-disk form of a YAML puzzle collection.
type Set struct {
	Puzzles []Puzzle `yaml:"puzzles"`
}

// Grid builds the maze model for p.
func (p Puzzle) Grid() (*world.Grid, error) {
	g, err := world.NewGrid(p.Layout)
	if err != nil {
		return nil, fmt.Errorf("puzzle %s: %w", p.Name, err)
	}
	return g, nil
}

// Read reads layout rows from r. Trailing whitespace is trimmed from each
// row and blank lines at the end are dropped.
func Read(r io.Reader) ([]string, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		rows = append(rows, strings.TrimRight(scanner.Text(), " \t\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading layout: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return rows, nil
}

// Parse decodes a YAML puzzle set. Unnamed puzzles are numbered from 1.
func Parse(data []byte) ([]Puzzle, error) {
	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("decoding puzzle set: %w", err)
	}
	if len(set.Puzzles) == 0 {
		return nil, ErrNoPuzzles
	}
	for i := range set.Puzzles {
		if set.Puzzles[i].Name == "" {
			set.Puzzles[i].Name = fmt.Sprintf("puzzle-%d", i+1)
		}
		for j, row := range set.Puzzles[i].Layout {
			set.Puzzles[i].Layout[j] = strings.TrimRight(row, " \t\r")
		}
	}
	return set.Puzzles, nil
}

// Encode writes puzzles to w as a YAML puzzle set that Parse reads back.
func Encode(w io.Writer, puzzles []Puzzle) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Set{Puzzles: puzzles}); err != nil {
		return fmt.Errorf("encoding puzzle set: %w", err)
	}
	return enc.Close()
}

// Load reads the puzzles in path. Files ending in .yaml or .yml hold a
// puzzle set; anything else is a single plain-text layout named after the
// file. StdinName reads a plain-text layout from stdin.
func Load(path string) ([]Puzzle, error) {
	if path == StdinName {
		return loadText("stdin", os.Stdin)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		puzzles, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return puzzles, nil
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return loadText(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), f)
	}
}

func loadText(name string, r io.Reader) ([]Puzzle, error) {
	rows, err := Read(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return []Puzzle{{Name: name, Layout: rows}}, nil
}
