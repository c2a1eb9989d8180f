package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxRowBytes bounds the length of a single grid row.
const maxRowBytes = 16 << 20

// ParseGrid reads a grid as rows of whitespace-separated integers, one row
// per line. Blank lines and lines starting with '#' are skipped.
// A row longer than 16 MiB fails with ErrParse.
// The result is not validated for shape; pass it to NewGridGraph for that.
func ParseGrid(r io.Reader) ([][]int, error) {
	var grid [][]int
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxRowBytes)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %d: %q", ErrParse, line, i+1, f)
			}
			row[i] = v
		}
		grid = append(grid, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return grid, nil
}

// ParseCell parses "x,y" into a Cell.
func ParseCell(s string) (Cell, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Cell{}, fmt.Errorf("%w: cell %q is not x,y", ErrParse, s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return Cell{}, fmt.Errorf("%w: cell %q is not x,y", ErrParse, s)
	}

	return Cell{X: x, Y: y}, nil
}
