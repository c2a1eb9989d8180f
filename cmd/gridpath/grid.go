package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/bestfirst/gridgraph"
)

// loadGrid reads and validates a grid file.
func loadGrid(path string, conn, threshold int) (*gridgraph.GridGraph, error) {
	if path == "" {
		return nil, fmt.Errorf("missing required flag -grid")
	}
	opts := gridgraph.DefaultGridOptions()
	switch conn {
	case 4:
		opts.Conn = gridgraph.Conn4
	case 8:
		opts.Conn = gridgraph.Conn8
	default:
		return nil, fmt.Errorf("-conn must be 4 or 8, got %d", conn)
	}
	opts.LandThreshold = threshold

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	values, err := gridgraph.ParseGrid(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	gg, err := gridgraph.NewGridGraph(values, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return gg, nil
}
