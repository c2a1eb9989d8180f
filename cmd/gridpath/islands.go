package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gonuts/commander"
)

type islandsConfig struct {
	grid      string
	conn      int
	threshold int
	src, dst  int
}

func islandsCmd() *commander.Command {
	var cfg islandsConfig
	cmd := &commander.Command{
		Run: func(_ *commander.Command, _ []string) error {
			return runIslands(os.Stdout, cfg)
		},
		UsageLine: "islands -grid FILE [-src I -dst J]",
		Short:     "list land components and bridge two of them",
		Long: `
islands lists the connected components of land cells. With -src and -dst it
also reports the fewest water cells to convert so the two components touch.

	$ gridpath islands -grid terrain.txt -src 0 -dst 1

`,
		Flag: *flag.NewFlagSet("islands", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&cfg.grid, "grid", "", "grid file")
	cmd.Flag.IntVar(&cfg.conn, "conn", 4, "connectivity: 4 or 8")
	cmd.Flag.IntVar(&cfg.threshold, "threshold", 1, "minimum land cell value")
	cmd.Flag.IntVar(&cfg.src, "src", -1, "source component index")
	cmd.Flag.IntVar(&cfg.dst, "dst", -1, "destination component index")

	return cmd
}

func runIslands(w io.Writer, cfg islandsConfig) error {
	gg, err := loadGrid(cfg.grid, cfg.conn, cfg.threshold)
	if err != nil {
		return err
	}

	comps := gg.ConnectedComponents()
	fmt.Fprintf(w, "components: %d\n", len(comps))
	for i, comp := range comps {
		x, y := gg.Coordinate(comp[0])
		fmt.Fprintf(w, "  %d: %d cells, first at %d,%d\n", i, len(comp), x, y)
	}

	if cfg.src < 0 && cfg.dst < 0 {
		return nil
	}
	log.Printf("bridging component %d to %d", cfg.src, cfg.dst)
	path, cost, err := gg.ExpandIsland(cfg.src, cfg.dst)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "bridge: %d conversions:", cost)
	for _, idx := range path {
		x, y := gg.Coordinate(idx)
		if gg.CellValues[y][x] < gg.LandThreshold {
			fmt.Fprintf(w, " %d,%d", x, y)
		}
	}
	fmt.Fprintln(w)

	return nil
}
