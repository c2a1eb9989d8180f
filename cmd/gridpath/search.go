package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gonuts/commander"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/bestfirst/astar"
	"github.com/katalvlaran/bestfirst/gridgraph"
	"github.com/katalvlaran/bestfirst/searchmetrics"
)

type searchConfig struct {
	grid          string
	from, to      string
	conn          int
	threshold     int
	maxExpansions int
	timeout       time.Duration
	metrics       string
}

func searchCmd() *commander.Command {
	var cfg searchConfig
	cmd := &commander.Command{
		Run: func(_ *commander.Command, _ []string) error {
			return runSearch(os.Stdout, cfg)
		},
		UsageLine: "search -grid FILE -from X,Y -to X,Y [options]",
		Short:     "find the cheapest path between two cells",
		Long: `
search runs A* between two land cells. Entering a cell costs its value;
diagonal moves (-conn 8) cost √2 times as much.

	$ gridpath search -grid terrain.txt -from 0,0 -to 9,9 -conn 8 -metrics out.prom

`,
		Flag: *flag.NewFlagSet("search", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&cfg.grid, "grid", "", "grid file")
	cmd.Flag.StringVar(&cfg.from, "from", "", "start cell X,Y")
	cmd.Flag.StringVar(&cfg.to, "to", "", "goal cell X,Y")
	cmd.Flag.IntVar(&cfg.conn, "conn", 4, "connectivity: 4 or 8")
	cmd.Flag.IntVar(&cfg.threshold, "threshold", 1, "minimum passable cell value")
	cmd.Flag.IntVar(&cfg.maxExpansions, "max-expansions", 0, "abort after this many expansions (0 = unlimited)")
	cmd.Flag.DurationVar(&cfg.timeout, "timeout", 0, "abort after this long (0 = no limit)")
	cmd.Flag.StringVar(&cfg.metrics, "metrics", "", "write Prometheus metrics to this file")

	return cmd
}

func runSearch(w io.Writer, cfg searchConfig) error {
	gg, err := loadGrid(cfg.grid, cfg.conn, cfg.threshold)
	if err != nil {
		return err
	}
	from, err := gridgraph.ParseCell(cfg.from)
	if err != nil {
		return fmt.Errorf("-from: %w", err)
	}
	to, err := gridgraph.ParseCell(cfg.to)
	if err != nil {
		return fmt.Errorf("-to: %w", err)
	}

	ctx := context.Background()
	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}
	opts := []astar.Option{
		astar.WithContext(ctx),
		astar.WithMaxExpansions(cfg.maxExpansions),
	}

	var (
		reg *prometheus.Registry
		obs *searchmetrics.Observer
	)
	if cfg.metrics != "" {
		reg = prometheus.NewRegistry()
		if obs, err = searchmetrics.NewObserver(reg, "gridpath"); err != nil {
			return err
		}
		opts = append(opts, astar.WithObserver(obs))
	}

	log.Printf("searching %dx%d grid from %s to %s", gg.Width, gg.Height, from, to)
	res, err := gg.ShortestPath(from, to, opts...)
	if err != nil {
		return err
	}

	if !res.Found() {
		fmt.Fprintf(w, "no path from %s to %s\n", from, to)
	} else {
		cells := make([]string, len(res.Plan))
		for i, c := range res.Plan {
			cells[i] = c.String()
		}
		moves := make([]string, len(res.Actions))
		for i, m := range res.Actions {
			moves[i] = m.String()
		}
		fmt.Fprintf(w, "plan:  %s\n", strings.Join(cells, " "))
		fmt.Fprintf(w, "moves: %s\n", strings.Join(moves, " "))
		fmt.Fprintf(w, "cost:  %g\n", res.Cost)
	}
	s := res.Stats
	fmt.Fprintf(w, "stats: expanded=%d generated=%d pushed=%d reopened=%d stale=%d\n",
		s.Expanded, s.Generated, s.Pushed, s.Reopened, s.StaleSkipped)

	if obs != nil {
		if res.Found() {
			obs.ObservePlan(res.Cost)
		}
		if err := prometheus.WriteToTextfile(cfg.metrics, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		log.Printf("metrics written to %s", cfg.metrics)
	}

	return nil
}
