package gridgraph

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/katalvlaran/bestfirst/astar"
)

// terrain is the weighted grid used by most tests (0 = water):
//
//	1 1 1 1
//	1 9 9 1
//	1 1 0 1
func terrain() [][]int {
	return [][]int{
		{1, 1, 1, 1},
		{1, 9, 9, 1},
		{1, 1, 0, 1},
	}
}

// TestNewGridGraph_Errors checks input validation of the constructor.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		opts GridOptions
		want error
	}{
		{"no rows", nil, DefaultGridOptions(), ErrEmptyGrid},
		{"no columns", [][]int{{}}, DefaultGridOptions(), ErrEmptyGrid},
		{"ragged", [][]int{{1, 1}, {1}}, DefaultGridOptions(), ErrNonRectangular},
		{"zero threshold", [][]int{{1}}, GridOptions{LandThreshold: 0}, ErrBadThreshold},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewGridGraph(tc.grid, tc.opts); !errors.Is(err, tc.want) {
				t.Errorf("err = %v; want %v", err, tc.want)
			}
		})
	}
}

// TestNewGridGraph_DeepCopy ensures later edits to the input do not leak in.
func TestNewGridGraph_DeepCopy(t *testing.T) {
	grid := terrain()
	gg, err := From2D(grid, Conn4)
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}
	grid[0][0] = 0
	if gg.CellValues[0][0] != 1 {
		t.Errorf("CellValues[0][0] = %d; want 1", gg.CellValues[0][0])
	}
	if gg.Width != 4 || gg.Height != 3 {
		t.Errorf("size = %dx%d; want 4x3", gg.Width, gg.Height)
	}
	if x, y := gg.Coordinate(gg.Index(3, 2)); x != 3 || y != 2 {
		t.Errorf("Coordinate(Index(3,2)) = (%d,%d)", x, y)
	}
}

func TestMove_String(t *testing.T) {
	if got := NorthWest.String(); got != "NW" {
		t.Errorf("NorthWest = %q", got)
	}
	if got := Move(12).String(); got != "Move(12)" {
		t.Errorf("Move(12) = %q", got)
	}
	if !SouthEast.Diagonal() || South.Diagonal() {
		t.Error("Diagonal misreports SE or S")
	}
}

// TestExpand_Conn4 checks move order and entry costs on orthogonal moves.
func TestExpand_Conn4(t *testing.T) {
	gg, _ := From2D([][]int{{1, 2, 1}, {3, 0, 1}}, Conn4)

	got := gg.Expand(Cell{0, 0})
	want := []astar.Transition[Cell, Move]{
		{Action: East, To: Cell{1, 0}, Cost: 2},
		{Action: South, To: Cell{0, 1}, Cost: 3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand(0,0) = %v; want %v", got, want)
	}
	if got := gg.Expand(Cell{1, 1}); len(got) != 0 {
		t.Errorf("water cell expanded to %v", got)
	}
	if got := gg.Expand(Cell{-1, 0}); len(got) != 0 {
		t.Errorf("out-of-bounds cell expanded to %v", got)
	}
}

// TestExpand_Conn8 checks that diagonal moves cost value×√2.
func TestExpand_Conn8(t *testing.T) {
	gg, _ := From2D([][]int{{1, 2, 1}, {3, 0, 1}}, Conn8)
	diag := math.Sqrt2

	got := gg.Expand(Cell{1, 0})
	want := []astar.Transition[Cell, Move]{
		{Action: East, To: Cell{2, 0}, Cost: 1},
		{Action: SouthEast, To: Cell{2, 1}, Cost: diag},
		{Action: SouthWest, To: Cell{0, 1}, Cost: 3 * diag},
		{Action: West, To: Cell{0, 0}, Cost: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand(1,0) = %v; want %v", got, want)
	}
}

func TestShortestPath_Conn4(t *testing.T) {
	gg, _ := From2D(terrain(), Conn4)
	from, to := Cell{0, 0}, Cell{3, 2}

	res, err := gg.ShortestPath(from, to)
	if err != nil {
		t.Fatalf("ShortestPath: %v", err)
	}
	if res.Cost != 5 {
		t.Errorf("cost = %v; want 5", res.Cost)
	}
	wantActions := []Move{East, East, East, South, South}
	if !reflect.DeepEqual(res.Actions, wantActions) {
		t.Errorf("actions = %v; want %v", res.Actions, wantActions)
	}
	if err := astar.VerifyPlan(res, from, func(c Cell) bool { return c == to }, gg.Expand); err != nil {
		t.Errorf("VerifyPlan: %v", err)
	}
}

func TestShortestPath_Conn8(t *testing.T) {
	gg, _ := From2D(terrain(), Conn8)

	res, err := gg.ShortestPath(Cell{0, 0}, Cell{3, 2})
	if err != nil {
		t.Fatalf("ShortestPath: %v", err)
	}
	if math.Abs(res.Cost-(3+math.Sqrt2)) > 1e-9 {
		t.Errorf("cost = %v; want 3+√2", res.Cost)
	}
	wantActions := []Move{East, East, SouthEast, South}
	if !reflect.DeepEqual(res.Actions, wantActions) {
		t.Errorf("actions = %v; want %v", res.Actions, wantActions)
	}
}

func TestShortestPath_Endpoints(t *testing.T) {
	gg, _ := From2D(terrain(), Conn4)

	if _, err := gg.ShortestPath(Cell{0, 0}, Cell{9, 9}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("out of bounds goal: err = %v", err)
	}
	if _, err := gg.ShortestPath(Cell{2, 2}, Cell{0, 0}); !errors.Is(err, ErrBlockedCell) {
		t.Errorf("water start: err = %v", err)
	}

	res, err := gg.ShortestPath(Cell{1, 1}, Cell{1, 1})
	if err != nil {
		t.Fatalf("same cell: %v", err)
	}
	if len(res.Plan) != 1 || res.Cost != 0 || len(res.Actions) != 0 {
		t.Errorf("same cell result = %+v", res)
	}
}

func TestShortestPath_Unreachable(t *testing.T) {
	gg, _ := From2D([][]int{{1, 0, 1}}, Conn8)

	res, err := gg.ShortestPath(Cell{0, 0}, Cell{2, 0})
	if err != nil {
		t.Fatalf("ShortestPath: %v", err)
	}
	if res.Found() {
		t.Errorf("found plan %v across water", res.Plan)
	}
}

func TestShortestPath_ExpansionLimit(t *testing.T) {
	gg, _ := From2D(terrain(), Conn4)

	_, err := gg.ShortestPath(Cell{0, 0}, Cell{3, 2}, astar.WithMaxExpansions(2))
	if !errors.Is(err, astar.ErrExpansionLimit) {
		t.Errorf("err = %v; want ErrExpansionLimit", err)
	}
}

// randomTerrain fills a w×h grid with values 0..4 from a fixed LCG.
func randomTerrain(w, h int, seed uint32) [][]int {
	grid := make([][]int, h)
	for y := range grid {
		grid[y] = make([]int, w)
		for x := range grid[y] {
			seed = seed*1664525 + 1013904223
			grid[y][x] = int(seed>>16) % 5
		}
	}
	return grid
}

// TestHeuristic_ConsistentAndOptimal checks both heuristics against the
// consistency condition and against uniform-cost search.
func TestHeuristic_ConsistentAndOptimal(t *testing.T) {
	grid := randomTerrain(14, 11, 7)
	for _, conn := range []Connectivity{Conn4, Conn8} {
		gg, err := From2D(grid, conn)
		if err != nil {
			t.Fatalf("From2D failed: %v", err)
		}
		var land []Cell
		for y := 0; y < gg.Height; y++ {
			for x := 0; x < gg.Width; x++ {
				if gg.Passable(x, y) {
					land = append(land, Cell{x, y})
				}
			}
		}
		from := land[0]
		informed, blind := 0, 0
		for _, goal := range land[1:] {
			if err := astar.CheckConsistency(land, gg.Heuristic(goal), gg.Expand); err != nil {
				t.Fatalf("conn %d goal %v: %v", conn, goal, err)
			}
			res, err := gg.ShortestPath(from, goal)
			if err != nil {
				t.Fatalf("ShortestPath: %v", err)
			}
			ref, err := astar.UniformCost(from, func(c Cell) bool { return c == goal }, gg.Expand)
			if err != nil {
				t.Fatalf("UniformCost: %v", err)
			}
			if res.Found() != ref.Found() || math.Abs(res.Cost-ref.Cost) > 1e-9 {
				t.Errorf("conn %d goal %v: A* %v (found %v), UCS %v (found %v)",
					conn, goal, res.Cost, res.Found(), ref.Cost, ref.Found())
			}
			informed += res.Stats.Expanded
			blind += ref.Stats.Expanded
		}
		if informed >= blind {
			t.Errorf("conn %d: A* expanded %d states in total, UCS %d", conn, informed, blind)
		}
	}
}

// TestToGraph checks vertices and directed edge costs of the converted graph.
func TestToGraph(t *testing.T) {
	gg, _ := From2D([][]int{{1, 2}, {0, 1}}, Conn4)
	g := gg.ToGraph()

	if got := g.Vertices(); !reflect.DeepEqual(got, []string{"0,0", "1,0", "1,1"}) {
		t.Errorf("vertices = %v", got)
	}
	if g.EdgeCount() != 4 {
		t.Errorf("edges = %d; want 4", g.EdgeCount())
	}
	res, err := g.ShortestPath("1,1", []string{"0,0"}, nil)
	if err != nil {
		t.Fatalf("ShortestPath: %v", err)
	}
	// Entering 1,0 costs 2, then 0,0 costs 1.
	if res.Cost != 3 {
		t.Errorf("cost = %v; want 3", res.Cost)
	}
}
