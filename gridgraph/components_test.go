package gridgraph

import (
	"errors"
	"reflect"
	"sort"
	"testing"
)

// TestConnectedComponents_Simple4 tests ConnectedComponents on a 4×3 grid
// with orthogonal connectivity (Conn4).
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: 2 islands of sizes 4 and 2.
func TestConnectedComponents_Simple4(t *testing.T) {
	grid := [][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	}
	gg, err := From2D(grid, Conn4)
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}

	comps := gg.ConnectedComponents()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}
	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	if want := []int{2, 4}; !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
}

// TestConnectedComponents_Diagonal8 checks that corner-touching cells join
// under Conn8 and stay apart under Conn4.
//
//	1 0 0 0 1
//	0 1 0 1 0
//	0 0 1 0 0
//	0 1 0 1 0
//	1 0 0 0 1
func TestConnectedComponents_Diagonal8(t *testing.T) {
	grid := [][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	}
	gg8, _ := From2D(grid, Conn8)
	if comps := gg8.ConnectedComponents(); len(comps) != 1 || len(comps[0]) != 9 {
		t.Errorf("Conn8 components = %v; want one of size 9", comps)
	}
	gg4, _ := From2D(grid, Conn4)
	if comps := gg4.ConnectedComponents(); len(comps) != 9 {
		t.Errorf("Conn4 components = %d; want 9", len(comps))
	}
}

// TestConnectedComponents_Threshold uses LandThreshold=2 so value 1 is water.
func TestConnectedComponents_Threshold(t *testing.T) {
	grid := [][]int{
		{1, 2, 3},
		{2, 1, 1},
	}
	gg, err := NewGridGraph(grid, GridOptions{LandThreshold: 2, Conn: Conn4})
	if err != nil {
		t.Fatalf("NewGridGraph failed: %v", err)
	}
	comps := gg.ConnectedComponents()
	if want := [][]int{{1, 2}, {3}}; !reflect.DeepEqual(comps, want) {
		t.Errorf("components = %v; want %v", comps, want)
	}
}

// TestExpandIsland_Bridge joins two islands through the cheaper top row.
//
//	1 1 0 0 1
//	1 0 0 0 1
func TestExpandIsland_Bridge(t *testing.T) {
	grid := [][]int{
		{1, 1, 0, 0, 1},
		{1, 0, 0, 0, 1},
	}
	gg, _ := From2D(grid, Conn4)

	path, cost, err := gg.ExpandIsland(0, 1)
	if err != nil {
		t.Fatalf("ExpandIsland failed: %v", err)
	}
	if cost != 2 {
		t.Errorf("cost = %d; want 2", cost)
	}
	if want := []int{1, 2, 3, 4}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
}

func TestExpandIsland_SameComponent(t *testing.T) {
	gg, _ := From2D([][]int{{1, 1}, {0, 1}}, Conn4)

	path, cost, err := gg.ExpandIsland(0, 0)
	if err != nil {
		t.Fatalf("ExpandIsland failed: %v", err)
	}
	if cost != 0 || len(path) != 1 {
		t.Errorf("path = %v cost = %d; want a single cell at cost 0", path, cost)
	}
}

func TestExpandIsland_InvalidIndex(t *testing.T) {
	gg, _ := From2D([][]int{{1, 0, 1}}, Conn4)

	for _, pair := range [][2]int{{-1, 0}, {0, 2}, {5, 1}} {
		if _, _, err := gg.ExpandIsland(pair[0], pair[1]); !errors.Is(err, ErrComponentIndex) {
			t.Errorf("ExpandIsland(%d,%d) err = %v; want ErrComponentIndex", pair[0], pair[1], err)
		}
	}
}
