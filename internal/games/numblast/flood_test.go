package numblast

import (
	"math/rand"
	"testing"
)

// gridFromRows builds a grid from digit rows, -1 for empty.
func gridFromRows(t *testing.T, rows [][]int) *Grid {
	t.Helper()
	g := NewEmptyGrid(len(rows))
	for r, row := range rows {
		if len(row) != len(rows) {
			t.Fatalf("row %d has %d cells, want %d", r, len(row), len(rows))
		}
		for c, d := range row {
			if d >= 0 {
				g.SetDigit(C(r, c), d)
			}
		}
	}
	return g
}

func coordSet(coords []Coord) map[Coord]bool {
	set := make(map[Coord]bool, len(coords))
	for _, c := range coords {
		set[c] = true
	}
	return set
}

func TestFindGroupShapes(t *testing.T) {
	grid := gridFromRows(t, [][]int{
		{5, 5, 1, 2},
		{3, 5, 1, 2},
		{5, 5, 9, 9},
		{0, 0, 0, 9},
	})

	tests := []struct {
		name  string
		start Coord
		want  []Coord
	}{
		{
			name:  "L-shaped region",
			start: C(0, 0),
			want:  []Coord{C(0, 0), C(0, 1), C(1, 1), C(2, 1), C(2, 0)},
		},
		{
			name:  "vertical pair",
			start: C(0, 2),
			want:  []Coord{C(0, 2), C(1, 2)},
		},
		{
			name:  "corner-connected nines",
			start: C(2, 2),
			want:  []Coord{C(2, 2), C(2, 3), C(3, 3)},
		},
		{
			name:  "singleton",
			start: C(1, 0),
			want:  []Coord{C(1, 0)},
		},
		{
			name:  "bottom zeros",
			start: C(3, 1),
			want:  []Coord{C(3, 0), C(3, 1), C(3, 2)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FindGroup(grid, tc.start)

			gotSet := coordSet(got)
			wantSet := coordSet(tc.want)
			if len(got) != len(tc.want) {
				t.Fatalf("group size = %d (%v), want %d", len(got), got, len(tc.want))
			}
			for c := range wantSet {
				if !gotSet[c] {
					t.Errorf("missing coordinate %v", c)
				}
			}
		})
	}
}

func TestFindGroupMembersShareDigit(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	grid := NewGrid(8, rng)

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			start := C(row, col)
			target, _ := grid.DigitAt(row, col)
			group := FindGroup(grid, start)

			if len(group) == 0 {
				t.Fatalf("empty group for filled cell %v", start)
			}

			inGroup := coordSet(group)
			if !inGroup[start] {
				t.Errorf("group from %v does not contain the start", start)
			}

			for _, m := range group {
				d, err := grid.DigitAt(m.Row, m.Col)
				if err != nil {
					t.Fatalf("member %v out of bounds", m)
				}
				if d != target {
					t.Errorf("member %v digit = %d, want %d", m, d, target)
				}
			}

			// Maximality: no same-digit 4-neighbor of a member is excluded
			for _, m := range group {
				for _, delta := range neighbors4 {
					n := m.Add(delta)
					if !grid.InBounds(n) {
						continue
					}
					if d, _ := grid.DigitAt(n.Row, n.Col); d == target && !inGroup[n] {
						t.Errorf("neighbor %v of %v excluded from group", n, m)
					}
				}
			}
		}
	}
}

func TestFindGroupUniformBoard(t *testing.T) {
	// Every cell holds the same digit; the group must cover the whole board
	// exactly once even though the adjacency graph is full of cycles.
	grid := NewEmptyGrid(6)
	for row := 0; row < 6; row++ {
		for col := 0; col < 6; col++ {
			grid.SetDigit(C(row, col), 4)
		}
	}

	group := FindGroup(grid, C(3, 3))
	if len(group) != 36 {
		t.Fatalf("group size = %d, want 36", len(group))
	}
	if len(coordSet(group)) != 36 {
		t.Error("group contains duplicate coordinates")
	}
}

func TestFindGroupEdgeCases(t *testing.T) {
	grid := NewEmptyGrid(4)
	grid.SetDigit(C(0, 0), 2)

	if got := FindGroup(grid, C(-1, 0)); got != nil {
		t.Errorf("out-of-bounds start = %v, want nil", got)
	}
	if got := FindGroup(grid, C(2, 2)); got != nil {
		t.Errorf("empty start = %v, want nil", got)
	}
	if got := FindGroup(grid, C(0, 0)); len(got) != 1 {
		t.Errorf("lone cell group = %v, want size 1", got)
	}
}

func TestFindGroupDoesNotMutate(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	grid := NewGrid(5, rng)

	before := make([]int8, len(grid.cells))
	copy(before, grid.cells)

	FindGroup(grid, C(2, 2))

	for i := range before {
		if grid.cells[i] != before[i] {
			t.Fatalf("FindGroup mutated cell %d", i)
		}
	}
}
