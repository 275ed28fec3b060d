package numblast

import (
	"errors"
	"math/rand"
)

// DigitRange is the number of distinct digit values (0-9).
const DigitRange = 10

// emptyCell marks a destroyed cell awaiting compaction/refill.
const emptyCell = int8(-1)

// ErrOutOfBounds is returned for coordinates outside the board.
var ErrOutOfBounds = errors.New("numblast: coordinate out of bounds")

// Grid is the game board: a square matrix of digits stored in row-major
// order (index = row*size + col). Cells hold a digit 0-9 or the empty marker.
type Grid struct {
	size  int
	cells []int8
}

// NewGrid creates a grid with every cell filled with a random digit.
func NewGrid(size int, rng *rand.Rand) *Grid {
	g := NewEmptyGrid(size)
	g.Randomize(rng)
	return g
}

// NewEmptyGrid creates a grid with all cells empty.
func NewEmptyGrid(size int) *Grid {
	g := &Grid{
		size:  size,
		cells: make([]int8, size*size),
	}
	for i := range g.cells {
		g.cells[i] = emptyCell
	}
	return g
}

// Size returns the board dimension.
func (g *Grid) Size() int {
	return g.size
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Row*g.size + c.Col
}

// InBounds returns true if the coordinate is within the board.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// DigitAt returns the digit at (row, col), or -1 for an empty cell.
// Returns ErrOutOfBounds for coordinates outside the board.
func (g *Grid) DigitAt(row, col int) (int, error) {
	c := C(row, col)
	if !g.InBounds(c) {
		return 0, ErrOutOfBounds
	}
	return int(g.cells[g.index(c)]), nil
}

// digit returns the cell value without bounds checking.
// Callers must hold a valid coordinate.
func (g *Grid) digit(c Coord) int8 {
	return g.cells[g.index(c)]
}

// SetDigit places a digit at the coordinate. Out-of-bounds writes are ignored.
func (g *Grid) SetDigit(c Coord, digit int) {
	if !g.InBounds(c) {
		return
	}
	g.cells[g.index(c)] = int8(digit)
}

// IsEmpty returns true if the cell holds the empty marker.
// Out-of-bounds cells read as empty.
func (g *Grid) IsEmpty(c Coord) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.digit(c) == emptyCell
}

// Clear marks every listed cell empty. Idempotent; out-of-bounds
// coordinates are ignored.
func (g *Grid) Clear(coords []Coord) {
	for _, c := range coords {
		if g.InBounds(c) {
			g.cells[g.index(c)] = emptyCell
		}
	}
}

// Compact slides all non-empty cells of each column downward, preserving
// their relative order and leaving empties at the top. In-place and
// deterministic.
func (g *Grid) Compact() {
	for col := 0; col < g.size; col++ {
		writeRow := g.size - 1
		for row := g.size - 1; row >= 0; row-- {
			v := g.cells[row*g.size+col]
			if v == emptyCell {
				continue
			}
			g.cells[writeRow*g.size+col] = v
			writeRow--
		}
		for row := writeRow; row >= 0; row-- {
			g.cells[row*g.size+col] = emptyCell
		}
	}
}

// Refill replaces every empty cell with a random digit. Afterwards the
// board holds no empty cells.
func (g *Grid) Refill(rng *rand.Rand) {
	for i, v := range g.cells {
		if v == emptyCell {
			g.cells[i] = int8(rng.Intn(DigitRange))
		}
	}
}

// Randomize fills every cell with a random digit, discarding prior content.
func (g *Grid) Randomize(rng *rand.Rand) {
	for i := range g.cells {
		g.cells[i] = int8(rng.Intn(DigitRange))
	}
}

// EmptyCount returns the number of empty cells.
func (g *Grid) EmptyCount() int {
	n := 0
	for _, v := range g.cells {
		if v == emptyCell {
			n++
		}
	}
	return n
}

// CellsWithDigit returns the coordinates of every cell holding the digit,
// scanning in row-major order.
func (g *Grid) CellsWithDigit(digit int) []Coord {
	var out []Coord
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			if g.cells[row*g.size+col] == int8(digit) {
				out = append(out, C(row, col))
			}
		}
	}
	return out
}

// FilledCells returns the coordinates of every non-empty cell in
// row-major order.
func (g *Grid) FilledCells() []Coord {
	var out []Coord
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			if g.cells[row*g.size+col] != emptyCell {
				out = append(out, C(row, col))
			}
		}
	}
	return out
}
