package numblast

// FindGroup returns the maximal connected region of cells sharing the digit
// at the start coordinate, using 4-directional adjacency. The traversal is an
// explicit stack walk with a visited set, so cyclic adjacency cannot loop and
// deep regions cannot overflow the call stack. The grid is not mutated.
//
// Returns nil for an out-of-bounds or empty start cell; a lone cell yields a
// region of size 1.
func FindGroup(g *Grid, start Coord) []Coord {
	if !g.InBounds(start) {
		return nil
	}
	target := g.digit(start)
	if target == emptyCell {
		return nil
	}

	visited := make([]bool, g.size*g.size)
	visited[g.index(start)] = true

	stack := make([]Coord, 0, 16)
	stack = append(stack, start)

	group := make([]Coord, 0, 16)
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		group = append(group, c)

		for _, d := range neighbors4 {
			n := c.Add(d)
			if !g.InBounds(n) {
				continue
			}
			idx := g.index(n)
			if visited[idx] || g.cells[idx] != target {
				continue
			}
			visited[idx] = true
			stack = append(stack, n)
		}
	}

	return group
}
