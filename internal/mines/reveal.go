package mines

import "math/rand/v2"

// revealStart unmasks the starting region, mimicking "first click is
// always safe". With zeroStart set and at least one zero-count safe
// cell on the board, a random zero cell is revealed and flood-filled;
// otherwise a single random safe cell is revealed with no fill. The
// fallback stays a one-cell reveal on purpose, even when zeroStart was
// requested.
func (b *Board) revealStart(zeroStart bool, rnd *rand.Rand) Point {
	if zeroStart {
		var zeroes []int
		for _, i := range b.safe {
			if b.cells[i].Count == 0 {
				zeroes = append(zeroes, i)
			}
		}
		if len(zeroes) > 0 {
			i := zeroes[rnd.IntN(len(zeroes))]
			b.cells[i].Revealed = true
			b.floodFill(i, true)
			return b.point(i)
		}
	}

	if len(b.safe) == 0 {
		return NoCell
	}
	i := b.safe[rnd.IntN(len(b.safe))]
	b.cells[i].Revealed = true
	return b.point(i)
}

// floodFill expands from a zero-count seed over a FIFO worklist. Every
// masked cell in a seed's 3x3 neighborhood (clipped to the board, seed
// included) is revealed; newly revealed zero cells become seeds in
// turn. Each cell reveals at most once, which bounds the work by the
// grid size. With recurse off only the given seed's neighborhood is
// processed, no chaining.
func (b *Board) floodFill(seed int, recurse bool) {
	queue := []int{seed}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		x, y := i%b.Cols, i/b.Cols
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if !b.inBounds(x+dx, y+dy) {
					continue
				}
				j := b.index(x+dx, y+dy)
				if b.cells[j].Revealed {
					continue
				}
				b.cells[j].Revealed = true
				if recurse && !b.cells[j].Mined && b.cells[j].Count == 0 {
					queue = append(queue, j)
				}
			}
		}
	}
}
