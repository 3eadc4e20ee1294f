// Package mines generates minesweeper boards rendered as grids of
// spoiler-wrapped symbol tokens, e.g. for posting into a chat.
package mines

import (
	"encoding/json"
	"math/rand/v2"
)

// Cell content (Mined, Count) is fixed during generation and never
// changes afterwards; only Revealed flips, once, during the initial
// reveal.
type Cell struct {
	Mined    bool `json:"mined"`
	Count    int  `json:"count"`
	Revealed bool `json:"revealed"`
}

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NoCell is reported as the start point when nothing was revealed.
var NoCell = Point{X: -1, Y: -1}

// Board is a Rows x Cols grid stored row-major. safe holds the indices
// of all non-mine cells in the order populate visited them.
type Board struct {
	Rows, Cols int
	cells      []Cell
	safe       []int
}

func NewBoard(rows, cols int) *Board {
	return &Board{
		Rows:  rows,
		Cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

func (b *Board) index(x, y int) int {
	return y*b.Cols + x
}

func (b *Board) point(i int) Point {
	return Point{X: i % b.Cols, Y: i / b.Cols}
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.Cols && y >= 0 && y < b.Rows
}

func (b *Board) CellAt(x, y int) Cell {
	return b.cells[b.index(x, y)]
}

// placeMines scatters count mines by rejection sampling: draw a random
// coordinate, redraw if it is already mined. Terminates almost surely
// as long as count < Rows*Cols, which the playability gate guarantees.
func (b *Board) placeMines(count int, rnd *rand.Rand) {
	for placed := 0; placed < count; {
		y, x := rnd.IntN(b.Rows), rnd.IntN(b.Cols)
		i := b.index(x, y)
		if b.cells[i].Mined {
			continue
		}
		b.cells[i].Mined = true
		placed++
	}
}

// populate annotates every non-mine cell with its mined-neighbor count
// and records it in the safe-cell registry. Runs after placeMines and
// before any reveal; counts never depend on reveal state.
func (b *Board) populate() {
	for y := range b.Rows {
		for x := range b.Cols {
			i := b.index(x, y)
			if b.cells[i].Mined {
				continue
			}
			b.cells[i].Count = b.minedNeighbors(x, y)
			b.safe = append(b.safe, i)
		}
	}
}

func (b *Board) minedNeighbors(x, y int) (count int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if b.inBounds(x+dx, y+dy) && b.cells[b.index(x+dx, y+dy)].Mined {
				count++
			}
		}
	}
	return
}

func (b *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Rows  int    `json:"rows"`
		Cols  int    `json:"cols"`
		Cells []Cell `json:"cells"`
	}{b.Rows, b.Cols, b.cells})
}
