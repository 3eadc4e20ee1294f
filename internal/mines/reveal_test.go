package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func revealed(b *Board) int {
	return countCells(b, func(c Cell) bool { return c.Revealed })
}

func TestRevealFirstDisabled(t *testing.T) {
	params := DefaultParams()
	res, err := NewGenerator(params).Start(rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	assert.Equal(t, NoCell, res.Start)
	assert.Zero(t, revealed(res.Board))
}

func TestFloodFillRecursive(t *testing.T) {
	// a mine-free board is one connected zero-region
	b := NewBoard(5, 5)
	b.populate()

	seed := b.index(2, 2)
	b.cells[seed].Revealed = true
	b.floodFill(seed, true)

	assert.Equal(t, 25, revealed(b))
}

func TestFloodFillSingleStep(t *testing.T) {
	b := NewBoard(5, 5)
	b.populate()

	seed := b.index(2, 2)
	b.cells[seed].Revealed = true
	b.floodFill(seed, false)

	// only the seed's own 3x3 neighborhood, no chaining
	assert.Equal(t, 9, revealed(b))
	for _, p := range []Point{{1, 1}, {2, 1}, {3, 1}, {1, 2}, {2, 2}, {3, 2}, {1, 3}, {2, 3}, {3, 3}} {
		assert.True(t, b.CellAt(p.X, p.Y).Revealed, "cell %d:%d", p.X, p.Y)
	}
}

func TestFloodFillClipsAtEdges(t *testing.T) {
	b := NewBoard(3, 3)
	b.populate()

	seed := b.index(0, 0)
	b.cells[seed].Revealed = true
	b.floodFill(seed, false)

	assert.Equal(t, 4, revealed(b))
}

func TestZeroStartReveal(t *testing.T) {
	params := DefaultParams()
	params.RevealFirst = true

	res, err := NewGenerator(params).Start(rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	start := res.Start
	require.NotEqual(t, NoCell, start)

	cell := res.Board.CellAt(start.X, start.Y)
	assert.False(t, cell.Mined)
	assert.Zero(t, cell.Count)
	assert.True(t, cell.Revealed)
	assert.Greater(t, revealed(res.Board), 1)
}

func TestFloodFillSpillsNoMines(t *testing.T) {
	params := DefaultParams()
	params.Rows, params.Cols, params.Mines = 16, 16, 40
	params.RevealFirst = true

	res, err := NewGenerator(params).Start(rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	exposed := countCells(res.Board, func(c Cell) bool { return c.Mined && c.Revealed })
	assert.Zero(t, exposed)
}

func TestZeroStartFallback(t *testing.T) {
	// 2x2 with one mine cannot hold a zero cell, so zero-start falls
	// back to revealing a single safe cell without flood fill
	params := DefaultParams()
	params.Rows, params.Cols, params.Mines = 2, 2, 1
	params.RevealFirst = true

	res, err := NewGenerator(params).Start(rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	require.NotEqual(t, NoCell, res.Start)
	cell := res.Board.CellAt(res.Start.X, res.Start.Y)
	assert.False(t, cell.Mined)
	assert.True(t, cell.Revealed)
	assert.Equal(t, 1, revealed(res.Board))
}

func TestSingleRevealWhenZeroStartOff(t *testing.T) {
	params := DefaultParams()
	params.RevealFirst = true
	params.ZeroStart = false

	res, err := NewGenerator(params).Start(rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	require.NotEqual(t, NoCell, res.Start)
	assert.False(t, res.Board.CellAt(res.Start.X, res.Start.Y).Mined)
	assert.Equal(t, 1, revealed(res.Board))
}
