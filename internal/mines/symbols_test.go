package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpoiler(t *testing.T) {
	assert.Equal(t, "|| :boom: ||", Spoiler("boom", true))
	assert.Equal(t, "||:boom:||", Spoiler("boom", false))
	assert.Equal(t, "|| :three: ||", Spoiler("three", true))
}

func TestSymbolSetCell(t *testing.T) {
	sym := NewSymbolSet("boom", true)

	assert.Equal(t, "|| :boom: ||", sym.Cell(Cell{Mined: true}))
	assert.Equal(t, ":boom:", sym.Cell(Cell{Mined: true, Revealed: true}))
	assert.Equal(t, "|| :five: ||", sym.Cell(Cell{Count: 5}))
	assert.Equal(t, ":five:", sym.Cell(Cell{Count: 5, Revealed: true}))
}

func TestTextMineFree(t *testing.T) {
	params := DefaultParams()
	params.Rows, params.Cols, params.Mines = 2, 2, 0

	res, err := NewGenerator(params).Start(rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	want := "|| :zero: || || :zero: ||\n|| :zero: || || :zero: ||"
	assert.Equal(t, want, res.Plain())
}

func TestTextNoSpacing(t *testing.T) {
	params := DefaultParams()
	params.Rows, params.Cols, params.Mines = 1, 2, 0
	params.Spacing = false

	res, err := NewGenerator(params).Start(rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	assert.Equal(t, "||:zero:||||:zero:||", res.Plain())
}

func TestFenced(t *testing.T) {
	params := DefaultParams()
	params.Rows, params.Cols, params.Mines = 1, 1, 0

	res, err := NewGenerator(params).Start(rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	assert.Equal(t, "```\n|| :zero: ||\n```", res.Fenced())
}

func TestCustomMineSymbol(t *testing.T) {
	params := DefaultParams()
	params.Rows, params.Cols, params.Mines = 1, 1, 0
	params.MineName = "bomb"

	sym := NewGenerator(params).Symbols()
	assert.Equal(t, "|| :bomb: ||", sym.Cell(Cell{Mined: true}))
}
