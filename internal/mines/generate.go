package mines

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrUnplayable is returned when a board is too dense with mines to be
// worth playing. It is the only failure mode generation has.
var ErrUnplayable = errors.New("unplayable board: too many mines for its size")

type Format string

const (
	FormatPlain  Format = "plain"
	FormatFenced Format = "fenced"
	FormatRaw    Format = "raw"
)

func (f *Format) UnmarshalText(text []byte) error {
	switch v := Format(text); v {
	case FormatPlain, FormatFenced, FormatRaw:
		*f = v
		return nil
	default:
		return fmt.Errorf("unknown format %q", text)
	}
}

// Params configures one generation run. Schema tags let the HTTP front
// end decode it straight from a query string.
type Params struct {
	Rows        int    `schema:"rows" json:"rows"`
	Cols        int    `schema:"cols" json:"cols"`
	Mines       int    `schema:"mines" json:"mines"`
	MineName    string `schema:"mine" json:"mine"`
	Spacing     bool   `schema:"spacing" json:"spacing"`
	RevealFirst bool   `schema:"reveal_first" json:"revealFirst"`
	ZeroStart   bool   `schema:"zero_start" json:"zeroStart"`
	Format      Format `schema:"format" json:"format"`
}

func DefaultParams() Params {
	return Params{
		Rows:     9,
		Cols:     9,
		Mines:    10,
		MineName: "boom",
		Spacing:  true,
		// RevealFirst off
		ZeroStart: true,
		Format:    FormatPlain,
	}
}

// Playable reports whether the configuration passes the density gate.
// Non-positive dimensions and negative mine counts are rejected by the
// same gate rather than treated as a distinct error.
func (p Params) Playable() bool {
	return p.Rows >= 1 && p.Cols >= 1 && p.Mines >= 0 && p.Rows*p.Cols > p.Mines*2
}

// Generator derives its symbol table once from the params and is then
// reusable across runs; each run allocates its own board.
type Generator struct {
	params  Params
	symbols SymbolSet
}

func NewGenerator(params Params) *Generator {
	return &Generator{
		params:  params,
		symbols: NewSymbolSet(params.MineName, params.Spacing),
	}
}

func (g *Generator) Params() Params {
	return g.params
}

func (g *Generator) Symbols() SymbolSet {
	return g.symbols
}

// Result is one generated board plus the coordinate revealed by the
// initial reveal (NoCell when reveal-first was off).
type Result struct {
	Board   *Board
	Start   Point
	symbols SymbolSet
}

func (res *Result) Plain() string {
	return res.Board.Text(res.symbols)
}

func (res *Result) Fenced() string {
	return Fence(res.Plain())
}

// Start runs the four generation stages in order: grid initialization,
// mine placement, neighbor annotation, optional initial reveal. A nil
// rnd gets a freshly seeded generator; pass a deterministic one to get
// reproducible boards.
func (g *Generator) Start(rnd *rand.Rand) (*Result, error) {
	p := g.params
	if !p.Playable() {
		return nil, ErrUnplayable
	}
	if rnd == nil {
		rnd = NewRand()
	}

	board := NewBoard(p.Rows, p.Cols)
	board.placeMines(p.Mines, rnd)
	board.populate()

	start := NoCell
	if p.RevealFirst {
		start = board.revealStart(p.ZeroStart, rnd)
	}

	return &Result{Board: board, Start: start, symbols: g.symbols}, nil
}
