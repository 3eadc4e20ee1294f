package main

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gorilla/schema"

	"github.com/croveer/minesweeper-gen/internal/mines"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// decodeParams overlays query values on top of the defaults, so a bare
// GET /v1/board produces the standard 9x9 board with ten mines.
func decodeParams(query url.Values) (mines.Params, error) {
	params := mines.DefaultParams()
	err := decoder.Decode(&params, query)
	return params, err
}

type boardDTO struct {
	Board *mines.Board `json:"board"`
	Start mines.Point  `json:"start"`
}

func (app application) handleBoard(w http.ResponseWriter, r *http.Request) {
	params, err := decodeParams(r.URL.Query())
	if err != nil {
		app.badRequest(w)
		return
	}

	res, err := mines.NewGenerator(params).Start(nil)
	if errors.Is(err, mines.ErrUnplayable) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(err.Error()))
		return
	}

	switch params.Format {
	case mines.FormatRaw:
		app.replyWith(w, boardDTO{Board: res.Board, Start: res.Start})
	case mines.FormatFenced:
		app.replyText(w, res.Fenced())
	default:
		app.replyText(w, res.Plain())
	}
}
