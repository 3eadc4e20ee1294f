package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type application struct {
	logger *slog.Logger
}

func (app application) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/board", app.handleBoard)
	mux.HandleFunc("GET /v1/status", app.handleStatus)
	return mux
}

func (app application) handleStatus(w http.ResponseWriter, r *http.Request) {
	app.replyText(w, "ready to sweep")
}

func (app application) badRequest(w http.ResponseWriter) {
	w.WriteHeader(http.StatusBadRequest)
	w.Write([]byte("your request is invalid"))
}

func (app application) replyText(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(text)); err != nil {
		app.logger.Error("failed to send text", slog.Any("error", err))
	}
}

func (app application) replyWith(w http.ResponseWriter, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("internal error"))
		app.logger.Error("failed to marshal json", slog.Any("error", err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err = w.Write(payload); err != nil {
		app.logger.Error("failed to send data", slog.Any("error", err))
	}
}
