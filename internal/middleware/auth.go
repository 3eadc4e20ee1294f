package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/croveer/minesweeper-gen/internal/config"
)

// Auth requires a valid bearer token on every request when a secret is
// configured; otherwise it passes everything through.
func Auth(logger *slog.Logger, auth *config.Auth) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !auth.Enabled() {
				next.ServeHTTP(w, r)
				return
			}

			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if err := auth.Verify(raw); err != nil {
				logger.Debug("rejected token", slog.Any("error", err))
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
