// Package middleware wraps HTTP handlers with the cross-cutting
// concerns of the board API: logging, CORS and token auth.
package middleware

import "net/http"

type Middleware func(http.Handler) http.Handler

// Wrap applies mws to h in reverse request order: the first listed
// middleware sees the request last.
func Wrap(h http.Handler, mws ...Middleware) http.Handler {
	for _, mw := range mws {
		h = mw(h)
	}
	return h
}
