package middleware

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/andrasnagy-data/bloglist/internal/shared/respond"
)

// Recoverer turns a handler panic into a 500 JSON response. The panic value is logged, never sent.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil || rec == http.ErrAbortHandler {
				if rec != nil {
					panic(rec)
				}
				return
			}
			hlog.FromRequest(r).Error().
				Err(fmt.Errorf("panic: %v", rec)).
				Str("method", r.Method).
				Str("url", r.URL.Path).
				Msg("Recovered from panic")
			respond.Error(w, r, http.StatusInternalServerError, "internal server error")
		}()

		next.ServeHTTP(w, r)
	})
}
