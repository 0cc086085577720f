package respond

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/andrasnagy-data/bloglist/internal/shared/apperr"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("Failed to encode response")
	}
}

func Error(w http.ResponseWriter, r *http.Request, status int, msg string) {
	JSON(w, r, status, ErrorResponse{Error: msg})
}

// Err translates err through apperr. Unknown errors are logged and answered with a bare 500.
func Err(w http.ResponseWriter, r *http.Request, err error) {
	status, msg, known := apperr.Status(err)
	if !known {
		hlog.FromRequest(r).Error().Err(err).Str("url", r.URL.Path).Msg("Unhandled error")
	}
	Error(w, r, status, msg)
}

// Decode reads a JSON body into v. An empty body leaves v untouched.
func Decode(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return nil
	default:
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apperr.ErrBodyTooLarge
		}
		return apperr.ErrMalformedBody
	}
}
