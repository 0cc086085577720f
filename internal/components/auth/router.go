package auth

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/andrasnagy-data/bloglist/internal/shared/respond"
)

type (
	Router struct {
		service servicer
	}
)

func NewRouter(service servicer) chi.Router {
	router := &Router{service: service}
	return router.Routes()
}

func (r *Router) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/", r.HandleLogin)
	return router
}

func (r *Router) HandleLogin(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	var body LoginRequest
	if err := respond.Decode(req, &body); err != nil {
		respond.Err(w, req, err)
		return
	}

	logger.Debug().Str("username", body.Username).Msg("Login attempt")

	resp, err := r.service.Login(ctx, body)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			logger.Warn().Str("username", body.Username).Msg("Login failed: invalid credentials")
		}
		respond.Err(w, req, err)
		return
	}

	logger.Debug().Str("username", resp.Username).Msg("Login successful")
	respond.JSON(w, req, http.StatusOK, resp)
}
