package user

import (
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
	router.Get("/", r.ListUsers)
	router.Post("/", r.CreateUser)
	return router
}

func (r *Router) ListUsers(w http.ResponseWriter, req *http.Request) {
	users, err := r.service.List(req.Context())
	if err != nil {
		respond.Err(w, req, err)
		return
	}
	respond.JSON(w, req, http.StatusOK, users)
}

// CreateUser registers a new account
func (r *Router) CreateUser(w http.ResponseWriter, req *http.Request) {
	logger := hlog.FromRequest(req)

	var body CreateUserIn
	if err := respond.Decode(req, &body); err != nil {
		respond.Err(w, req, err)
		return
	}

	created, err := r.service.Create(req.Context(), body)
	if err != nil {
		logger.Debug().Err(err).Str("username", body.Username).Msg("Registration rejected")
		respond.Err(w, req, err)
		return
	}

	logger.Info().Str("username", created.Username).Str("user_id", created.ID).Msg("User registered")
	respond.JSON(w, req, http.StatusCreated, created)
}
