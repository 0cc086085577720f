package blog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/andrasnagy-data/bloglist/internal/shared/middleware"
	"github.com/andrasnagy-data/bloglist/internal/shared/respond"
)

type (
	Router struct {
		service servicer
		auth    middleware.Authenticator
	}
)

func NewRouter(service servicer, auth middleware.Authenticator) chi.Router {
	router := &Router{service: service, auth: auth}
	return router.Routes()
}

func (r *Router) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", r.ListPosts)
	router.Get("/stats", r.GetStats)
	router.Put("/{id}", r.UpdatePost)

	router.Group(func(authed chi.Router) {
		authed.Use(r.auth)
		authed.Post("/", r.CreatePost)
		authed.Delete("/{id}", r.DeletePost)
	})

	return router
}

// ListPosts returns all posts with their owner expanded
func (r *Router) ListPosts(w http.ResponseWriter, req *http.Request) {
	posts, err := r.service.List(req.Context())
	if err != nil {
		respond.Err(w, req, err)
		return
	}
	respond.JSON(w, req, http.StatusOK, posts)
}

func (r *Router) GetStats(w http.ResponseWriter, req *http.Request) {
	stats, err := r.service.Stats(req.Context())
	if err != nil {
		respond.Err(w, req, err)
		return
	}
	respond.JSON(w, req, http.StatusOK, stats)
}

// CreatePost stores a post owned by the authenticated user
func (r *Router) CreatePost(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)
	user := middleware.GetUser(ctx)

	var body CreatePostIn
	if err := respond.Decode(req, &body); err != nil {
		respond.Err(w, req, err)
		return
	}

	post, err := r.service.Create(ctx, body, user)
	if err != nil {
		logger.Debug().Err(err).Str("user_id", user.ID).Msg("Create post failed")
		respond.Err(w, req, err)
		return
	}

	logger.Info().Str("post_id", post.ID).Str("user_id", user.ID).Msg("Post created")
	respond.JSON(w, req, http.StatusCreated, post)
}

func (r *Router) UpdatePost(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	id := chi.URLParam(req, "id")

	var body UpdatePostIn
	if err := respond.Decode(req, &body); err != nil {
		respond.Err(w, req, err)
		return
	}

	post, err := r.service.Update(ctx, id, body)
	if err != nil {
		hlog.FromRequest(req).Debug().Err(err).Str("post_id", id).Msg("Update post failed")
		respond.Err(w, req, err)
		return
	}
	respond.JSON(w, req, http.StatusOK, post)
}

// DeletePost removes a post owned by the authenticated user
func (r *Router) DeletePost(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)
	user := middleware.GetUser(ctx)
	id := chi.URLParam(req, "id")

	if err := r.service.Delete(ctx, id, user); err != nil {
		logger.Warn().Err(err).Str("post_id", id).Str("user_id", user.ID).Msg("Delete post refused")
		respond.Err(w, req, err)
		return
	}

	logger.Info().Str("post_id", id).Str("user_id", user.ID).Msg("Post deleted")
	w.WriteHeader(http.StatusNoContent)
}
