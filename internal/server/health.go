package server

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/hlog"

	"github.com/andrasnagy-data/bloglist/internal/shared/respond"
	"github.com/andrasnagy-data/bloglist/internal/shared/store"
)

const healthTimeout = 2 * time.Second

type (
	pinger interface {
		Ping(ctx context.Context) error
	}

	// HealthSrvc reports whether the store answers
	HealthSrvc struct {
		db pinger
	}

	// HealthResponse represents the response structure for health check endpoint
	HealthResponse struct {
		Status    string    `json:"status"`
		Timestamp time.Time `json:"timestamp"`
		Database  bool      `json:"database"`
	}
)

func NewHealthHandler(srvc *HealthSrvc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := hlog.FromRequest(r)

		response := srvc.check(r.Context())

		if response.Database {
			logger.Debug().Msg("Database healthcheck ok")
			respond.JSON(w, r, http.StatusOK, response)
			return
		}
		logger.Error().Msg("Database healthcheck failed")
		respond.JSON(w, r, http.StatusServiceUnavailable, response)
	}
}

func NewHealthSrvc(st store.Store) *HealthSrvc {
	return &HealthSrvc{db: st}
}

func (s *HealthSrvc) check(ctx context.Context) HealthResponse {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	dbOk := s.db.Ping(ctx) == nil
	status := "serving"
	if !dbOk {
		status = "not serving"
	}

	return HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Database:  dbOk,
	}
}
