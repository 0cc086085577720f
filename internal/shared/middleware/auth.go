package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog/hlog"

	"github.com/andrasnagy-data/bloglist/internal/shared/apperr"
	"github.com/andrasnagy-data/bloglist/internal/shared/model"
	"github.com/andrasnagy-data/bloglist/internal/shared/respond"
	"github.com/andrasnagy-data/bloglist/internal/shared/store"
	"github.com/andrasnagy-data/bloglist/internal/shared/token"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	tokenKey contextKey = "token"
	userKey  contextKey = "user"
)

type (
	TokenVerifier interface {
		Verify(raw string) (*token.Claims, error)
	}

	UserFinder interface {
		FindUserByID(ctx context.Context, id string) (*model.User, error)
	}

	// Authenticator guards the routes that need an identity.
	Authenticator func(http.Handler) http.Handler
)

// GetToken returns the raw bearer token of the request, empty when none was sent.
func GetToken(ctx context.Context) string {
	tok, _ := ctx.Value(tokenKey).(string)
	return tok
}

// GetUser returns the authenticated user, nil outside routes wrapped by NewUserExtractor.
func GetUser(ctx context.Context) *model.User {
	user, _ := ctx.Value(userKey).(*model.User)
	return user
}

// WithUser stores user in ctx the way NewUserExtractor does.
func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func bearerToken(header string) string {
	const prefix = "bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// TokenExtractor copies the bearer credential of every request into its context. A missing or
// malformed Authorization header yields an empty token, never an error.
func TokenExtractor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), tokenKey, bearerToken(r.Header.Get("Authorization")))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// NewUserExtractor creates middleware for routes that need an identity. It verifies the token
// left by TokenExtractor, resolves the embedded id to a user and adds it to the request context.
// Requests without a valid token or whose user no longer exists are answered with 401.
func NewUserExtractor(verifier TokenVerifier, users UserFinder) Authenticator {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			logger := hlog.FromRequest(r)

			claims, err := verifier.Verify(GetToken(ctx))
			if err != nil {
				logger.Debug().Err(err).Msg("Rejected bearer token")
				respond.Err(w, r, apperr.ErrUnauthenticated)
				return
			}

			user, err := users.FindUserByID(ctx, claims.UserID)
			if err != nil {
				logger.Debug().Err(err).Str("user_id", claims.UserID).Msg("Token user could not be resolved")
				respond.Err(w, r, apperr.ErrUnauthenticated)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
		})
	}
}

func NewAuthenticator(tokens *token.Service, st store.Store) Authenticator {
	return NewUserExtractor(tokens, st)
}
