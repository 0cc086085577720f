package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/andrasnagy-data/bloglist/internal/shared/apperr"
	"github.com/andrasnagy-data/bloglist/internal/shared/password"
	"github.com/andrasnagy-data/bloglist/internal/shared/store"
	"github.com/andrasnagy-data/bloglist/internal/shared/token"
)

var (
	ErrInvalidCredentials = apperr.Unauthorized("invalid username or password")
)

type (
	servicer interface {
		Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	}

	tokenIssuer interface {
		Issue(id, username string) (string, error)
	}

	service struct {
		users  store.UserRepo
		tokens tokenIssuer
	}
)

func NewAuthService(st store.Store, tokens *token.Service) servicer {
	return &service{
		users:  st,
		tokens: tokens,
	}
}

// Login checks username and password and issues a bearer token for the user. Unknown users,
// wrong passwords and missing fields all yield ErrInvalidCredentials.
func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.FindUserByUsername(ctx, req.Username)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !password.Verify(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	return &LoginResponse{
		Token:    signed,
		Username: user.Username,
		Name:     user.Name,
	}, nil
}
