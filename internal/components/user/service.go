package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/andrasnagy-data/bloglist/internal/shared/apperr"
	"github.com/andrasnagy-data/bloglist/internal/shared/model"
	"github.com/andrasnagy-data/bloglist/internal/shared/password"
	"github.com/andrasnagy-data/bloglist/internal/shared/store"
)

const (
	minPasswordLen = 3
	minUsernameLen = 3
)

type (
	servicer interface {
		Create(ctx context.Context, in CreateUserIn) (*CreateUserOut, error)
		List(ctx context.Context) ([]UserOut, error)
	}

	service struct {
		store store.Store
	}
)

func NewUserService(st store.Store) servicer {
	return &service{store: st}
}

// validate checks password before username so that a weak password is reported first.
func validate(in CreateUserIn) error {
	switch {
	case in.Password == "":
		return apperr.Validation("password is required")
	case len([]rune(in.Password)) < minPasswordLen:
		return apperr.Validation("password must be at least 3 characters long")
	case in.Username == "":
		return apperr.Validation("username is required")
	case len([]rune(in.Username)) < minUsernameLen:
		return apperr.Validation("username must be at least 3 characters long")
	}
	return nil
}

// Create registers a user. The username is checked for uniqueness up front and again by the store.
func (s *service) Create(ctx context.Context, in CreateUserIn) (*CreateUserOut, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	_, err := s.store.FindUserByUsername(ctx, in.Username)
	switch {
	case err == nil:
		return nil, apperr.Validation("username must be unique")
	case !errors.Is(err, store.ErrNotFound):
		return nil, err
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u := &model.User{
		Username:     in.Username,
		Name:         in.Name,
		PasswordHash: hash,
		Blogs:        []string{},
	}
	err = s.store.CreateUser(ctx, u)
	if errors.Is(err, store.ErrDuplicateUsername) {
		return nil, apperr.Validation("username must be unique")
	}
	if err != nil {
		return nil, err
	}

	return &CreateUserOut{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Blogs:    []string{},
	}, nil
}

// List returns all users with their posts expanded. Post ids that no longer resolve are skipped.
func (s *service) List(ctx context.Context) ([]UserOut, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, u := range users {
		ids = append(ids, u.Blogs...)
	}

	posts := make(map[string]PostSummary, len(ids))
	if len(ids) > 0 {
		found, err := s.store.FindPostsByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("resolving user posts: %w", err)
		}
		for _, p := range found {
			posts[p.ID] = PostSummary{ID: p.ID, Title: p.Title, Author: p.Author, URL: p.URL}
		}
	}

	out := make([]UserOut, 0, len(users))
	for _, u := range users {
		entry := UserOut{
			ID:       u.ID,
			Username: u.Username,
			Name:     u.Name,
			Blogs:    make([]PostSummary, 0, len(u.Blogs)),
		}
		for _, id := range u.Blogs {
			if p, ok := posts[id]; ok {
				entry.Blogs = append(entry.Blogs, p)
			}
		}
		out = append(out, entry)
	}
	return out, nil
}
