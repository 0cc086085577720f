package store

import (
	"context"
	"errors"

	"github.com/andrasnagy-data/bloglist/internal/shared/model"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidID         = errors.New("invalid identifier")
	ErrDuplicateUsername = errors.New("duplicate username")
)

type (
	// Store is the persistence handle shared by all components. Backends live in the
	// mongostore, pgstore and memstore packages.
	Store interface {
		UserRepo
		PostRepo
		Ping(ctx context.Context) error
		Close(ctx context.Context) error
	}

	UserRepo interface {
		// CreateUser inserts u and sets u.ID. A taken username yields ErrDuplicateUsername.
		CreateUser(ctx context.Context, u *model.User) error
		FindUserByID(ctx context.Context, id string) (*model.User, error)
		FindUserByUsername(ctx context.Context, username string) (*model.User, error)
		FindUsersByIDs(ctx context.Context, ids []string) ([]model.User, error)
		ListUsers(ctx context.Context) ([]model.User, error)
		// AppendUserPost is a read-modify-write on the user's blogs list.
		AppendUserPost(ctx context.Context, userID, postID string) error
	}

	PostRepo interface {
		// CreatePost inserts p and sets p.ID.
		CreatePost(ctx context.Context, p *model.Post) error
		FindPostByID(ctx context.Context, id string) (*model.Post, error)
		FindPostsByIDs(ctx context.Context, ids []string) ([]model.Post, error)
		ListPosts(ctx context.Context) ([]model.Post, error)
		UpdatePost(ctx context.Context, id string, fields model.PostFields) (*model.Post, error)
		DeletePost(ctx context.Context, id string) error
	}
)
