// Package memstore keeps users and posts in process memory. It issues the same ObjectID-style
// identifiers as the MongoDB backend so clients cannot tell the two apart. Used by tests and by
// DATABASE_URL=memory:// for local runs.
package memstore

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/andrasnagy-data/bloglist/internal/shared/model"
	"github.com/andrasnagy-data/bloglist/internal/shared/store"
)

type Store struct {
	mu        sync.RWMutex
	users     map[string]*model.User
	userOrder []string
	posts     map[string]*model.Post
	postOrder []string
}

var _ store.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		users: make(map[string]*model.User),
		posts: make(map[string]*model.Post),
	}
}

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Close(context.Context) error { return nil }

// canonicalID returns id in the lower-case hex form the maps are keyed by.
func canonicalID(id string) (string, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", store.ErrInvalidID
	}
	return oid.Hex(), nil
}

func copyUser(u *model.User) model.User {
	out := *u
	out.Blogs = append([]string{}, u.Blogs...)
	return out
}

func (s *Store) CreateUser(_ context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == u.Username {
			return store.ErrDuplicateUsername
		}
	}

	u.ID = primitive.NewObjectID().Hex()
	if u.Blogs == nil {
		u.Blogs = []string{}
	}
	stored := copyUser(u)
	s.users[u.ID] = &stored
	s.userOrder = append(s.userOrder, u.ID)
	return nil
}

func (s *Store) FindUserByID(_ context.Context, id string) (*model.User, error) {
	id, err := canonicalID(id)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := copyUser(u)
	return &out, nil
}

func (s *Store) FindUserByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.userOrder {
		if u := s.users[id]; u.Username == username {
			out := copyUser(u)
			return &out, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) FindUsersByIDs(_ context.Context, ids []string) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := []model.User{}
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			users = append(users, copyUser(u))
		}
	}
	return users, nil
}

func (s *Store) ListUsers(context.Context) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]model.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		users = append(users, copyUser(s.users[id]))
	}
	return users, nil
}

func (s *Store) AppendUserPost(_ context.Context, userID, postID string) error {
	userID, err := canonicalID(userID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return store.ErrNotFound
	}
	u.Blogs = append(u.Blogs, postID)
	return nil
}

func (s *Store) CreatePost(_ context.Context, p *model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = primitive.NewObjectID().Hex()
	stored := *p
	s.posts[p.ID] = &stored
	s.postOrder = append(s.postOrder, p.ID)
	return nil
}

func (s *Store) FindPostByID(_ context.Context, id string) (*model.Post, error) {
	id, err := canonicalID(id)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.posts[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := *p
	return &out, nil
}

func (s *Store) FindPostsByIDs(_ context.Context, ids []string) ([]model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := []model.Post{}
	for _, id := range ids {
		if p, ok := s.posts[id]; ok {
			posts = append(posts, *p)
		}
	}
	return posts, nil
}

func (s *Store) ListPosts(context.Context) ([]model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]model.Post, 0, len(s.postOrder))
	for _, id := range s.postOrder {
		posts = append(posts, *s.posts[id])
	}
	return posts, nil
}

func (s *Store) UpdatePost(_ context.Context, id string, fields model.PostFields) (*model.Post, error) {
	id, err := canonicalID(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	p.Title = fields.Title
	p.Author = fields.Author
	p.URL = fields.URL
	p.Likes = fields.Likes

	out := *p
	return &out, nil
}

func (s *Store) DeletePost(_ context.Context, id string) error {
	id, err := canonicalID(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.posts, id)
	for i, pid := range s.postOrder {
		if pid == id {
			s.postOrder = append(s.postOrder[:i], s.postOrder[i+1:]...)
			break
		}
	}
	return nil
}
