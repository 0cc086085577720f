package blog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/andrasnagy-data/bloglist/internal/shared/apperr"
	"github.com/andrasnagy-data/bloglist/internal/shared/model"
	"github.com/andrasnagy-data/bloglist/internal/shared/store"
)

type (
	servicer interface {
		List(ctx context.Context) ([]PostWithUserOut, error)
		Create(ctx context.Context, in CreatePostIn, owner *model.User) (*PostOut, error)
		Update(ctx context.Context, id string, in UpdatePostIn) (*PostOut, error)
		Delete(ctx context.Context, id string, actor *model.User) error
		Stats(ctx context.Context) (*StatsOut, error)
	}

	service struct {
		store store.Store
	}
)

func NewBlogService(st store.Store) servicer {
	return &service{store: st}
}

func toPostOut(p *model.Post) *PostOut {
	return &PostOut{
		ID:     p.ID,
		Title:  p.Title,
		Author: p.Author,
		URL:    p.URL,
		Likes:  p.Likes,
		User:   p.UserID,
	}
}

func validateFields(title, url string) error {
	if strings.TrimSpace(title) == "" {
		return apperr.Validation("title is required")
	}
	if strings.TrimSpace(url) == "" {
		return apperr.Validation("url is required")
	}
	return nil
}

func likesOrZero(likes *int) int {
	if likes == nil {
		return 0
	}
	return *likes
}

// List returns every post with its owner expanded.
func (s *service) List(ctx context.Context) ([]PostWithUserOut, error) {
	posts, err := s.store.ListPosts(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(posts))
	seen := make(map[string]bool, len(posts))
	for _, p := range posts {
		if p.UserID != "" && !seen[p.UserID] {
			seen[p.UserID] = true
			ids = append(ids, p.UserID)
		}
	}

	owners := make(map[string]*UserSummary, len(ids))
	if len(ids) > 0 {
		users, err := s.store.FindUsersByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("resolving post owners: %w", err)
		}
		for _, u := range users {
			owners[u.ID] = &UserSummary{ID: u.ID, Username: u.Username, Name: u.Name}
		}
	}

	out := make([]PostWithUserOut, 0, len(posts))
	for _, p := range posts {
		out = append(out, PostWithUserOut{
			ID:     p.ID,
			Title:  p.Title,
			Author: p.Author,
			URL:    p.URL,
			Likes:  p.Likes,
			User:   owners[p.UserID],
		})
	}
	return out, nil
}

// Create stores a post owned by owner and appends it to the owner's blogs. The two writes are
// not atomic; a failed append leaves the post in place and is returned as is.
func (s *service) Create(ctx context.Context, in CreatePostIn, owner *model.User) (*PostOut, error) {
	if err := validateFields(in.Title, in.URL); err != nil {
		return nil, err
	}

	post := &model.Post{
		Title:  in.Title,
		Author: in.Author,
		URL:    in.URL,
		Likes:  likesOrZero(in.Likes),
		UserID: owner.ID,
	}
	if err := s.store.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	if err := s.store.AppendUserPost(ctx, owner.ID, post.ID); err != nil {
		return nil, fmt.Errorf("appending post %s to user %s: %w", post.ID, owner.ID, err)
	}

	return toPostOut(post), nil
}

// Update replaces title, author, url and likes of the post. Any caller may update any post.
func (s *service) Update(ctx context.Context, id string, in UpdatePostIn) (*PostOut, error) {
	if err := validateFields(in.Title, in.URL); err != nil {
		return nil, err
	}

	post, err := s.store.UpdatePost(ctx, id, model.PostFields{
		Title:  in.Title,
		Author: in.Author,
		URL:    in.URL,
		Likes:  likesOrZero(in.Likes),
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.NotFound("blog not found")
	}
	if err != nil {
		return nil, err
	}

	return toPostOut(post), nil
}

// Delete removes the post when actor owns it. Deleting a post that does not exist succeeds.
func (s *service) Delete(ctx context.Context, id string, actor *model.User) error {
	post, err := s.store.FindPostByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if post.UserID != actor.ID {
		return apperr.Unauthorized("only the creator can delete a blog")
	}

	// ErrNotFound here means a concurrent delete got there first
	if err := s.store.DeletePost(ctx, id); err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	return nil
}

func (s *service) Stats(ctx context.Context) (*StatsOut, error) {
	posts, err := s.store.ListPosts(ctx)
	if err != nil {
		return nil, err
	}

	return &StatsOut{
		TotalLikes:   TotalLikes(posts),
		FavoriteBlog: FavoriteBlog(posts),
		MostBlogs:    MostBlogs(posts),
		MostLikes:    MostLikes(posts),
	}, nil
}
