package memstore

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrasnagy-data/bloglist/internal/shared/model"
	"github.com/andrasnagy-data/bloglist/internal/shared/store"
)

func TestUserLifecycle(t *testing.T) {
	ctx := context.Background()
	st := New()

	u := &model.User{Username: "root", Name: "superuser", PasswordHash: "hash"}
	require.NoError(t, st.CreateUser(ctx, u))
	require.NotEmpty(t, u.ID)
	assert.Equal(t, []string{}, u.Blogs)

	err := st.CreateUser(ctx, &model.User{Username: "root"})
	assert.ErrorIs(t, err, store.ErrDuplicateUsername)

	got, err := st.FindUserByUsername(ctx, "root")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = st.FindUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.FindUserByID(ctx, "not-an-id")
	assert.ErrorIs(t, err, store.ErrInvalidID)

	require.NoError(t, st.AppendUserPost(ctx, u.ID, "5a422a851b54a676234d17f7"))
	got, err = st.FindUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"5a422a851b54a676234d17f7"}, got.Blogs)
}

func TestReturnedUsersAreCopies(t *testing.T) {
	ctx := context.Background()
	st := New()

	u := &model.User{Username: "mike"}
	require.NoError(t, st.CreateUser(ctx, u))

	got, err := st.FindUserByID(ctx, u.ID)
	require.NoError(t, err)
	got.Blogs = append(got.Blogs, "leak")
	got.Name = "changed"

	again, err := st.FindUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, again.Blogs)
	assert.Empty(t, again.Name)
}

func TestPostLifecycle(t *testing.T) {
	ctx := context.Background()
	st := New()

	first := &model.Post{Title: "React patterns", URL: "https://reactpatterns.com/", Likes: 7}
	second := &model.Post{Title: "Type wars", URL: "http://blog.cleancoder.com/", Likes: 2}
	require.NoError(t, st.CreatePost(ctx, first))
	require.NoError(t, st.CreatePost(ctx, second))

	posts, err := st.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, first.ID, posts[0].ID, "insertion order is kept")

	updated, err := st.UpdatePost(ctx, first.ID, model.PostFields{Title: "New", URL: "u", Likes: 8})
	require.NoError(t, err)
	assert.Equal(t, 8, updated.Likes)
	assert.Empty(t, updated.Author)

	byIDs, err := st.FindPostsByIDs(ctx, []string{second.ID, "5a422a851b54a676234d17f7", first.ID})
	require.NoError(t, err)
	require.Len(t, byIDs, 2)
	assert.Equal(t, second.ID, byIDs[0].ID)

	require.NoError(t, st.DeletePost(ctx, first.ID))
	assert.ErrorIs(t, st.DeletePost(ctx, first.ID), store.ErrNotFound)
	assert.ErrorIs(t, st.DeletePost(ctx, "bad"), store.ErrInvalidID)

	_, err = st.UpdatePost(ctx, first.ID, model.PostFields{})
	assert.ErrorIs(t, err, store.ErrNotFound)

	posts, err = st.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, second.ID, posts[0].ID)
}

func TestUpperCaseIDsResolve(t *testing.T) {
	ctx := context.Background()
	st := New()

	u := &model.User{Username: "root", PasswordHash: "hash"}
	require.NoError(t, st.CreateUser(ctx, u))
	p := &model.Post{Title: "Type wars", URL: "http://blog.cleancoder.com", UserID: u.ID}
	require.NoError(t, st.CreatePost(ctx, p))

	upper := strings.ToUpper(p.ID)
	got, err := st.FindPostByID(ctx, upper)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	updated, err := st.UpdatePost(ctx, upper, model.PostFields{Title: "t", URL: "u", Likes: 1})
	require.NoError(t, err)
	assert.Equal(t, p.ID, updated.ID)

	_, err = st.FindUserByID(ctx, strings.ToUpper(u.ID))
	require.NoError(t, err)
	require.NoError(t, st.AppendUserPost(ctx, strings.ToUpper(u.ID), p.ID))

	require.NoError(t, st.DeletePost(ctx, upper))
	_, err = st.FindPostByID(ctx, p.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
