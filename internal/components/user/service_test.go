package user

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrasnagy-data/bloglist/internal/shared/apperr"
	"github.com/andrasnagy-data/bloglist/internal/shared/model"
	"github.com/andrasnagy-data/bloglist/internal/shared/password"
	"github.com/andrasnagy-data/bloglist/internal/shared/store/memstore"
)

func TestCreate(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	srvc := NewUserService(st)

	out, err := srvc.Create(ctx, CreateUserIn{Username: "billy", Name: "Billy Smith", Password: "secret-password"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "billy", out.Username)
	assert.Equal(t, "Billy Smith", out.Name)
	assert.Equal(t, []string{}, out.Blogs)

	stored, err := st.FindUserByUsername(ctx, "billy")
	require.NoError(t, err)
	assert.NotEqual(t, "secret-password", stored.PasswordHash)
	assert.True(t, password.Verify("secret-password", stored.PasswordHash))
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	srvc := NewUserService(st)

	_, err := srvc.Create(ctx, CreateUserIn{Username: "root", Name: "Superuser", Password: "sekret"})
	require.NoError(t, err)

	tests := []struct {
		name string
		in   CreateUserIn
		msg  string
	}{
		{"no password", CreateUserIn{Username: "anna"}, "password is required"},
		{"short password", CreateUserIn{Username: "anna", Password: "pw"}, "password must be at least 3 characters long"},
		{"password checked first", CreateUserIn{Username: "a", Password: "pw"}, "password must be at least 3 characters long"},
		{"no username", CreateUserIn{Password: "sekret"}, "username is required"},
		{"short username", CreateUserIn{Username: "an", Password: "sekret"}, "username must be at least 3 characters long"},
		{"taken username", CreateUserIn{Username: "root", Password: "sekret"}, "username must be unique"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := srvc.Create(ctx, tt.in)
			var validation *apperr.ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tt.msg, validation.Message)
		})
	}

	users, err := st.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestList(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	srvc := NewUserService(st)

	created, err := srvc.Create(ctx, CreateUserIn{Username: "mluukkai", Name: "Matti Luukkainen", Password: "salainen"})
	require.NoError(t, err)

	post := &model.Post{Title: "Type wars", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com", Likes: 2, UserID: created.ID}
	require.NoError(t, st.CreatePost(ctx, post))
	require.NoError(t, st.AppendUserPost(ctx, created.ID, post.ID))
	// dangling reference
	require.NoError(t, st.AppendUserPost(ctx, created.ID, "5a422a851b54a676234d17f7"))

	users, err := srvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, []PostSummary{{ID: post.ID, Title: "Type wars", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com"}}, users[0].Blogs)
}

func TestCreateAcceptsLongPassword(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	srvc := NewUserService(st)
	long := strings.Repeat("x", 80)

	out, err := srvc.Create(ctx, CreateUserIn{Username: "longpw", Name: "Long Password", Password: long})
	require.NoError(t, err)
	assert.Equal(t, "longpw", out.Username)

	stored, err := st.FindUserByUsername(ctx, "longpw")
	require.NoError(t, err)
	assert.True(t, password.Verify(long, stored.PasswordHash))
}
