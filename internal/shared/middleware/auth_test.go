package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrasnagy-data/bloglist/internal/shared/model"
	"github.com/andrasnagy-data/bloglist/internal/shared/store/memstore"
	"github.com/andrasnagy-data/bloglist/internal/shared/token"
)

func TestBearerToken(t *testing.T) {
	tests := map[string]string{
		"":                 "",
		"Bearer abc.def":   "abc.def",
		"bearer abc.def":   "abc.def",
		"BEARER  abc.def ": "abc.def",
		"Basic dXNlcjpwdw": "",
		"Bearer":           "",
		"abc.def":          "",
	}
	for header, want := range tests {
		assert.Equal(t, want, bearerToken(header), "header %q", header)
	}
}

func TestTokenExtractorAlwaysPasses(t *testing.T) {
	var seen string
	h := TokenExtractor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetToken(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token nope")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Empty(t, seen)
}

func TestUserExtractor(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	tokens := token.New("s3cret")

	mike := &model.User{Username: "mike", Name: "Mike Gomez"}
	require.NoError(t, st.CreateUser(ctx, mike))

	valid, err := tokens.Issue(mike.ID, mike.Username)
	require.NoError(t, err)
	orphan, err := tokens.Issue("61c2fad72da881244f4b487b", "ghost")
	require.NoError(t, err)

	var got *model.User
	h := TokenExtractor(NewUserExtractor(tokens, st)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetUser(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})))

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid", "Bearer " + valid, http.StatusNoContent},
		{"missing", "", http.StatusUnauthorized},
		{"garbage", "Bearer xyz", http.StatusUnauthorized},
		{"unknown user", "Bearer " + orphan, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got = nil
			req := httptest.NewRequest(http.MethodPost, "/api/blogs", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"token missing or invalid"}`, rec.Body.String())
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, mike.ID, got.ID)
		})
	}
}

func TestRecoverer(t *testing.T) {
	h := Recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "boom")
}
