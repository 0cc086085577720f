package user

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrasnagy-data/bloglist/internal/shared/store/memstore"
)

func TestRouterCreateUser(t *testing.T) {
	h := NewRouter(NewUserService(memstore.New()))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"billy","name":"Billy Smith","password":"secret-password"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "billy", body["username"])
	assert.Equal(t, "Billy Smith", body["name"])
	assert.NotEmpty(t, body["id"])
	for _, key := range []string{"password", "passwordHash", "_id", "__v"} {
		assert.NotContains(t, body, key)
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"billy","name":"Other","password":"secret-password"}`))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"username must be unique"}`, rec.Body.String())
}

func TestRouterListUsers(t *testing.T) {
	h := NewRouter(NewUserService(memstore.New()))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
