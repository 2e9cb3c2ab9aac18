package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kolbe-be/internal/models"
)

func loginToken(t *testing.T, s *testServer, email string) string {
	t.Helper()
	creds := models.RegisterRequest{Email: email, Password: "secret1"}
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/v1/auth/register", creds, "").Code)

	w := s.do(t, http.MethodPost, "/api/v1/auth/login", models.LoginRequest(creds), "")
	require.Equal(t, http.StatusOK, w.Code)
	return decode[models.LoginResponse](t, w).Token
}

func TestFavorites_RequireToken(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/v1/favorites", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/favorites", nil, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFavorites_TokenForUnknownAccount(t *testing.T) {
	s := newTestServer(t)

	token, _, err := s.tokens.GenerateToken(999, "ghost@x.com")
	require.NoError(t, err)

	w := s.do(t, http.MethodGet, "/api/v1/favorites", nil, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFavorites_Lifecycle(t *testing.T) {
	s := newTestServer(t)
	token := loginToken(t, s, "a@x.com")

	w := s.do(t, http.MethodPost, "/api/v1/favorites", models.AddFavoriteRequest{MenuItemID: 110}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	added := decode[models.FavoriteResponse](t, w)
	require.NotNil(t, added.Item)
	assert.Equal(t, int64(110), added.Item.ID)

	w = s.do(t, http.MethodPost, "/api/v1/favorites", models.AddFavoriteRequest{MenuItemID: 110}, token)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/favorites", models.AddFavoriteRequest{MenuItemID: 999}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/favorites", `{}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/favorites", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[models.FavoritesResponse](t, w)
	require.Equal(t, 1, list.Count)
	assert.Equal(t, added.ID, list.Favorites[0].ID)

	w = s.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/favorites/%d", added.ID), nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/favorites/%d", added.ID), nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/favorites", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, decode[models.FavoritesResponse](t, w).Count)
}

func TestFavorites_ScopedToUser(t *testing.T) {
	s := newTestServer(t)
	alice := loginToken(t, s, "alice@x.com")
	bob := loginToken(t, s, "bob@x.com")

	w := s.do(t, http.MethodPost, "/api/v1/favorites", models.AddFavoriteRequest{MenuItemID: 120}, alice)
	require.Equal(t, http.StatusCreated, w.Code)
	fav := decode[models.FavoriteResponse](t, w)

	w = s.do(t, http.MethodGet, "/api/v1/favorites", nil, bob)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, decode[models.FavoritesResponse](t, w).Count)

	w = s.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/favorites/%d", fav.ID), nil, bob)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
