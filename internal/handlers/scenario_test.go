package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/naoyak/worktrack-api/internal/constants"
	"github.com/naoyak/worktrack-api/internal/dto"
	"github.com/stretchr/testify/require"
)

// Walks the whole happy path through the public surface only: register, log
// in with the form endpoint, then exercise rate inheritance and the
// detach-on-client-delete rule with the cookie the login handed back.
func TestEndToEndScenario(t *testing.T) {
	env := setupTestEnv(t)

	w := doJSON(t, env, http.MethodPost, "/auth/register", gin.H{
		"username": "alice",
		"password": "password1",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var alice dto.UserDTO
	decodeBody(t, w, &alice)

	login := doForm(t, env, http.MethodPost, "/auth/token", url.Values{
		"username": {"alice"},
		"password": {"password1"},
	})
	require.Equal(t, http.StatusOK, login.Code)
	cookie := findCookie(t, login, constants.AccessTokenCookie)

	created := doJSON(t, env, http.MethodPost, "/client/", gin.H{
		"name": "Acme",
		"rate": 150.5,
	}, cookie)
	require.Equal(t, http.StatusOK, created.Code)

	var acme dto.ClientDTO
	decodeBody(t, created, &acme)
	require.Equal(t, alice.ID, acme.UserID)

	proj := doJSON(t, env, http.MethodPost, "/project/", gin.H{
		"name":      "Site",
		"client_id": acme.ID,
	}, cookie)
	require.Equal(t, http.StatusOK, proj.Code)

	var site dto.ProjectDTO
	decodeBody(t, proj, &site)
	require.NotNil(t, site.Rate)
	require.Equal(t, 150.5, *site.Rate)

	del := doJSON(t, env, http.MethodDelete, "/client/"+acme.ID.String(), nil, cookie)
	require.Equal(t, http.StatusOK, del.Code)

	get := doJSON(t, env, http.MethodGet, "/project/get/"+site.ID.String(), nil, cookie)
	require.Equal(t, http.StatusOK, get.Code)

	var after dto.ProjectDTO
	decodeBody(t, get, &after)
	require.Nil(t, after.ClientID)
	require.NotNil(t, after.Rate)
	require.Equal(t, 150.5, *after.Rate)
}
