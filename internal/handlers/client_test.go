package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/naoyak/worktrack-api/internal/dto"
	"github.com/naoyak/worktrack-api/internal/models"
	"github.com/stretchr/testify/require"
)

func TestClientHandler_Create(t *testing.T) {
	env := setupTestEnv(t)
	user, cookie := registerUser(t, env, "alice")

	w := doJSON(t, env, http.MethodPost, "/client/", gin.H{
		"name":  "Acme Corp",
		"notes": "billing via wire",
		"rate":  120.0,
	}, cookie)

	require.Equal(t, http.StatusOK, w.Code)

	var body dto.ClientDTO
	decodeBody(t, w, &body)
	require.Equal(t, "Acme Corp", body.Name)
	require.Equal(t, user.ID, body.UserID)
	require.NotNil(t, body.Rate)
	require.Equal(t, 120.0, *body.Rate)
	require.NotEqual(t, uuid.Nil, body.ID)
}

func TestClientHandler_CreateMissingName(t *testing.T) {
	env := setupTestEnv(t)
	_, cookie := registerUser(t, env, "alice")

	w := doJSON(t, env, http.MethodPost, "/client/", gin.H{
		"rate": 120.0,
	}, cookie)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestClientHandler_RequiresAuth(t *testing.T) {
	env := setupTestEnv(t)

	w := doJSON(t, env, http.MethodPost, "/client/", gin.H{"name": "Acme"}, nil)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestClientHandler_GetAndList(t *testing.T) {
	env := setupTestEnv(t)
	_, cookie := registerUser(t, env, "alice")

	first := doJSON(t, env, http.MethodPost, "/client/", gin.H{"name": "Acme"}, cookie)
	require.Equal(t, http.StatusOK, first.Code)
	second := doJSON(t, env, http.MethodPost, "/client/", gin.H{"name": "Globex"}, cookie)
	require.Equal(t, http.StatusOK, second.Code)

	var created dto.ClientDTO
	decodeBody(t, first, &created)

	w := doJSON(t, env, http.MethodGet, "/client/get/"+created.ID.String(), nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched dto.ClientDTO
	decodeBody(t, w, &fetched)
	require.Equal(t, created.ID, fetched.ID)
	require.Equal(t, "Acme", fetched.Name)

	list := doJSON(t, env, http.MethodGet, "/client/all/", nil, cookie)
	require.Equal(t, http.StatusOK, list.Code)

	var clients []dto.ClientDTO
	decodeBody(t, list, &clients)
	require.Len(t, clients, 2)
	require.Equal(t, "Acme", clients[0].Name)
	require.Equal(t, "Globex", clients[1].Name)
}

func TestClientHandler_ListIsScopedToUser(t *testing.T) {
	env := setupTestEnv(t)
	_, aliceCookie := registerUser(t, env, "alice")
	_, bobCookie := registerUser(t, env, "bob")

	doJSON(t, env, http.MethodPost, "/client/", gin.H{"name": "Acme"}, aliceCookie)

	list := doJSON(t, env, http.MethodGet, "/client/all/", nil, bobCookie)
	require.Equal(t, http.StatusOK, list.Code)

	var clients []dto.ClientDTO
	decodeBody(t, list, &clients)
	require.Empty(t, clients)
}

func TestClientHandler_ForeignClientIsNotFound(t *testing.T) {
	env := setupTestEnv(t)
	_, aliceCookie := registerUser(t, env, "alice")
	_, bobCookie := registerUser(t, env, "bob")

	created := doJSON(t, env, http.MethodPost, "/client/", gin.H{"name": "Acme"}, aliceCookie)
	var client dto.ClientDTO
	decodeBody(t, created, &client)

	get := doJSON(t, env, http.MethodGet, "/client/get/"+client.ID.String(), nil, bobCookie)
	require.Equal(t, http.StatusNotFound, get.Code)

	del := doJSON(t, env, http.MethodDelete, "/client/"+client.ID.String(), nil, bobCookie)
	require.Equal(t, http.StatusNotFound, del.Code)

	// still intact for the owner
	get = doJSON(t, env, http.MethodGet, "/client/get/"+client.ID.String(), nil, aliceCookie)
	require.Equal(t, http.StatusOK, get.Code)
}

func TestClientHandler_MalformedIDIsNotFound(t *testing.T) {
	env := setupTestEnv(t)
	_, cookie := registerUser(t, env, "alice")

	w := doJSON(t, env, http.MethodGet, "/client/get/not-a-uuid", nil, cookie)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestClientHandler_PartialUpdate(t *testing.T) {
	env := setupTestEnv(t)
	_, cookie := registerUser(t, env, "alice")

	created := doJSON(t, env, http.MethodPost, "/client/", gin.H{
		"name":  "Acme",
		"notes": "net 30",
		"rate":  95.0,
	}, cookie)
	var client dto.ClientDTO
	decodeBody(t, created, &client)

	w := doJSON(t, env, http.MethodPatch, "/client/"+client.ID.String(), gin.H{
		"rate": 110.0,
	}, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var updated dto.ClientDTO
	decodeBody(t, w, &updated)
	require.Equal(t, "Acme", updated.Name)
	require.NotNil(t, updated.Notes)
	require.Equal(t, "net 30", *updated.Notes)
	require.NotNil(t, updated.Rate)
	require.Equal(t, 110.0, *updated.Rate)
}

func TestClientHandler_DeleteReturnsPriorStateAndDetachesProjects(t *testing.T) {
	env := setupTestEnv(t)
	user, cookie := registerUser(t, env, "alice")

	created := doJSON(t, env, http.MethodPost, "/client/", gin.H{
		"name": "Acme",
		"rate": 150.0,
	}, cookie)
	var client dto.ClientDTO
	decodeBody(t, created, &client)

	proj := doJSON(t, env, http.MethodPost, "/project/", gin.H{
		"name":      "Website",
		"client_id": client.ID,
	}, cookie)
	require.Equal(t, http.StatusOK, proj.Code)

	w := doJSON(t, env, http.MethodDelete, "/client/"+client.ID.String(), nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var deleted dto.ClientDTO
	decodeBody(t, w, &deleted)
	require.Equal(t, "Acme", deleted.Name)

	get := doJSON(t, env, http.MethodGet, "/client/get/"+client.ID.String(), nil, cookie)
	require.Equal(t, http.StatusNotFound, get.Code)

	var projects []models.Project
	require.NoError(t, env.db.Where("user_id = ?", user.ID).Find(&projects).Error)
	require.Len(t, projects, 1)
	require.Nil(t, projects[0].ClientID)
}
