package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/naoyak/worktrack-api/internal/constants"
	"github.com/naoyak/worktrack-api/internal/services"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register(t *testing.T) {
	env := setupTestEnv(t)

	w := doJSON(t, env, http.MethodPost, "/auth/register", gin.H{
		"username": "alice",
		"password": "supersecret",
	}, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	decodeBody(t, w, &body)
	require.Equal(t, "alice", body["username"])
	require.NotEmpty(t, body["id"])
	require.NotContains(t, w.Body.String(), "password")
	require.NotContains(t, w.Body.String(), "hash")
}

func TestAuthHandler_RegisterDuplicateUsername(t *testing.T) {
	env := setupTestEnv(t)
	registerUser(t, env, "alice")

	w := doJSON(t, env, http.MethodPost, "/auth/register", gin.H{
		"username": "alice",
		"password": "othersecret",
	}, nil)

	require.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_RegisterMissingPassword(t *testing.T) {
	env := setupTestEnv(t)

	w := doJSON(t, env, http.MethodPost, "/auth/register", gin.H{
		"username": "alice",
	}, nil)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupTestEnv(t)
	registerUser(t, env, "alice")

	w := doForm(t, env, http.MethodPost, "/auth/token", url.Values{
		"username": {"alice"},
		"password": {"supersecret"},
	})

	require.Equal(t, http.StatusOK, w.Code)

	cookie := findCookie(t, w, constants.AccessTokenCookie)
	require.NotEmpty(t, cookie.Value)
	require.True(t, cookie.HttpOnly)
	require.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	require.Positive(t, cookie.MaxAge)
}

func TestAuthHandler_LoginWrongPassword(t *testing.T) {
	env := setupTestEnv(t)
	registerUser(t, env, "alice")

	w := doForm(t, env, http.MethodPost, "/auth/token", url.Values{
		"username": {"alice"},
		"password": {"wrongsecret"},
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Could not validate credentials")
}

func TestAuthHandler_LoginUnknownUser(t *testing.T) {
	env := setupTestEnv(t)

	w := doForm(t, env, http.MethodPost, "/auth/token", url.Values{
		"username": {"nobody"},
		"password": {"supersecret"},
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_CurrentUser(t *testing.T) {
	env := setupTestEnv(t)
	user, cookie := registerUser(t, env, "alice")

	w := doJSON(t, env, http.MethodGet, "/auth/me", nil, cookie)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	decodeBody(t, w, &body)
	require.Equal(t, "alice", body["username"])
	require.Equal(t, user.ID.String(), body["id"])
}

func TestAuthHandler_CurrentUserWithBearerHeader(t *testing.T) {
	env := setupTestEnv(t)
	user, err := env.authService.Register(services.RegisterInput{
		Username: "alice",
		Password: "supersecret",
	})
	require.NoError(t, err)

	token, err := env.tokens.Issue(user.ID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "alice")
}

func TestAuthHandler_CurrentUserWithoutToken(t *testing.T) {
	env := setupTestEnv(t)

	w := doJSON(t, env, http.MethodGet, "/auth/me", nil, nil)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Could not validate credentials")
}

func TestAuthHandler_CurrentUserWithGarbageToken(t *testing.T) {
	env := setupTestEnv(t)

	cookie := &http.Cookie{Name: constants.AccessTokenCookie, Value: "not.a.token"}
	w := doJSON(t, env, http.MethodGet, "/auth/me", nil, cookie)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Logout(t *testing.T) {
	env := setupTestEnv(t)
	_, cookie := registerUser(t, env, "alice")

	w := doJSON(t, env, http.MethodPost, "/auth/logout", nil, cookie)

	require.Equal(t, http.StatusOK, w.Code)

	expired := findCookie(t, w, constants.AccessTokenCookie)
	require.Empty(t, expired.Value)
	require.Negative(t, expired.MaxAge)
}

func findCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}
