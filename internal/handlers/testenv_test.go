package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/naoyak/worktrack-api/internal/auth"
	"github.com/naoyak/worktrack-api/internal/constants"
	"github.com/naoyak/worktrack-api/internal/database"
	"github.com/naoyak/worktrack-api/internal/middleware"
	"github.com/naoyak/worktrack-api/internal/models"
	"github.com/naoyak/worktrack-api/internal/repository"
	"github.com/naoyak/worktrack-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	tokens      *auth.TokenManager
	authService *services.AuthService
}

// setupTestEnv wires the full route table against an in-memory database, the
// same way main does.
func setupTestEnv(t *testing.T) testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Project{},
		&models.Task{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	tokens := auth.NewTokenManager("test-secret", 30*time.Minute)

	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	authService := services.NewAuthService(userRepo)
	clientService := services.NewClientService(clientRepo)
	projectService := services.NewProjectService(projectRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo)

	authHandler := NewAuthHandler(authService, tokens, "", false)
	clientHandler := NewClientHandler(clientService)
	projectHandler := NewProjectHandler(projectService)
	taskHandler := NewTaskHandler(taskService)

	requireAuth := middleware.RequireAuth(tokens)

	r := gin.New()

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/token", authHandler.Login)
		authGroup.POST("/logout", authHandler.Logout)
		authGroup.GET("/me", requireAuth, authHandler.GetCurrentUser)
	}

	clientGroup := r.Group("/client")
	clientGroup.Use(requireAuth)
	{
		clientGroup.POST("/", clientHandler.CreateClient)
		clientGroup.GET("/all/", clientHandler.ListClients)
		clientGroup.GET("/get/:id", clientHandler.GetClient)
		clientGroup.PATCH("/:id", clientHandler.UpdateClient)
		clientGroup.DELETE("/:id", clientHandler.DeleteClient)
	}

	projectGroup := r.Group("/project")
	projectGroup.Use(requireAuth)
	{
		projectGroup.POST("/", projectHandler.CreateProject)
		projectGroup.GET("/all/", projectHandler.ListProjects)
		projectGroup.GET("/client/:client_id", projectHandler.ListClientProjects)
		projectGroup.GET("/get/:id", projectHandler.GetProject)
		projectGroup.GET("/get/:id/tasks", taskHandler.ListProjectTasks)
		projectGroup.PATCH("/:id", projectHandler.UpdateProject)
		projectGroup.DELETE("/:id", projectHandler.DeleteProject)

		taskGroup := projectGroup.Group("/task")
		{
			taskGroup.POST("/", taskHandler.CreateTask)
			taskGroup.GET("/all/", taskHandler.ListTasks)
			taskGroup.GET("/get/:id", taskHandler.GetTask)
			taskGroup.PATCH("/:id", taskHandler.UpdateTask)
			taskGroup.DELETE("/:id", taskHandler.DeleteTask)
		}
	}

	return testEnv{
		db:          db,
		router:      r,
		tokens:      tokens,
		authService: authService,
	}
}

// registerUser creates a user through the service layer and returns it with a
// ready-to-use access token cookie.
func registerUser(t *testing.T, env testEnv, username string) (*models.User, *http.Cookie) {
	t.Helper()

	user, err := env.authService.Register(services.RegisterInput{
		Username: username,
		Password: "supersecret",
	})
	require.NoError(t, err)

	token, err := env.tokens.Issue(user.ID)
	require.NoError(t, err)

	return user, &http.Cookie{Name: constants.AccessTokenCookie, Value: token}
}

// doJSON performs a JSON request against the test router.
func doJSON(t *testing.T, env testEnv, method, path string, payload any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// doForm performs a form-encoded request against the test router.
func doForm(t *testing.T, env testEnv, method, path string, values url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
