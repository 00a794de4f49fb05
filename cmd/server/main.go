package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/naoyak/worktrack-api/internal/auth"
	"github.com/naoyak/worktrack-api/internal/config"
	"github.com/naoyak/worktrack-api/internal/database"
	"github.com/naoyak/worktrack-api/internal/handlers"
	"github.com/naoyak/worktrack-api/internal/middleware"
	"github.com/naoyak/worktrack-api/internal/repository"
	"github.com/naoyak/worktrack-api/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	// Token manager for the access token cookie
	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.JWTExpMin)*time.Minute)

	// Repositories and services
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	authService := services.NewAuthService(userRepo)
	clientService := services.NewClientService(clientRepo)
	projectService := services.NewProjectService(projectRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo)

	isProduction := cfg.GinMode == "release"
	authHandler := handlers.NewAuthHandler(authService, tokens, cfg.CookieDomain, isProduction)
	clientHandler := handlers.NewClientHandler(clientService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)

	// Initialize Gin router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	requireAuth := middleware.RequireAuth(tokens)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Auth routes
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/token", authHandler.Login)
		authGroup.POST("/logout", authHandler.Logout)
		authGroup.GET("/me", requireAuth, authHandler.GetCurrentUser)
	}

	// Client routes (protected)
	clientGroup := r.Group("/client")
	clientGroup.Use(requireAuth)
	{
		clientGroup.POST("/", clientHandler.CreateClient)
		clientGroup.GET("/all/", clientHandler.ListClients)
		clientGroup.GET("/get/:id", clientHandler.GetClient)
		clientGroup.PATCH("/:id", clientHandler.UpdateClient)
		clientGroup.DELETE("/:id", clientHandler.DeleteClient)
	}

	// Project routes, with task routes nested underneath (protected)
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

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
