package server

import (
	"log"

	"mojopi/confs"
	"mojopi/db"
	"mojopi/events"
	"mojopi/handlers"
	httpHandler "mojopi/handlers/http"
	"mojopi/repositories"
	"mojopi/storage"
	"mojopi/usecases"
	"mojopi/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app *gin.Engine
	db  db.Database
}

func NewServer(database db.Database) *Server {
	return &Server{
		app: gin.Default(),
		db:  database,
	}
}

func (s *Server) Start() {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	config.AllowCredentials = false
	s.app.Use(cors.New(config))

	jwtSecret := confs.JWTSecret()

	// Resolve the session on every request; protected routes add RequireAuth.
	s.app.Use(httpHandler.Identify(jwtSecret))

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize file storage
	store, err := storage.NewFileStore(confs.PicsPath(), confs.RingsPath())
	if err != nil {
		log.Fatalf("Failed to initialize file storage: %v", err)
	}

	// Initialize event feed
	recent := events.NewRecent(64)
	hub := ws.NewManager()
	feed := events.NewFeed(recent, hub)

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	profileRepo := repositories.NewProfilePgRepository(s.db)
	projectRepo := repositories.NewProjectPgRepository(s.db)
	ringRepo := repositories.NewRingPgRepository(s.db)

	// Initialize use cases
	accounts := usecases.NewAccountUseCase(userRepo, profileRepo, feed)
	registry := usecases.NewRegistryUseCase(projectRepo, ringRepo, store, feed)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(accounts, jwtSecret)
	profileHandler := httpHandler.NewProfileHandler(accounts, store)
	projectHandler := httpHandler.NewProjectHandler(registry)
	ringHandler := httpHandler.NewRingHandler(registry, store)
	validateHandler := httpHandler.NewValidateHandler()
	eventsHandler := handlers.NewEventsHandler(recent, hub)

	requireAuth := httpHandler.RequireAuth(jwtSecret)

	// Auth routes
	s.app.POST("/register", authHandler.Register)
	s.app.POST("/login", authHandler.Login)
	s.app.GET("/logout", authHandler.Logout)
	s.app.POST("/reset_password", requireAuth, authHandler.ResetPassword)

	// Profile routes
	s.app.GET("/profile", requireAuth, profileHandler.GetSelf)
	s.app.GET("/profile/:user_id", profileHandler.Get)
	s.app.POST("/edit_profile", requireAuth, profileHandler.Edit)

	// File routes
	files := s.app.Group("/files")
	{
		files.POST("/profile_pic", requireAuth, profileHandler.UploadAvatar)
		files.GET("/profile_pic", profileHandler.GetAvatar)
		files.GET("/profile_pic/:user_id", profileHandler.GetAvatar)

		files.GET("/ring/:name", ringHandler.Download)
		files.GET("/ring/:name/:version", ringHandler.Download)
		files.GET("/ring/:name/:version/:platform", ringHandler.Download)
		files.POST("/ring/:name", ringHandler.Upload)
		files.POST("/ring/:name/:version", ringHandler.Upload)
		files.POST("/ring/:name/:version/:platform", ringHandler.Upload)
	}

	// Project metadata routes
	s.app.GET("/project/:name", projectHandler.Get)
	s.app.GET("/project/:name/history", projectHandler.History)
	s.app.GET("/project/:name/files", projectHandler.Files)
	s.app.GET("/project/:name/:version", projectHandler.Get)
	s.app.GET("/project/:name/:version/history", projectHandler.History)
	s.app.GET("/project/:name/:version/files", projectHandler.Files)

	s.app.GET("/search", projectHandler.Search)

	// Validation API
	api := s.app.Group("/api")
	{
		api.GET("/username/:usn", validateHandler.Username)
		api.GET("/email/:eml", validateHandler.Email)

		// Event feed
		v1 := api.Group("/v1")
		{
			v1.GET("/events/recent", eventsHandler.GetRecent)
			v1.GET("/events/stats", eventsHandler.GetStats)
		}
	}

	s.app.GET("/ws/events", eventsHandler.Subscribe)

	if err := s.app.Run(confs.Addr()); err != nil {
		panic(err)
	}
}
