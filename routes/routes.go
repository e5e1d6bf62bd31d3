package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"devlink/auth"
	"devlink/config"
	"devlink/database"
	"devlink/handlers"
	"devlink/middleware"
	"devlink/store"
)

func SetupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	codec := auth.NewCodec(cfg.JWTSecret, cfg.TokenTTL)

	authHandler := &handlers.AuthHandler{
		Users:         store.NewUserStore(database.Users),
		Codec:         codec,
		CloudinaryURL: cfg.CloudinaryURL,
	}
	profileHandler := &handlers.ProfileHandler{
		Profiles: store.NewProfileStore(database.Profiles, database.Users),
	}
	postHandler := &handlers.PostHandler{
		Posts: store.NewPostStore(database.Posts, database.Users),
	}

	// Public routes (no auth required)
	router.POST("/api/users", middleware.RateLimit(), authHandler.Register)
	router.POST("/api/auth", middleware.RateLimit(), authHandler.Login)

	// Protected routes group
	protected := router.Group("/api")
	protected.Use(middleware.RequireAuth(codec))

	// Current user
	protected.GET("/auth", authHandler.Me)
	protected.POST("/users/avatar", authHandler.UploadAvatar)

	// Profiles
	protected.GET("/profile/me", profileHandler.GetMine)
	protected.POST("/profile", profileHandler.Upsert)
	protected.GET("/profile", profileHandler.GetAll)
	protected.GET("/profile/user/:id", profileHandler.GetByUser)
	protected.DELETE("/profile", profileHandler.Delete)
	protected.PUT("/profile/experience", profileHandler.AddExperience)
	protected.DELETE("/profile/experience/:id", profileHandler.RemoveExperience)
	protected.PUT("/profile/education", profileHandler.AddEducation)
	protected.DELETE("/profile/education/:id", profileHandler.RemoveEducation)

	// Posts
	protected.POST("/posts", postHandler.Create)
	protected.GET("/posts", postHandler.GetAll)
	protected.GET("/posts/:id", postHandler.GetByID)
	protected.DELETE("/posts/:id", postHandler.Delete)
	protected.PUT("/posts/like/:id", postHandler.Like)
	protected.PUT("/posts/unlike/:id", postHandler.Unlike)
	protected.POST("/posts/comment/:id", postHandler.AddComment)
	protected.DELETE("/posts/:id/comment/:commentId", postHandler.RemoveComment)

	// Catch-all for undefined API routes
	router.NoRoute(func(c *gin.Context) {
		if len(c.Request.URL.Path) >= 4 && c.Request.URL.Path[:4] == "/api" {
			c.JSON(404, gin.H{
				"error": "Endpoint not found",
				"path":  c.Request.URL.Path,
			})
			return
		}
		c.Next()
	})

	return router
}
