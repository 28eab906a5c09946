package routes

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"warbler/backend/internal/auth"
	"warbler/backend/internal/config"
	"warbler/backend/internal/handler"
	"warbler/backend/internal/monitoring"
	"warbler/backend/internal/web"
)

// SetupRouter builds the application router with sessions, metrics, and all
// view routes. The routing logic is isolated here so tests can drive the
// real router.
func SetupRouter() *gin.Engine {
	router := gin.Default()
	router.SetHTMLTemplate(web.Templates())

	store := cookie.NewStore([]byte(config.AppConfig.SessionSecret))
	router.Use(sessions.Sessions("warbler_session", store))
	router.Use(monitoring.InstrumentHandler())
	router.Use(auth.LoadUserMiddleware())

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/", handler.Home)

	// Auth routes
	router.GET("/signup", handler.SignupForm)
	router.POST("/signup", handler.Signup)
	router.GET("/login", handler.LoginForm)
	router.POST("/login", handler.Login)
	router.GET("/logout", handler.Logout)

	// Public user routes
	userRoutes := router.Group("/users")
	{
		userRoutes.GET("", handler.ListUsers)
		userRoutes.GET("/:id", handler.ShowUser)
	}

	// User routes (protected)
	userAuthRoutes := router.Group("/users")
	userAuthRoutes.Use(auth.RequireLogin())
	{
		userAuthRoutes.GET("/:id/following", handler.Following)
		userAuthRoutes.GET("/:id/followers", handler.Followers)
		userAuthRoutes.GET("/:id/likes", handler.LikedMessages)
		userAuthRoutes.POST("/follow/:id", handler.FollowUser)
		userAuthRoutes.POST("/stop-following/:id", handler.UnfollowUser)
		userAuthRoutes.GET("/profile", handler.EditProfileForm)
		userAuthRoutes.POST("/profile", handler.EditProfile)
		userAuthRoutes.GET("/delete", handler.DeleteUser)
		userAuthRoutes.POST("/delete", handler.DeleteUser)
	}

	// Message routes
	router.GET("/messages/:id", handler.ShowMessage)

	messageRoutes := router.Group("/messages")
	messageRoutes.Use(auth.RequireLogin())
	{
		messageRoutes.GET("/new", handler.NewMessageForm)
		messageRoutes.POST("/new", handler.CreateMessage)
		messageRoutes.GET("/:id/delete", handler.DeleteMessage)
		messageRoutes.POST("/:id/like", handler.ToggleLike)
	}

	return router
}
