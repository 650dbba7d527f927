package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all user-related routes (including Auth).
func RegisterRoutes(g *gin.RouterGroup, h *UserHandler, authMiddleware gin.HandlerFunc) {
	usersGroup := g.Group("/users")

	// Public Routes
	usersGroup.POST("/register", h.Register)
	usersGroup.POST("/login", h.Login)

	// Authenticated Routes
	usersGroup.Use(authMiddleware)
	{
		usersGroup.GET("", h.List)
		usersGroup.GET("/me", h.Me)
		usersGroup.GET("/:id", h.Get)
		usersGroup.PATCH("/:id", h.Update)
		usersGroup.DELETE("/:id", h.Delete)
	}
}
