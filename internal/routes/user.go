package routes

import (
	"github.com/Tinoriffic/game-of-life/internal/handlers"
	"github.com/Tinoriffic/game-of-life/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(r gin.IRouter) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/profile", handlers.GetProfile)
		users.PUT("/profile", handlers.UpdateProfile)
	}
}
