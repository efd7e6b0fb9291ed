package routes

import (
	"github.com/Tinoriffic/game-of-life/internal/handlers"
	"github.com/Tinoriffic/game-of-life/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterActivityRoutes(r gin.IRouter) {
	activities := r.Group("/activities")
	activities.Use(middleware.AuthMiddleware())
	{
		activities.POST("/log", handlers.LogActivity)
		activities.GET("/feed", handlers.GetActivityFeed)
	}
}
