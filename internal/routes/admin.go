package routes

import (
	"github.com/Tinoriffic/game-of-life/internal/handlers"
	"github.com/Tinoriffic/game-of-life/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterAdminRoutes(r gin.IRouter) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/badges", handlers.AdminCreateBadge)
		admin.POST("/challenges", handlers.AdminCreateChallenge)
		admin.PATCH("/challenges/:id/active", handlers.AdminSetChallengeActive)
	}
}
