package routes

import (
	"github.com/Tinoriffic/game-of-life/internal/handlers"
	"github.com/Tinoriffic/game-of-life/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterChallengeRoutes(r gin.IRouter) {
	challenges := r.Group("/challenges")
	challenges.Use(middleware.AuthMiddleware())
	{
		challenges.GET("/available", handlers.GetAvailableChallenges)
		challenges.GET("/active", handlers.GetActiveChallenge)
		challenges.POST("/join", handlers.JoinChallenge)
		challenges.POST("/complete", handlers.MarkDayComplete)
		challenges.POST("/quit", handlers.QuitChallenge)
		challenges.GET("/history", handlers.GetChallengeHistory)
		challenges.GET("/badges", handlers.GetUserBadges)

		// Wildcard last so it doesn't shadow the named paths.
		challenges.GET("/:id", handlers.GetChallenge)
	}
}
