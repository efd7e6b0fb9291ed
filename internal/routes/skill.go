package routes

import (
	"github.com/Tinoriffic/game-of-life/internal/handlers"
	"github.com/Tinoriffic/game-of-life/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterSkillRoutes(r gin.IRouter) {
	skills := r.Group("/skills")
	skills.Use(middleware.AuthMiddleware())
	{
		skills.GET("", handlers.GetSkills)
	}
}
