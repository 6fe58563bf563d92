package user

import (
	"clinical-trial-system/internal/global/middleware"
	"clinical-trial-system/internal/model"

	"github.com/gin-gonic/gin"
)

func (u *ModuleUser) InitRouter(r *gin.RouterGroup) {
	authGroup := r.Group("/auth")

	authGroup.POST("/register", Register)
	authGroup.POST("/login", Login)
	authGroup.GET("/me", middleware.Auth(model.RoleParticipant), GetMe)
	authGroup.GET("/users", middleware.Auth(model.RoleAdmin), ListUsers)
}
