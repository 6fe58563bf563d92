package participant

import (
	"clinical-trial-system/internal/global/middleware"
	"clinical-trial-system/internal/model"

	"github.com/gin-gonic/gin"
)

func (m *ModuleParticipant) InitRouter(r *gin.RouterGroup) {
	participantGroup := r.Group("/participants")

	participantGroup.GET("", middleware.Auth(model.RoleParticipant), ListParticipants)
	participantGroup.GET("/:id/activities", middleware.Auth(model.RoleParticipant), ListActivities)

	manage := participantGroup.Group("", middleware.Auth(model.RoleInvestigator))
	{
		manage.POST("/enroll", Enroll)
		manage.POST("/activity", AddActivity)
		manage.PUT("/:id", UpdateParticipant)
		manage.DELETE("/:id", DeleteParticipant)
	}
}
