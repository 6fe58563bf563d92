package trial

import (
	"clinical-trial-system/internal/global/middleware"
	"clinical-trial-system/internal/model"

	"github.com/gin-gonic/gin"
)

func (m *ModuleTrial) InitRouter(r *gin.RouterGroup) {
	trialGroup := r.Group("/trials")

	trialGroup.GET("", middleware.Auth(model.RoleParticipant), ListTrials)
	trialGroup.GET("/:id", middleware.Auth(model.RoleParticipant), GetTrial)

	manage := trialGroup.Group("", middleware.Auth(model.RoleInvestigator))
	{
		manage.POST("", CreateTrial)
		manage.PUT("/:id", UpdateTrial)
		manage.DELETE("/:id", DeleteTrial)
	}
}
