package report

import (
	"clinical-trial-system/internal/global/middleware"
	"clinical-trial-system/internal/model"

	"github.com/gin-gonic/gin"
)

func (*ModuleReport) InitRouter(r *gin.RouterGroup) {
	reportGroup := r.Group("/reports")
	reportGroup.Use(middleware.Auth(model.RoleParticipant))
	{
		reportGroup.GET("/summary", Summary)
		reportGroup.GET("/participation", Participation)
		reportGroup.GET("/export", Export)
		reportGroup.GET("/export.xlsx", ExportXlsx)
	}

	adminGroup := r.Group("/reports")
	adminGroup.Use(middleware.Auth(model.RoleAdmin))
	{
		adminGroup.POST("/export/archive", Archive)
	}
}
