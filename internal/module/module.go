package module

import (
	"clinical-trial-system/internal/module/participant"
	"clinical-trial-system/internal/module/ping"
	"clinical-trial-system/internal/module/report"
	"clinical-trial-system/internal/module/trial"
	"clinical-trial-system/internal/module/user"

	"github.com/gin-gonic/gin"
)

type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&ping.ModulePing{},
		&user.ModuleUser{},
		&trial.ModuleTrial{},
		&participant.ModuleParticipant{},
		&report.ModuleReport{},
	})
}
