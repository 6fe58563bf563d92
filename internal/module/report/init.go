package report

import (
	"log/slog"

	"clinical-trial-system/internal/global/logger"
)

var log *slog.Logger

type ModuleReport struct{}

func (*ModuleReport) GetName() string {
	return "Report"
}

func (*ModuleReport) Init() {
	log = logger.New("Report")
}
