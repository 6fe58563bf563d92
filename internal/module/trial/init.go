package trial

import (
	"log/slog"

	"clinical-trial-system/internal/global/logger"
)

var log *slog.Logger

type ModuleTrial struct{}

func (m *ModuleTrial) GetName() string {
	return "Trial"
}

func (m *ModuleTrial) Init() {
	log = logger.New("Trial")
}
