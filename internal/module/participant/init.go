package participant

import (
	"log/slog"

	"clinical-trial-system/internal/global/logger"
)

var log *slog.Logger

type ModuleParticipant struct{}

func (m *ModuleParticipant) GetName() string {
	return "Participant"
}

func (m *ModuleParticipant) Init() {
	log = logger.New("Participant")
}
