package ping

import (
	"log/slog"

	"clinical-trial-system/internal/global/logger"
)

var log *slog.Logger

// ModulePing 健康检查，不需要鉴权也不访问数据库
type ModulePing struct{}

func (p *ModulePing) GetName() string {
	return "Ping"
}

func (p *ModulePing) Init() {
	log = logger.New(p.GetName())
}
