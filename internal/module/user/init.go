package user

import (
	"log/slog"

	"clinical-trial-system/config"
	"clinical-trial-system/internal/global/logger"
	"clinical-trial-system/internal/global/redis"
)

var log *slog.Logger

type ModuleUser struct{}

func (u *ModuleUser) GetName() string {
	return "User"
}

func (u *ModuleUser) Init() {
	log = logger.New("User")
	limiter = newLimiter(redis.Client, config.Get().RateLimit)
}
