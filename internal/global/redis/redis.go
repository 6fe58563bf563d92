package redis

import (
	"context"
	"time"

	"clinical-trial-system/config"
	"clinical-trial-system/internal/global/logger"
	"clinical-trial-system/internal/global/sentry/tracing"

	"github.com/redis/go-redis/v9"
)

// Client 未配置 redis 时为 nil，调用方需自行降级
var Client *redis.Client

func Init() {
	cfg := config.Get().Redis
	if cfg.Host == "" {
		logger.New("Redis").Warn("未配置 redis，登录限流已关闭")
		return
	}

	Client = redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if tracing.IsEnabled() {
		Client.AddHook(tracing.NewRedisSentryHook())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := Client.Ping(ctx).Err(); err != nil {
		// 连接失败时降级为不限流，不阻止服务启动
		logger.New("Redis").Error("redis 连接失败，登录限流已关闭", "error", err)
		_ = Client.Close()
		Client = nil
	}
}

func Close() error {
	if Client != nil {
		return Client.Close()
	}
	return nil
}
