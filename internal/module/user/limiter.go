package user

import (
	"context"
	"errors"
	"time"

	"clinical-trial-system/config"

	"github.com/redis/go-redis/v9"
)

// loginLimiter 按用户名统计登录失败次数
type loginLimiter interface {
	Blocked(ctx context.Context, username string) (bool, error)
	Fail(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

var limiter loginLimiter = noopLimiter{}

func newLimiter(client *redis.Client, cfg config.RateLimit) loginLimiter {
	if client == nil {
		return noopLimiter{}
	}
	return &redisLimiter{client: client, max: cfg.LoginMaxAttempts, window: cfg.LoginWindow}
}

// noopLimiter 未配置 redis 时不限流
type noopLimiter struct{}

func (noopLimiter) Blocked(context.Context, string) (bool, error) { return false, nil }
func (noopLimiter) Fail(context.Context, string) error            { return nil }
func (noopLimiter) Reset(context.Context, string) error           { return nil }

type redisLimiter struct {
	client *redis.Client
	max    int64
	window time.Duration
}

func loginFailKey(username string) string {
	return "ctms:login:fail:" + username
}

func (l *redisLimiter) Blocked(ctx context.Context, username string) (bool, error) {
	n, err := l.client.Get(ctx, loginFailKey(username)).Int64()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return n >= l.max, nil
}

// Fail 计数加一，窗口从第一次失败开始计算。
// SET NX EX 与 INCR 在同一个事务里执行，键总是带过期时间
func (l *redisLimiter) Fail(ctx context.Context, username string) error {
	key := loginFailKey(username)
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SetNX(ctx, key, 0, l.window)
		pipe.Incr(ctx, key)
		return nil
	})
	return err
}

func (l *redisLimiter) Reset(ctx context.Context, username string) error {
	return l.client.Del(ctx, loginFailKey(username)).Err()
}
