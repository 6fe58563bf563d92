package tracing

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"clinical-trial-system/config"

	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
)

// RedisSentryHook 追踪登录限流等 Redis 操作
type RedisSentryHook struct {
	slowThreshold time.Duration
}

func NewRedisSentryHook() *RedisSentryHook {
	ms := config.Get().Sentry.Tracing.RedisSlowThresholdMs
	return &RedisSentryHook{slowThreshold: time.Duration(ms) * time.Millisecond}
}

func (h *RedisSentryHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return next(ctx, network, addr)
	}
}

func (h *RedisSentryHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		span, ctx := h.start(ctx, "db.redis", strings.ToUpper(cmd.Name()), cmd.Name())
		start := time.Now()
		err := next(ctx, cmd)
		h.finish(span, start, err)
		return err
	}
}

func (h *RedisSentryHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		span, ctx := h.start(ctx, "db.redis.pipeline", pipelineDescription(cmds), "pipeline")
		if span != nil {
			span.SetData("redis.pipeline_length", len(cmds))
		}
		start := time.Now()
		err := next(ctx, cmds)
		h.finish(span, start, err)
		return err
	}
}

func (h *RedisSentryHook) start(ctx context.Context, op, desc, operation string) (*sentry.Span, context.Context) {
	parent := sentry.SpanFromContext(ctx)
	if parent == nil {
		return nil, ctx
	}
	span := parent.StartChild(op)
	span.Description = desc
	span.SetData("db.system", "redis")
	span.SetData("db.operation", operation)
	return span, span.Context()
}

func (h *RedisSentryHook) finish(span *sentry.Span, start time.Time, err error) {
	if span == nil {
		return
	}
	if h.slowThreshold > 0 && time.Since(start) < h.slowThreshold {
		span.Sampled = sentry.SampledFalse
	}
	// redis.Nil 表示 key 不存在，不算失败
	if err != nil && !errors.Is(err, redis.Nil) {
		span.Status = sentry.SpanStatusInternalError
		span.SetData("redis.error", err.Error())
	} else {
		span.Status = sentry.SpanStatusOK
	}
	span.Finish()
}

// pipelineDescription 只列出前三条命令名，不带参数
func pipelineDescription(cmds []redis.Cmder) string {
	if len(cmds) == 0 {
		return "PIPELINE (empty)"
	}
	const maxShow = 3
	names := make([]string, 0, maxShow)
	for i, cmd := range cmds {
		if i == maxShow {
			break
		}
		names = append(names, strings.ToUpper(cmd.Name()))
	}
	desc := "PIPELINE: " + strings.Join(names, ", ")
	if len(cmds) > maxShow {
		desc += "..."
	}
	return desc
}
