package logger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"clinical-trial-system/config"

	sentryslog "github.com/getsentry/sentry-go/slog"
	"github.com/gin-gonic/gin"
	"gopkg.in/natefinch/lumberjack.v2"
)

// RequestIDKey 请求 ID 在 gin.Context 中的键，由 RequestID 中间件写入
const RequestIDKey = "request_id"

var (
	instance *slog.Logger
	once     sync.Once
)

// fanout 把一条记录分发给所有启用了该级别的 handler
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	return f.each(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

func (f fanout) WithGroup(name string) slog.Handler {
	return f.each(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (f fanout) each(fn func(slog.Handler) slog.Handler) fanout {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = fn(h)
	}
	return out
}

// Get 返回全局 Logger
func Get() *slog.Logger {
	once.Do(func() {
		cfg := config.Get()
		instance = slog.New(newHandler(cfg)).With(
			"app_name", "clinical-trial-system",
			"env", string(cfg.Mode),
		)
	})
	return instance
}

// New 返回带 module 字段的 Logger
func New(module string) *slog.Logger {
	return Get().With("module", module)
}

// newHandler release 模式写 JSON 到轮转文件，否则文本输出到控制台；配置了 Sentry 时 Warn 以上同时上报
func newHandler(cfg *config.Config) slog.Handler {
	release := cfg.Mode == config.ModeRelease
	opts := &slog.HandlerOptions{
		AddSource: release,
		Level:     parseLevel(cfg.Log.Level),
	}

	var base slog.Handler
	if release && cfg.Log.FilePath != "" {
		var w io.Writer = &lumberjack.Logger{
			Filename:   cfg.Log.FilePath,
			MaxSize:    cfg.Log.MaxSize,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAge,
			Compress:   cfg.Log.Compress,
		}
		base = slog.NewJSONHandler(w, opts)
	} else {
		base = slog.NewTextHandler(os.Stdout, opts)
	}

	if cfg.Sentry.Dsn == "" {
		return base
	}
	return fanout{base, sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   []slog.Level{slog.LevelWarn, slog.LevelError},
		AddSource:  release,
	}.NewSentryHandler(context.Background())}
}

// WithContext 为业务日志附加请求 ID、客户端 IP 与当前用户
func WithContext(base *slog.Logger, c *gin.Context) *slog.Logger {
	attrs := []any{"client_ip", c.ClientIP()}
	if id := c.GetString(RequestIDKey); id != "" {
		attrs = append(attrs, "request_id", id)
	}
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		attrs = append(attrs, "x_forwarded_for", fwd)
	}
	if payload, ok := c.Get("payload"); ok {
		if u, ok := payload.(interface{ GetUsername() string }); ok {
			attrs = append(attrs, "username", u.GetUsername())
		}
	}
	return base.With(attrs...)
}

func parseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return slog.LevelInfo
	}
	return l
}
