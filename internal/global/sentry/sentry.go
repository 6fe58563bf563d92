package sentry

import (
	"errors"
	"fmt"
	"time"

	"clinical-trial-system/config"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
)

// Release 上报时的版本号
const Release = "clinical-trial-system@1.0.0"

// CodedError 带 HTTP 状态码的错误，只有 5xx 会上报
type CodedError interface {
	error
	GetCode() int32
}

func enabled() bool {
	return config.Get().Sentry.Dsn != ""
}

// Init 初始化 Sentry SDK，未配置 DSN 时跳过
func Init() error {
	if !enabled() {
		return nil
	}
	if err := sentry.Init(clientOptions(config.Get())); err != nil {
		return fmt.Errorf("sentry initialization failed: %w", err)
	}
	return nil
}

func clientOptions(cfg *config.Config) sentry.ClientOptions {
	opts := sentry.ClientOptions{
		Dsn:              cfg.Sentry.Dsn,
		Environment:      cfg.Sentry.Environment,
		Release:          Release,
		SampleRate:       1.0,
		EnableTracing:    true,
		TracesSampleRate: cfg.Sentry.SampleRate,
		EnableLogs:       true,
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			// 请求体里有受试者姓名，不上报
			if event.Request != nil {
				event.Request.Data = ""
			}
			return event
		},
	}
	if opts.Environment == "" {
		opts.Environment = string(cfg.Mode)
	}
	if opts.TracesSampleRate <= 0 {
		opts.TracesSampleRate = 1.0
	}
	return opts
}

// Middleware 未配置 DSN 时返回空中间件
func Middleware() gin.HandlerFunc {
	if !enabled() {
		return func(c *gin.Context) { c.Next() }
	}
	return sentrygin.New(sentrygin.Options{
		Repanic: true,
		Timeout: 2 * time.Second,
	})
}

// CaptureException 上报 5xx，附带路由与当前用户
func CaptureException(c *gin.Context, err error) {
	if !enabled() || !shouldReport(err) {
		return
	}
	hub := sentrygin.GetHubFromContext(c)
	if hub == nil {
		return
	}
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetRequest(c.Request)
		scope.SetTag("path", c.FullPath())
		scope.SetTag("method", c.Request.Method)
		if payload, ok := c.Get("payload"); ok {
			scope.SetUser(sentry.User{Data: map[string]string{"payload": fmt.Sprintf("%+v", payload)}})
		}
		hub.CaptureException(err)
	})
}

func shouldReport(err error) bool {
	var coded CodedError
	if errors.As(err, &coded) {
		return coded.GetCode() >= 500
	}
	return true
}

func Flush(timeout time.Duration) {
	sentry.Flush(timeout)
}
