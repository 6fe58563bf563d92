// Package tracing 提供 Sentry 性能追踪的集成，
// 覆盖 GORM、Redis 与 resty 客户端
package tracing

import (
	"context"

	"clinical-trial-system/config"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

// IsEnabled 检查 Sentry 追踪是否已启用
func IsEnabled() bool {
	return config.Get().Sentry.Dsn != ""
}

// ContextWithSpan 返回携带当前 transaction 的 context，
// 传给 database.DB.WithContext 后查询会挂在请求的 span 下
func ContextWithSpan(c *gin.Context) context.Context {
	if c == nil || c.Request == nil {
		return context.Background()
	}
	return c.Request.Context()
}

// StartSpan 在当前请求的 transaction 下创建子 span，没有 transaction 时返回 nil
//
//	span := tracing.StartSpan(c, "report.export", "build workbook")
//	defer tracing.Finish(span)
func StartSpan(c *gin.Context, operation, description string) *sentry.Span {
	return StartSpanFromContext(ContextWithSpan(c), operation, description)
}

// StartSpanFromContext 适用于非 gin handler 的场景
func StartSpanFromContext(ctx context.Context, operation, description string) *sentry.Span {
	parentSpan := sentry.SpanFromContext(ctx)
	if parentSpan == nil {
		return nil
	}

	span := parentSpan.StartChild(operation)
	span.Description = description
	return span
}

// Finish 结束 span，nil 安全
func Finish(span *sentry.Span) {
	if span != nil {
		span.Finish()
	}
}
