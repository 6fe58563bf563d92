package httpclient

import (
	"clinical-trial-system/config"
	"clinical-trial-system/internal/global/sentry/tracing"

	"github.com/go-resty/resty/v2"
)

// New 创建挂好追踪的 resty 客户端，baseURL 为空时不设置。
// 不设置整体超时，导出快照不分页，可能很慢；需要截止时间时由调用方的 ctx 控制
func New(baseURL string) *resty.Client {
	client := resty.New()
	if baseURL != "" {
		client.SetBaseURL(baseURL)
	}
	tracing.SetupRestyTracing(client, tracing.IsEnabled() && config.Get().Sentry.Tracing.TraceHTTPCalls)
	return client
}
