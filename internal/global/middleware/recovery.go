package middleware

import (
	"clinical-trial-system/internal/global/response"

	"github.com/gin-gonic/gin"
)

// Recovery 把 panic 转为 500 响应；放在 sentry 中间件之后，Repanic 的异常在这里收口
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer response.Recovery(c)
		c.Next()
	}
}
