package ping

import (
	"clinical-trial-system/internal/global/response"

	"github.com/gin-gonic/gin"
)

// Version 服务版本，构建时可通过 -ldflags 覆盖
var Version = "1.0.0"

func (p *ModulePing) InitRouter(r *gin.RouterGroup) {
	r.GET("/ping", func(c *gin.Context) {
		log.Debug("ping", "client_ip", c.ClientIP())
		response.Success(c, gin.H{
			"message": "pong",
			"version": Version,
		})
	})
}
