package jwt

import (
	"github.com/gin-gonic/gin"
)

// PayloadKey 鉴权通过后令牌信息在 gin.Context 中的键
const PayloadKey = "payload"

func SetUserPayload(c *gin.Context, claims *Claims) {
	c.Set(PayloadKey, claims)
}

// GetUserPayload 取当前登录用户，未经过 Auth 中间件时 ok 为 false
func GetUserPayload(c *gin.Context) (claims *Claims, ok bool) {
	v, exists := c.Get(PayloadKey)
	if !exists {
		return nil, false
	}
	claims, ok = v.(*Claims)
	return claims, ok && claims != nil
}
