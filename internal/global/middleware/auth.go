package middleware

import (
	"strings"

	"clinical-trial-system/internal/global/jwt"
	"clinical-trial-system/internal/global/response"
	"clinical-trial-system/internal/model"

	"github.com/gin-gonic/gin"
)

// Auth 校验 Bearer token，并要求角色不低于 minRole
func Auth(minRole model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || token == "" {
			response.Fail(c, response.ErrTokenInvalid)
			return
		}

		claims, valid := jwt.ParseToken(token)
		if !valid {
			response.Fail(c, response.ErrTokenInvalid)
			return
		}
		if claims.Role.Level() < minRole.Level() {
			response.Fail(c, response.ErrUnauthorized)
			return
		}
		jwt.SetUserPayload(c, claims)
		c.Next()
	}
}
