package jwt

import (
	"errors"
	"time"

	"clinical-trial-system/config"
	"clinical-trial-system/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// Payload 写入令牌的用户信息
type Payload struct {
	UserID   uint       `json:"user_id"`
	Username string     `json:"username"`
	Role     model.Role `json:"role"`
}

type Claims struct {
	Payload
	jwt.RegisteredClaims
}

var ErrSecretMissing = errors.New("jwt access secret 未配置")

// CreateToken 签发 HS256 令牌，有效期取 JWT.AccessExpire（小时）
func CreateToken(payload Payload) (string, error) {
	cfg := config.Get().JWT
	if cfg.AccessSecret == "" {
		return "", ErrSecretMissing
	}
	now := time.Now()
	claims := Claims{
		Payload: payload,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.AccessExpire) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.AccessSecret))
}

// ParseToken 校验令牌，返回其中的用户信息
func ParseToken(tokenString string) (*Claims, bool) {
	secret := config.Get().JWT.AccessSecret
	if secret == "" {
		return nil, false
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, false
	}
	return claims, true
}

// GetUsername 供日志取当前用户名
func (c *Claims) GetUsername() string {
	return c.Username
}
