package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinical-trial-system/internal/global/jwt"
	"clinical-trial-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Token 为测试用户签发令牌
func Token(t *testing.T, id uint, username string, role model.Role) string {
	t.Helper()
	token, err := jwt.CreateToken(jwt.Payload{UserID: id, Username: username, Role: role})
	require.NoError(t, err)
	return token
}

// DoRequest 通过完整路由发起请求，request 为 nil 时不带请求体
func DoRequest(t *testing.T, r http.Handler, method, path, token string, request any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if request != nil {
		requestBytes, err := json.Marshal(request)
		require.NoError(t, err)
		body = bytes.NewReader(requestBytes)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Decode 把响应体解析到 out
func Decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(w.Body).Decode(out))
}

// NewRouter 创建测试用 gin 引擎
func NewRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// Serve 发送自行构造的请求
func Serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
