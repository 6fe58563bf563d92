package middleware_test

import (
	"net/http"
	"testing"

	"clinical-trial-system/internal/global/jwt"
	"clinical-trial-system/internal/global/logger"
	"clinical-trial-system/internal/global/middleware"
	"clinical-trial-system/internal/global/response"
	"clinical-trial-system/internal/model"
	"clinical-trial-system/test"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T, minRole model.Role) *gin.Engine {
	t.Helper()
	test.NewDB(t)
	r := test.NewRouter()
	r.Use(middleware.RequestID(), middleware.Recovery())
	r.GET("/guarded", middleware.Auth(minRole), func(c *gin.Context) {
		claims, ok := jwt.GetUserPayload(c)
		require.True(t, ok)
		response.Success(c, gin.H{"username": claims.Username, "request_id": c.GetString(logger.RequestIDKey)})
	})
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func TestAuthRejectsMissingAndMalformedTokens(t *testing.T) {
	r := newRouter(t, model.RoleParticipant)

	w := test.DoRequest(t, r, http.MethodGet, "/guarded", "", nil)
	test.ErrorEqual(t, response.ErrTokenInvalid, w)

	w = test.DoRequest(t, r, http.MethodGet, "/guarded", "not-a-jwt", nil)
	test.ErrorEqual(t, response.ErrTokenInvalid, w)
}

func TestAuthEnforcesRoleLevel(t *testing.T) {
	r := newRouter(t, model.RoleInvestigator)

	w := test.DoRequest(t, r, http.MethodGet, "/guarded", test.Token(t, 1, "pat", model.RoleParticipant), nil)
	test.ErrorEqual(t, response.ErrUnauthorized, w)

	w = test.DoRequest(t, r, http.MethodGet, "/guarded", test.Token(t, 2, "inv", model.RoleInvestigator), nil)
	test.NoError(t, w)

	w = test.DoRequest(t, r, http.MethodGet, "/guarded", test.Token(t, 3, "root", model.RoleAdmin), nil)
	test.NoError(t, w)
	var body map[string]string
	test.Decode(t, w, &body)
	require.Equal(t, "root", body["username"])
	require.NotEmpty(t, body["request_id"])
	require.Equal(t, body["request_id"], w.Header().Get("X-Request-ID"))
}

func TestRequestIDIsPropagated(t *testing.T) {
	r := newRouter(t, model.RoleParticipant)
	req, _ := http.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := test.Serve(r, req)
	require.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	require.Equal(t, http.StatusInternalServerError, w.Code)
}
