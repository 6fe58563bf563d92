package user

import (
	"context"
	"net/http"
	"testing"
	"time"

	"clinical-trial-system/config"
	"clinical-trial-system/internal/dto"
	"clinical-trial-system/internal/global/response"
	"clinical-trial-system/internal/model"
	"clinical-trial-system/test"
	"clinical-trial-system/tools"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setup(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := test.NewDB(t)
	tools.UseJSONFieldNames()
	r := test.NewRouter()
	m := &ModuleUser{}
	m.Init()
	m.InitRouter(r.Group(""))
	return r, db
}

func TestRegisterAndLogin(t *testing.T) {
	r, db := setup(t)

	w := test.DoRequest(t, r, http.MethodPost, "/auth/register", "", map[string]any{
		"username": "dr.house",
		"password": "vicodin",
		"role":     "investigator",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.JSONEq(t, `{"message":"User created"}`, w.Body.String())

	var stored model.User
	require.NoError(t, db.Where("username = ?", "dr.house").First(&stored).Error)
	require.NotEqual(t, "vicodin", stored.Password)
	require.Equal(t, model.RoleInvestigator, stored.Role)

	w = test.DoRequest(t, r, http.MethodPost, "/auth/login", "", map[string]any{
		"username": "dr.house",
		"password": "vicodin",
	})
	test.NoError(t, w)
	var resp dto.LoginResp
	test.Decode(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, dto.UserInfo{ID: stored.ID, Username: "dr.house", Role: model.RoleInvestigator}, resp.User)

	w = test.DoRequest(t, r, http.MethodGet, "/auth/me", resp.Token, nil)
	test.NoError(t, w)
	var me dto.UserInfo
	test.Decode(t, w, &me)
	require.Equal(t, "dr.house", me.Username)
}

func TestRegisterDefaultsAndRestrictions(t *testing.T) {
	r, db := setup(t)

	w := test.DoRequest(t, r, http.MethodPost, "/auth/register", "", map[string]any{"username": "pat", "password": "secret"})
	require.Equal(t, http.StatusCreated, w.Code)
	var stored model.User
	require.NoError(t, db.Where("username = ?", "pat").First(&stored).Error)
	require.Equal(t, model.RoleParticipant, stored.Role)

	w = test.DoRequest(t, r, http.MethodPost, "/auth/register", "", map[string]any{"username": "pat", "password": "secret"})
	test.ErrorEqual(t, response.ErrAlreadyExists.WithTips("Username already exists"), w)

	w = test.DoRequest(t, r, http.MethodPost, "/auth/register", "", map[string]any{
		"username": "eve", "password": "secret", "role": "admin",
	})
	test.ErrorEqual(t, response.ErrInvalidRequest.WithTips("role must be one of participant, investigator"), w)
}

func TestLoginInvalidCredentials(t *testing.T) {
	r, _ := setup(t)

	w := test.DoRequest(t, r, http.MethodPost, "/auth/login", "", map[string]any{"username": "nobody", "password": "x"})
	test.ErrorEqual(t, response.ErrInvalidPassword, w)

	test.DoRequest(t, r, http.MethodPost, "/auth/register", "", map[string]any{"username": "pat", "password": "secret"})
	w = test.DoRequest(t, r, http.MethodPost, "/auth/login", "", map[string]any{"username": "pat", "password": "wrong"})
	test.ErrorEqual(t, response.ErrInvalidPassword, w)
}

func TestLoginThrottling(t *testing.T) {
	r, _ := setup(t)
	var mr *miniredis.Miniredis
	limiter, mr = newRedisLimiter(t, 2, time.Minute)
	t.Cleanup(func() { limiter = noopLimiter{} })

	test.DoRequest(t, r, http.MethodPost, "/auth/register", "", map[string]any{"username": "pat", "password": "secret"})
	for range 2 {
		w := test.DoRequest(t, r, http.MethodPost, "/auth/login", "", map[string]any{"username": "pat", "password": "wrong"})
		test.ErrorEqual(t, response.ErrInvalidPassword, w)
	}
	// 达到上限后即使密码正确也拒绝
	w := test.DoRequest(t, r, http.MethodPost, "/auth/login", "", map[string]any{"username": "pat", "password": "secret"})
	test.ErrorEqual(t, response.ErrTooManyRequests, w)

	// 窗口过去后解除
	mr.FastForward(time.Minute)
	w = test.DoRequest(t, r, http.MethodPost, "/auth/login", "", map[string]any{"username": "pat", "password": "wrong"})
	test.ErrorEqual(t, response.ErrInvalidPassword, w)
	require.True(t, mr.Exists(loginFailKey("pat")))

	// 登录成功清零
	w = test.DoRequest(t, r, http.MethodPost, "/auth/login", "", map[string]any{"username": "pat", "password": "secret"})
	test.NoError(t, w)
	require.False(t, mr.Exists(loginFailKey("pat")))
}

func TestListUsersRequiresAdmin(t *testing.T) {
	r, db := setup(t)
	require.NoError(t, db.Create(&[]model.User{
		{Username: "zed", Password: "x", Role: model.RoleParticipant},
		{Username: "amy", Password: "x", Role: model.RoleInvestigator},
	}).Error)

	w := test.DoRequest(t, r, http.MethodGet, "/auth/users", test.Token(t, 2, "amy", model.RoleInvestigator), nil)
	test.ErrorEqual(t, response.ErrUnauthorized, w)

	w = test.DoRequest(t, r, http.MethodGet, "/auth/users", test.Token(t, 9, "root", model.RoleAdmin), nil)
	test.NoError(t, w)
	require.NotContains(t, w.Body.String(), "password")
	var users []dto.UserInfo
	test.Decode(t, w, &users)
	require.Len(t, users, 2)
	require.Equal(t, "amy", users[0].Username)
	require.Equal(t, "zed", users[1].Username)
}

func TestNewLimiterWithoutRedis(t *testing.T) {
	require.IsType(t, noopLimiter{}, newLimiter(nil, config.Default().RateLimit))
}

func newRedisLimiter(t *testing.T, max int64, window time.Duration) (loginLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return newLimiter(client, config.RateLimit{LoginMaxAttempts: max, LoginWindow: window}), mr
}

func TestRedisLimiterBlocksAtMax(t *testing.T) {
	l, _ := newRedisLimiter(t, 2, time.Minute)
	require.IsType(t, &redisLimiter{}, l)
	ctx := context.Background()

	blocked, err := l.Blocked(ctx, "amy")
	require.NoError(t, err)
	require.False(t, blocked)

	require.NoError(t, l.Fail(ctx, "amy"))
	blocked, err = l.Blocked(ctx, "amy")
	require.NoError(t, err)
	require.False(t, blocked)

	require.NoError(t, l.Fail(ctx, "amy"))
	blocked, err = l.Blocked(ctx, "amy")
	require.NoError(t, err)
	require.True(t, blocked)

	// 其他用户名不受影响
	blocked, err = l.Blocked(ctx, "zed")
	require.NoError(t, err)
	require.False(t, blocked)
}

func TestRedisLimiterWindowStartsAtFirstFailure(t *testing.T) {
	l, mr := newRedisLimiter(t, 2, time.Minute)
	ctx := context.Background()
	key := loginFailKey("amy")

	require.NoError(t, l.Fail(ctx, "amy"))
	require.Equal(t, time.Minute, mr.TTL(key))

	mr.FastForward(40 * time.Second)
	require.NoError(t, l.Fail(ctx, "amy"))
	require.Equal(t, 20*time.Second, mr.TTL(key))
	got, err := mr.Get(key)
	require.NoError(t, err)
	require.Equal(t, "2", got)

	mr.FastForward(21 * time.Second)
	require.False(t, mr.Exists(key))
	blocked, err := l.Blocked(ctx, "amy")
	require.NoError(t, err)
	require.False(t, blocked)
}

func TestRedisLimiterResetAfterSuccess(t *testing.T) {
	l, mr := newRedisLimiter(t, 1, time.Minute)
	ctx := context.Background()

	require.NoError(t, l.Fail(ctx, "amy"))
	blocked, err := l.Blocked(ctx, "amy")
	require.NoError(t, err)
	require.True(t, blocked)

	require.NoError(t, l.Reset(ctx, "amy"))
	require.False(t, mr.Exists(loginFailKey("amy")))
	blocked, err = l.Blocked(ctx, "amy")
	require.NoError(t, err)
	require.False(t, blocked)
}
