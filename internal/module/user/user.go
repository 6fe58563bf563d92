package user

import (
	"clinical-trial-system/internal/dto"
	"clinical-trial-system/internal/global/database"
	"clinical-trial-system/internal/global/jwt"
	"clinical-trial-system/internal/global/logger"
	"clinical-trial-system/internal/global/response"
	"clinical-trial-system/internal/global/sentry/tracing"
	"clinical-trial-system/internal/model"
	"clinical-trial-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type RegisterReq struct {
	Username string     `json:"username" binding:"required,max=255"`
	Password string     `json:"password" binding:"required,min=4,max=72"`
	Role     model.Role `json:"role" binding:"omitempty,oneof=participant investigator"`
}

// Register 自助注册，角色缺省为 participant，不允许注册 admin
func Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.InvalidRequest(err))
		return
	}
	if req.Role == "" {
		req.Role = model.RoleParticipant
	}

	db := database.DB.WithContext(tracing.ContextWithSpan(c))
	taken, err := usernameTaken(db, req.Username)
	if err != nil {
		logger.WithContext(log, c).Error("数据库查询失败", "error", err, "username", req.Username)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if taken {
		logger.WithContext(log, c).Warn("用户已存在", "username", req.Username)
		response.Fail(c, response.ErrAlreadyExists.WithTips("Username already exists"))
		return
	}

	hashed, err := tools.PasswordEncrypt(req.Password)
	if err != nil {
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}
	user := model.User{Username: req.Username, Password: hashed, Role: req.Role}
	if err := db.Create(&user).Error; err != nil {
		logger.WithContext(log, c).Error("创建用户失败", "error", err, "username", req.Username)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	logger.WithContext(log, c).Info("用户注册成功", "username", user.Username, "role", user.Role)
	response.Created(c, gin.H{"message": "User created"})
}

func Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.InvalidRequest(err))
		return
	}

	ctx := tracing.ContextWithSpan(c)
	blocked, err := limiter.Blocked(ctx, req.Username)
	if err != nil {
		// 限流不可用时放行
		logger.WithContext(log, c).Warn("读取登录失败计数失败", "error", err, "username", req.Username)
	}
	if blocked {
		logger.WithContext(log, c).Warn("登录失败次数过多", "username", req.Username)
		response.Fail(c, response.ErrTooManyRequests)
		return
	}

	user, err := getUserByUsername(database.DB.WithContext(ctx), req.Username)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		loginFailed(c, req.Username)
		return
	case err != nil:
		logger.WithContext(log, c).Error("数据库查询失败", "error", err, "username", req.Username)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if !tools.PasswordCompare(req.Password, user.Password) {
		loginFailed(c, req.Username)
		return
	}

	token, err := jwt.CreateToken(jwt.Payload{UserID: user.ID, Username: user.Username, Role: user.Role})
	if err != nil {
		logger.WithContext(log, c).Error("签发令牌失败", "error", err)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}
	if err := limiter.Reset(ctx, user.Username); err != nil {
		logger.WithContext(log, c).Warn("清除登录失败计数失败", "error", err, "username", user.Username)
	}

	logger.WithContext(log, c).Info("用户登录成功", "username", user.Username, "role", user.Role)
	response.Success(c, dto.LoginResp{
		Token: token,
		User:  dto.UserInfo{ID: user.ID, Username: user.Username, Role: user.Role},
	})
}

func loginFailed(c *gin.Context, username string) {
	logger.WithContext(log, c).Warn("用户名或密码错误", "username", username)
	if err := limiter.Fail(tracing.ContextWithSpan(c), username); err != nil {
		logger.WithContext(log, c).Warn("记录登录失败次数失败", "error", err, "username", username)
	}
	response.Fail(c, response.ErrInvalidPassword)
}

func GetMe(c *gin.Context) {
	claims, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrTokenInvalid)
		return
	}
	user, err := getUserByID(database.DB.WithContext(tracing.ContextWithSpan(c)), claims.UserID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrNotFound.WithTips("User not found"))
		return
	case err != nil:
		logger.WithContext(log, c).Error("查询用户失败", "error", err, "user_id", claims.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, dto.UserInfo{ID: user.ID, Username: user.Username, Role: user.Role})
}

func ListUsers(c *gin.Context) {
	users, err := listUsers(database.DB.WithContext(tracing.ContextWithSpan(c)))
	if err != nil {
		logger.WithContext(log, c).Error("查询用户列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, users)
}
