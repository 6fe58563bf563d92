package response

import (
	"errors"
	"fmt"
	"net/http"

	"clinical-trial-system/config"
	"clinical-trial-system/internal/global/sentry"

	"github.com/gin-gonic/gin"
)

// ResponseBody 失败时的响应体，成功时直接返回数据本身
type ResponseBody struct {
	Error  string `json:"error"`
	Origin string `json:"origin,omitempty"`
}

// Success 返回 200 与数据；无数据时返回空对象
func Success(c *gin.Context, data ...any) {
	SuccessWithStatus(c, http.StatusOK, data...)
}

// Created 返回 201 与数据
func Created(c *gin.Context, data ...any) {
	SuccessWithStatus(c, http.StatusCreated, data...)
}

func SuccessWithStatus(c *gin.Context, status int, data ...any) {
	var body any = gin.H{}
	if len(data) > 0 && data[0] != nil {
		body = data[0]
	}
	c.JSON(status, body)
}

// Message 返回 {"message": msg}
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// Fail 按错误码返回扁平的 {"error": msg}，非 *Error 一律视为内部错误
func Fail(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		e = ErrServerInternal.WithOrigin(err)
	}
	c.Set(ErrorContextKey, e)
	sentry.CaptureException(c, e)

	body := ResponseBody{Error: e.Message}
	if config.Get().Mode == config.ModeDebug {
		body.Origin = e.Origin
	}
	c.Set(ResponseContextKey, body)
	c.AbortWithStatusJSON(int(e.Code), body)
}

// Recovery 捕获 panic 并转换为内部错误响应
func Recovery(c *gin.Context) {
	if r := recover(); r != nil {
		err, ok := r.(error)
		if !ok {
			err = fmt.Errorf("%v", r)
		}
		Fail(c, ErrServerInternal.WithOrigin(err))
	}
}
