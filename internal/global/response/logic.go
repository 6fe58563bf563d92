package response

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

const (
	// ErrorContextKey 失败时 *Error 在 gin.Context 中的键
	ErrorContextKey = "error"
	// ResponseContextKey 响应体在 gin.Context 中的键，日志与 Sentry 读取
	ResponseContextKey = "response_body"
)

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// Error 业务错误。Code 即 HTTP 状态码，Message 原样返回给调用方
type Error struct {
	Code    int32  `json:"code"`
	Message string `json:"error"`
	Origin  string `json:"origin"` // 仅 debug 模式返回

	cause error
	stack pkgerrors.StackTrace
}

func newError(code int32, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

func (e *Error) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("%d %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%d %s: %v", e.Code, e.Message, e.cause)
}

// GetCode 实现 sentry.CodedError
func (e *Error) GetCode() int32 {
	return e.Code
}

func (e *Error) Unwrap() error {
	return e.cause
}

// StackTrace 供 Sentry 提取堆栈
func (e *Error) StackTrace() pkgerrors.StackTrace {
	if e.stack != nil {
		return e.stack
	}
	var st stackTracer
	if errors.As(e.cause, &st) {
		return st.StackTrace()
	}
	return nil
}

// Is 同一状态码视为同一类错误
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// WithOrigin 附带原始错误，没有堆栈的补上调用处的堆栈
func (e *Error) WithOrigin(err error) *Error {
	if err == nil {
		return e
	}
	if _, ok := err.(stackTracer); !ok {
		err = pkgerrors.WithStack(err)
	}
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Origin:  fmt.Sprintf("%+v", err),
		cause:   err,
		stack:   err.(stackTracer).StackTrace(),
	}
}

// WithTips 替换返回给调用方的提示，release 模式同样可见
func (e *Error) WithTips(details ...string) *Error {
	clone := *e
	clone.Message = strings.Join(details, " ")
	return &clone
}
