package response

import "clinical-trial-system/tools"

// InvalidRequest 把参数绑定失败转为 400，校验失败时提示具体字段
func InvalidRequest(err error) *Error {
	return ErrInvalidRequest.WithOrigin(err).WithTips(tools.FormatValidationError(err))
}
