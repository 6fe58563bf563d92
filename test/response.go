package test

import (
	"net/http/httptest"
	"testing"

	"clinical-trial-system/internal/global/response"

	"github.com/stretchr/testify/require"
)

// ErrorEqual 断言响应为指定错误
func ErrorEqual(t *testing.T, expected *response.Error, w *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, int(expected.Code), w.Code)
	var resp response.ResponseBody
	Decode(t, w, &resp)
	require.Equal(t, expected.Message, resp.Error)
}

// NoError 断言响应为 2xx
func NoError(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	require.GreaterOrEqual(t, w.Code, 200, w.Body.String())
	require.Less(t, w.Code, 300, w.Body.String())
}
