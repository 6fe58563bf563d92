package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinical-trial-system/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	return c, w
}

func TestFailUsesCodeAndFlatEnvelope(t *testing.T) {
	cfg := config.Default()
	cfg.Mode = config.ModeRelease
	config.Set(cfg)

	c, w := newContext()
	Fail(c, ErrDatabase.WithOrigin(errors.New("connection refused")))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, map[string]any{"error": "Failed to retrieve data"}, body)
	require.True(t, c.IsAborted())
}

func TestFailDebugIncludesOrigin(t *testing.T) {
	config.Set(config.Default())

	c, w := newContext()
	Fail(c, ErrNotFound.WithOrigin(errors.New("no rows")))

	require.Equal(t, http.StatusNotFound, w.Code)
	var body ResponseBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Record not found", body.Error)
	require.Contains(t, body.Origin, "no rows")
}

func TestFailWrapsPlainErrors(t *testing.T) {
	config.Set(config.Default())

	c, w := newContext()
	Fail(c, errors.New("boom"))
	require.Equal(t, http.StatusInternalServerError, w.Code)

	stored, ok := c.Get(ErrorContextKey)
	require.True(t, ok)
	require.ErrorIs(t, stored.(*Error), ErrServerInternal)
}

func TestErrorHelpers(t *testing.T) {
	cause := errors.New("root cause")
	e := ErrDatabase.WithOrigin(cause)
	require.ErrorIs(t, e, ErrDatabase)
	require.ErrorIs(t, e, cause)
	require.NotNil(t, e.StackTrace())
	require.Equal(t, int32(http.StatusInternalServerError), e.GetCode())

	tipped := ErrInvalidRequest.WithTips("status must be one of active, completed, pending")
	require.Equal(t, "status must be one of active, completed, pending", tipped.Message)
	require.ErrorIs(t, tipped, ErrInvalidRequest)
}

func TestSuccessVariants(t *testing.T) {
	c, w := newContext()
	Success(c)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{}`, w.Body.String())

	c, w = newContext()
	Created(c, gin.H{"id": 3})
	require.Equal(t, http.StatusCreated, w.Code)
	require.JSONEq(t, `{"id":3}`, w.Body.String())

	c, w = newContext()
	Message(c, "Trial updated")
	require.JSONEq(t, `{"message":"Trial updated"}`, w.Body.String())
}

func TestRecovery(t *testing.T) {
	config.Set(config.Default())

	c, w := newContext()
	func() {
		defer Recovery(c)
		panic("kaboom")
	}()
	require.Equal(t, http.StatusInternalServerError, w.Code)
}
