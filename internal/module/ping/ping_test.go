package ping

import (
	"net/http"
	"testing"

	"clinical-trial-system/config"
	"clinical-trial-system/test"

	"github.com/stretchr/testify/require"
)

func TestPing(t *testing.T) {
	config.Set(config.Default())
	r := test.NewRouter()
	m := &ModulePing{}
	m.Init()
	m.InitRouter(r.Group(""))

	w := test.DoRequest(t, r, http.MethodGet, "/ping", "", nil)
	test.NoError(t, w)
	require.JSONEq(t, `{"message":"pong","version":"1.0.0"}`, w.Body.String())
}
