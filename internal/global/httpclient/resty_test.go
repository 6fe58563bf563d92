package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinical-trial-system/config"

	"github.com/stretchr/testify/require"
)

func TestNewHasNoClientTimeout(t *testing.T) {
	config.Set(config.Default())
	client := New("http://localhost:5000/api")
	require.Zero(t, client.GetClient().Timeout)
	require.Equal(t, "http://localhost:5000/api", client.BaseURL)
}

func TestNewWaitsForSlowServerUntilContextDeadline(t *testing.T) {
	config.Set(config.Default())
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(300 * time.Millisecond):
			_, _ = w.Write([]byte("ok"))
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	client := New(srv.URL)

	resp, err := client.R().Get("/slow")
	require.NoError(t, err)
	require.Equal(t, "ok", resp.String())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = client.R().SetContext(ctx).Get("/slow")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
