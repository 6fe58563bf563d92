package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, parseLevel("debug"))
	require.Equal(t, slog.LevelWarn, parseLevel("WARN"))
	require.Equal(t, slog.LevelError, parseLevel("error"))
	require.Equal(t, slog.LevelInfo, parseLevel(""))
	require.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestFanoutRespectsEachLevel(t *testing.T) {
	var info, errOnly bytes.Buffer
	h := fanout{
		slog.NewTextHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&errOnly, &slog.HandlerOptions{Level: slog.LevelError}),
	}
	l := slog.New(h).With("module", "Report")

	l.Info("导出报表")
	require.Contains(t, info.String(), "module=Report")
	require.Empty(t, errOnly.String())

	l.Error("查询失败")
	require.Contains(t, errOnly.String(), "查询失败")
	require.False(t, h.Enabled(context.Background(), slog.LevelDebug))
}
