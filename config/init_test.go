package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadYamlThenEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
port: "8081"
product: Bayer_CTMS
mysql:
  host: db.internal
  dbname: ctms
ratelimit:
  login_max_attempts: 3
  login_window: 2m
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("CTMS_MYSQL_HOST", "override.internal")

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "8081", c.Port)
	require.Equal(t, "Bayer_CTMS", c.Product)
	require.Equal(t, "override.internal", c.Mysql.Host)
	require.Equal(t, "ctms", c.Mysql.DBName)
	require.Equal(t, int64(3), c.RateLimit.LoginMaxAttempts)
	require.Equal(t, 2*time.Minute, c.RateLimit.LoginWindow)
	require.Equal(t, int64(24), c.JWT.AccessExpire)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestDefault(t *testing.T) {
	c := Default()
	require.Equal(t, ModeDebug, c.Mode)
	require.Equal(t, "CTMS", c.Product)
	require.Equal(t, "api", c.Prefix)
	require.Equal(t, []string{"*"}, c.Cors.AllowOrigins)
}
