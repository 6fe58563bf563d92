package archive

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"clinical-trial-system/config"

	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	now := time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC)
	key := objectKey("/exports/", "CTMS_GlobalReport_2025-03-09.xlsx", now)
	require.True(t, strings.HasPrefix(key, "exports/2025-03-09/"), key)
	require.True(t, strings.HasSuffix(key, "_CTMS_GlobalReport_2025-03-09.xlsx"), key)

	key = objectKey("", "../../etc/report.xlsx", now)
	require.True(t, strings.HasPrefix(key, "2025-03-09/"), key)
	require.NotContains(t, key, "..")
}

func TestLocalStorePut(t *testing.T) {
	dir := t.TempDir()
	store, err := New(context.Background(), config.Archive{LocalDir: dir, BaseURL: "https://files.example.com/"})
	require.NoError(t, err)
	require.IsType(t, &LocalStore{}, store)

	res, err := store.Put(context.Background(), "report.xlsx", "", []byte("payload"))
	require.NoError(t, err)
	require.Equal(t, "https://files.example.com/"+res.Key, res.URL)
	require.Zero(t, res.ExpiresAt)

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(res.Key)))
	require.NoError(t, err)
	require.Equal(t, "payload", string(data))
}

func TestLocalStoreWithoutBaseURLReturnsPath(t *testing.T) {
	dir := t.TempDir()
	store := &LocalStore{Dir: dir}
	res, err := store.Put(context.Background(), "report.xlsx", "", []byte("x"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, filepath.FromSlash(res.Key)), res.URL)
}
