package test

import (
	"testing"

	"clinical-trial-system/config"
	"clinical-trial-system/internal/global/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewDB 创建独立的内存 SQLite 库并建表，同时替换 database.DB
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := config.Default()
	cfg.Mode = config.ModeRelease
	cfg.JWT.AccessSecret = "test-secret"
	config.Set(cfg)

	db, err := database.Open(sqlite.Open("file:" + uuid.NewString() + "?mode=memory&cache=shared"))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 内存库在最后一个连接关闭时销毁，单连接同时避免 SQLite 锁表
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.Setup(db))

	database.DB = db
	return db
}
