package database_test

import (
	"testing"

	"clinical-trial-system/config"
	"clinical-trial-system/internal/global/database"
	"clinical-trial-system/internal/model"
	"clinical-trial-system/test"
	"clinical-trial-system/tools"

	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	dsn := database.DSN(config.Mysql{Host: "db", Port: "3306", Username: "ctms", Password: "pw", DBName: "ctms"})
	require.Contains(t, dsn, "ctms:pw@tcp(db:3306)/ctms?")
	require.Contains(t, dsn, "parseTime=true")
	require.Contains(t, dsn, "charset=utf8mb4")
}

func TestSeed(t *testing.T) {
	db := test.NewDB(t)
	require.NoError(t, database.Seed(db))
	// 重复执行不会产生重复数据
	require.NoError(t, database.Seed(db))

	var trials, participants, activities, users int64
	require.NoError(t, db.Model(&model.Trial{}).Count(&trials).Error)
	require.NoError(t, db.Model(&model.Participant{}).Count(&participants).Error)
	require.NoError(t, db.Model(&model.Activity{}).Count(&activities).Error)
	require.NoError(t, db.Model(&model.User{}).Count(&users).Error)
	require.Equal(t, int64(3), trials)
	require.Equal(t, int64(5), participants)
	require.Equal(t, int64(5), activities)
	require.Equal(t, int64(1), users)

	var root model.User
	require.NoError(t, db.Where("username = ?", "root").First(&root).Error)
	require.Equal(t, model.RoleAdmin, root.Role)
	require.True(t, tools.PasswordCompare("root", root.Password))

	var a model.Activity
	require.NoError(t, db.First(&a).Error)
	require.False(t, a.ActivityDate.IsZero())
}

func TestReset(t *testing.T) {
	db := test.NewDB(t)
	require.NoError(t, database.Seed(db))
	require.NoError(t, database.Reset(db))

	var trials int64
	require.NoError(t, db.Model(&model.Trial{}).Count(&trials).Error)
	require.Zero(t, trials)
}
