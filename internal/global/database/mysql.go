package database

import (
	"fmt"
	"time"

	"clinical-trial-system/config"
	"clinical-trial-system/internal/global/sentry/tracing"
	"clinical-trial-system/internal/model"
	"clinical-trial-system/tools"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// DSN 由配置拼出 MySQL 连接串
func DSN(c config.Mysql) string {
	dsn := mysqldriver.NewConfig()
	dsn.User = c.Username
	dsn.Passwd = c.Password
	dsn.Net = "tcp"
	dsn.Addr = c.Host + ":" + c.Port
	dsn.DBName = c.DBName
	dsn.ParseTime = true
	dsn.Loc = time.Local
	dsn.Params = map[string]string{"charset": "utf8mb4"}
	return dsn.FormatDSN()
}

func Init() {
	db, err := Open(mysql.Open(DSN(config.Get().Mysql)))
	tools.PanicOnErr(err)
	DB = db
}

// Open 按当前模式配置 gorm，并挂载 Sentry 追踪插件
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		// 外键只做约定，不在表结构上强制；导出时用 INNER JOIN 过滤孤儿记录
		DisableForeignKeyConstraintWhenMigrating: true,
	}

	switch config.Get().Mode {
	case config.ModeDebug:
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	case config.ModeRelease:
		gormConfig.Logger = logger.Discard
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, err
	}
	if tracing.IsEnabled() {
		if err := db.Use(tracing.NewGormTracingPlugin()); err != nil {
			return nil, fmt.Errorf("注册 gorm 追踪插件失败: %w", err)
		}
	}
	return db, nil
}

// Setup 建表（一次性脚本，不是迁移工具）
func Setup(db *gorm.DB) error {
	return db.AutoMigrate(model.AutoMigrateModels...)
}

// Reset 删除并重建全部表
func Reset(db *gorm.DB) error {
	if err := db.Migrator().DropTable(model.AutoMigrateModels...); err != nil {
		return err
	}
	return Setup(db)
}
