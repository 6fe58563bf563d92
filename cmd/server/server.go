package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"clinical-trial-system/config"
	"clinical-trial-system/internal/global/archive"
	"clinical-trial-system/internal/global/database"
	"clinical-trial-system/internal/global/logger"
	"clinical-trial-system/internal/global/middleware"
	"clinical-trial-system/internal/global/redis"
	"clinical-trial-system/internal/global/sentry"
	"clinical-trial-system/internal/module"
	"clinical-trial-system/tools"

	"github.com/gin-gonic/gin"
)

var log *slog.Logger

func Init() {
	config.Init()
	tools.PanicOnErr(sentry.Init())
	log = logger.New("Server")

	database.Init()
	redis.Init()
	if err := archive.Init(context.Background()); err != nil {
		// 归档不可用只影响 /reports/export/archive
		log.Error("导出归档初始化失败", "error", err)
	}
	tools.UseJSONFieldNames()

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init()
	}
}

// NewEngine 组装中间件与各模块路由
func NewEngine() *gin.Engine {
	cfg := config.Get()
	gin.SetMode(string(cfg.Mode))
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(sentry.Middleware(), middleware.SentryEnrichIP())
	switch cfg.Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	r.Use(middleware.Cors(cfg.Cors))
	r.Use(middleware.Recovery())

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + cfg.Prefix))
	}
	return r
}

// Run 启动 HTTP 服务，ctx 取消后优雅退出
func Run(ctx context.Context) error {
	cfg := config.Get()
	srv := &http.Server{
		Addr:              cfg.Host + ":" + cfg.Port,
		Handler:           NewEngine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("服务启动", "addr", srv.Addr, "mode", cfg.Mode)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("正在关闭服务")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)

	sentry.Flush(2 * time.Second)
	if closeErr := redis.Close(); closeErr != nil {
		log.Warn("关闭 redis 失败", "error", closeErr)
	}
	if sqlDB, dbErr := database.DB.DB(); dbErr == nil {
		_ = sqlDB.Close()
	}
	return err
}
