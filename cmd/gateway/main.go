package main

import (
	"fmt"
	"os"
	"syscall"

	"github.com/storefront-next/internal/app"
	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset = "\033[0m"
	ansiDim   = "\033[2m"
	ansiGreen = "\033[32m"
	ansiCyan  = "\033[36m"
)

func main() {
	printStartupBanner()

	// 加载配置
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	// 初始化本地持久化存储
	if err := models.InitDB(cfg.Storage.Driver, cfg.Storage.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Storage.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Storage.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Storage.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Storage.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("本地存储初始化失败: %v", err)
	}

	// 自动迁移本地存储表
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("本地存储迁移失败: %v", err)
	}

	// 设置 Gin 模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
	}); err != nil {
		stdLog.Fatalf("服务运行失败: %v", err)
	}
}

func printStartupBanner() {
	fmt.Println(ansiCyan + "Storefront-Next Gateway 启动中" + ansiReset)
	fmt.Println(ansiGreen + "本地店面网关：购物车 / 会话 / 通知 / 评价缓存" + ansiReset)
	fmt.Println(ansiDim + "--------------------------------------------------------------" + ansiReset)
}
