package main

import (
	"context"
	"time"

	"github.com/storefront-next/internal/client"
	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/localstore"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/models"
	"github.com/storefront-next/internal/reviews"
)

// 拉取全量商品目录并为每个商品初始化评价记录。
// 已有记录的商品保持原样（种子写入幂等）。
func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Storage.Driver, cfg.Storage.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Storage.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Storage.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Storage.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Storage.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("本地存储初始化失败: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("本地存储迁移失败: %v", err)
	}

	commerce, err := client.New(client.Config{
		BaseURL:   cfg.API.BaseURL,
		TimeoutMS: cfg.API.TimeoutMS,
	}, nil)
	if err != nil {
		stdLog.Fatalf("API 客户端初始化失败: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	products, err := commerce.ListProducts(ctx)
	if err != nil {
		stdLog.Fatalf("商品目录拉取失败: %v", err)
	}

	cache := reviews.New(localstore.New(models.DB), cfg.Reviews.LocalOverride)
	seeded := 0
	for _, product := range products {
		existing, err := cache.EnsureSeeded(product.ID)
		if err != nil {
			logger.Errorw("reviews_seed_failed", "product_id", product.ID, "error", err)
			continue
		}
		seeded++
		logger.Infow("reviews_ready", "product_id", product.ID, "slug", product.Slug, "count", len(existing))
	}

	logger.Infow("seed_reviews_done", "products", len(products), "ready", seeded)
}
