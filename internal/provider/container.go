package provider

import (
	"time"

	"github.com/storefront-next/internal/client"
	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/localstore"
	"github.com/storefront-next/internal/models"
	"github.com/storefront-next/internal/reviews"
	"github.com/storefront-next/internal/store"
)

// Container 依赖注入容器
// 每个状态容器独占自己的状态切片，跨容器只通过各自的读操作访问
type Container struct {
	Config *config.Config

	// 持久化存储
	Storage *localstore.Store

	// 状态容器
	Cart          *store.CartStore
	Session       *store.SessionStore
	Notifications *store.NotificationQueue
	Reviews       *reviews.Cache

	// 远端客户端
	Commerce *client.CommerceClient
}

// NewContainer 创建并接线依赖
// 会话容器在此处完成启动重水合
func NewContainer(cfg *config.Config) (*Container, error) {
	storage := localstore.New(models.DB)
	session := store.NewSessionStore(storage)

	commerce, err := client.New(client.Config{
		BaseURL:   cfg.API.BaseURL,
		TimeoutMS: cfg.API.TimeoutMS,
	}, session.AccessToken)
	if err != nil {
		return nil, err
	}

	return &Container{
		Config:        cfg,
		Storage:       storage,
		Cart:          store.NewCartStore(),
		Session:       session,
		Notifications: store.NewNotificationQueue(time.Duration(cfg.Notify.TTLMS) * time.Millisecond),
		Reviews:       reviews.New(storage, cfg.Reviews.LocalOverride),
		Commerce:      commerce,
	}, nil
}

// Close 释放容器持有的资源（通知定时器等）
func (c *Container) Close() {
	if c == nil {
		return
	}
	if c.Notifications != nil {
		c.Notifications.Close()
	}
}
