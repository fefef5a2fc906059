package storefront

import "github.com/storefront-next/internal/provider"

// Handler 店面网关接口处理器入口
// 说明：该处理器是视图层与状态容器之间的适配面，自身不持有状态。
type Handler struct {
	*provider.Container
}

// New 创建店面处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
