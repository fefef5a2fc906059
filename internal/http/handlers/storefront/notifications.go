package storefront

import (
	"strconv"

	"github.com/storefront-next/internal/http/response"
	"github.com/storefront-next/internal/models"

	"github.com/gin-gonic/gin"
)

// ListNotifications 获取当前通知（按插入顺序）
func (h *Handler) ListNotifications(c *gin.Context) {
	items := h.Notifications.List()
	if items == nil {
		items = []models.Notification{}
	}
	response.Success(c, items)
}

// DismissNotification 手动移除通知（幂等）
func (h *Handler) DismissNotification(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid notification id")
		return
	}
	h.Notifications.Dismiss(id)
	response.Success(c, nil)
}
