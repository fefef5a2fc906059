package storefront

import (
	"github.com/storefront-next/internal/client"
	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/http/response"
	"github.com/storefront-next/internal/logger"

	"github.com/gin-gonic/gin"
)

// CheckoutRequest 结算请求（收货信息）
type CheckoutRequest struct {
	Address    string `json:"address" binding:"required"`
	City       string `json:"city" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
}

// Checkout 从当前购物车下单
// 成功后清空购物车并推送成功通知；失败时购物车保持不变
func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	lines := h.Cart.Lines()
	if len(lines) == 0 {
		response.BadRequest(c, "cart is empty")
		return
	}

	fullName := constants.DefaultAuthorLabel
	if snapshot := h.Session.Snapshot(); snapshot.User != nil && snapshot.User.Email != "" {
		fullName = snapshot.User.Email
	}

	err := h.Commerce.CreateOrder(c.Request.Context(), client.CreateOrderInput{
		FullName:   fullName,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
		TotalPrice: h.Cart.Total(),
		Lines:      lines,
	})
	if err != nil {
		logger.Errorw("order_create_failed", "error", err)
		h.Notifications.Push("Failed to place order. Please try again.", constants.NotifyKindError)
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: client.ErrUnauthorized, code: response.CodeUnauthorized, msg: "authentication required"},
		}, response.CodeUpstream, "order create failed")
		return
	}

	h.Cart.Clear()
	h.Notifications.Push("Order Placed Successfully! 🎉", constants.NotifyKindSuccess)
	response.Success(c, h.cartResponse())
}
