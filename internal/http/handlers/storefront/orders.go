package storefront

import (
	"strconv"

	"github.com/storefront-next/internal/client"
	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/http/response"
	"github.com/storefront-next/internal/logger"

	"github.com/gin-gonic/gin"
)

// ListOrders 获取当前用户订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.Commerce.MyOrders(c.Request.Context())
	if err != nil {
		logger.Errorw("orders_fetch_failed", "error", err)
		h.Notifications.Push("Failed to load orders.", constants.NotifyKindError)
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: client.ErrUnauthorized, code: response.CodeUnauthorized, msg: "authentication required"},
		}, response.CodeUpstream, "orders fetch failed")
		return
	}
	response.Success(c, orders)
}

// PayOrder 支付订单
func (h *Handler) PayOrder(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid order id")
		return
	}

	if err := h.Commerce.PayOrder(c.Request.Context(), uint(orderID)); err != nil {
		logger.Errorw("order_pay_failed", "order_id", orderID, "error", err)
		h.Notifications.Push("Payment Failed", constants.NotifyKindError)
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: client.ErrUnauthorized, code: response.CodeUnauthorized, msg: "authentication required"},
			{target: client.ErrNotFound, code: response.CodeNotFound, msg: "order not found"},
		}, response.CodeUpstream, "order pay failed")
		return
	}

	h.Notifications.Push("Payment Successful! 💳", constants.NotifyKindSuccess)
	response.Success(c, nil)
}
