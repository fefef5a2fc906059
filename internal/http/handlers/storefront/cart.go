package storefront

import (
	"errors"
	"strconv"

	"github.com/storefront-next/internal/client"
	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/http/response"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/models"

	"github.com/gin-gonic/gin"
)

// CartResponse 购物车响应
type CartResponse struct {
	Items []models.CartLine `json:"items"`
	Total models.Money      `json:"total"`
}

func (h *Handler) cartResponse() CartResponse {
	lines := h.Cart.Lines()
	if lines == nil {
		lines = []models.CartLine{}
	}
	return CartResponse{
		Items: lines,
		Total: h.Cart.Total(),
	}
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	response.Success(c, h.cartResponse())
}

// AddCartItemRequest 加购请求
type AddCartItemRequest struct {
	Slug     string `json:"slug" binding:"required"`
	Quantity int    `json:"quantity"`
}

// AddCartItem 加入购物车
// 商品数据以远端为准；重复加购同一商品只累加数量
func (h *Handler) AddCartItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	product, err := h.Commerce.GetProduct(c.Request.Context(), req.Slug)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			response.NotFound(c, "Product not found")
			return
		}
		logger.Errorw("product_fetch_failed", "slug", req.Slug, "error", err)
		h.Notifications.Push("Failed to load product.", constants.NotifyKindError)
		response.Error(c, response.CodeUpstream, "product fetch failed")
		return
	}

	h.Cart.AddItem(product, req.Quantity)
	h.Notifications.Push("Added to Cart! 🛒", constants.NotifyKindSuccess)
	response.Success(c, h.cartResponse())
}

// DeleteCartItem 移除购物车商品（幂等）
func (h *Handler) DeleteCartItem(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}
	h.Cart.RemoveItem(uint(productID))
	response.Success(c, h.cartResponse())
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	h.Cart.Clear()
	response.Success(c, h.cartResponse())
}
