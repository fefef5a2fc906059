package storefront

import (
	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/http/response"
	"github.com/storefront-next/internal/logger"

	"github.com/gin-gonic/gin"
)

// AddressResponse 默认收货地址响应
type AddressResponse struct {
	Address string `json:"address"`
}

// GetAddress 读取默认收货地址
func (h *Handler) GetAddress(c *gin.Context) {
	address, _, err := h.Storage.Get(constants.StorageKeyDefaultAddress)
	if err != nil {
		logger.Errorw("address_load_failed", "error", err)
		response.Error(c, response.CodeInternal, "address load failed")
		return
	}
	response.Success(c, AddressResponse{Address: address})
}

// PutAddressRequest 保存默认收货地址请求
type PutAddressRequest struct {
	Address string `json:"address"`
}

// PutAddress 保存默认收货地址到本地存储
func (h *Handler) PutAddress(c *gin.Context) {
	var req PutAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.Storage.Set(constants.StorageKeyDefaultAddress, req.Address); err != nil {
		logger.Errorw("address_save_failed", "error", err)
		response.Error(c, response.CodeInternal, "address save failed")
		return
	}
	h.Notifications.Push("Default address saved!", constants.NotifyKindSuccess)
	response.Success(c, AddressResponse{Address: req.Address})
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

// ChangePassword 修改当前用户密码
func (h *Handler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.Commerce.ChangePassword(c.Request.Context(), req.Password); err != nil {
		logger.Errorw("password_update_failed", "error", err)
		h.Notifications.Push("Failed to update password.", constants.NotifyKindError)
		response.Error(c, response.CodeUpstream, "password update failed")
		return
	}

	h.Notifications.Push("Password updated successfully!", constants.NotifyKindSuccess)
	response.Success(c, nil)
}
