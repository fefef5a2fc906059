package storefront

import (
	"errors"

	"github.com/storefront-next/internal/client"
	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/http/response"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/models"

	"github.com/gin-gonic/gin"
)

// CredentialsRequest 登录/注册请求
type CredentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 登录并建立会话
// 成功后令牌写入本地存储，进程重启后会话可重水合
func (h *Handler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	pair, err := h.Commerce.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			h.Notifications.Push("Login failed. Please check your credentials.", constants.NotifyKindError)
			response.Unauthorized(c, "invalid credentials")
			return
		}
		logger.Errorw("login_failed", "error", err)
		h.Notifications.Push("Login failed. Please try again.", constants.NotifyKindError)
		response.Error(c, response.CodeUpstream, "login failed")
		return
	}

	h.Session.LoginSuccess(&models.UserInfo{Email: req.Email}, pair.Access, pair.Refresh)
	response.Success(c, h.Session.Snapshot())
}

// Register 注册新账号
func (h *Handler) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.Commerce.Register(c.Request.Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, client.ErrEmailTaken) {
			h.Notifications.Push("Signup failed. Email may be taken.", constants.NotifyKindError)
			response.BadRequest(c, "email may be taken")
			return
		}
		logger.Errorw("register_failed", "error", err)
		h.Notifications.Push("Signup failed. Please try again.", constants.NotifyKindError)
		response.Error(c, response.CodeUpstream, "register failed")
		return
	}

	h.Notifications.Push("Account created! Please login.", constants.NotifyKindSuccess)
	response.Success(c, nil)
}

// Logout 退出登录并清除持久化令牌
func (h *Handler) Logout(c *gin.Context) {
	h.Session.Logout()
	response.Success(c, h.Session.Snapshot())
}

// GetSession 获取会话状态
// 重水合后的会话可能 is_authenticated 为 true 而 user 为 null
func (h *Handler) GetSession(c *gin.Context) {
	response.Success(c, h.Session.Snapshot())
}
