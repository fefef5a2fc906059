package storefront

import (
	"errors"

	"github.com/storefront-next/internal/client"
	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/http/response"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/reviews"

	"github.com/gin-gonic/gin"
)

// PostReviewRequest 发表评价请求
type PostReviewRequest struct {
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

// PostReview 发表商品评价
// 文本为空或未选星级时拒绝并提示，不产生任何状态变化
func (h *Handler) PostReview(c *gin.Context) {
	slug := c.Param("slug")
	var req PostReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	product, err := h.Commerce.GetProduct(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			response.NotFound(c, "Product not found")
			return
		}
		logger.Errorw("product_fetch_failed", "slug", slug, "error", err)
		h.Notifications.Push("Failed to load product.", constants.NotifyKindError)
		response.Error(c, response.CodeUpstream, "product fetch failed")
		return
	}

	review, err := h.Reviews.Add(product.ID, h.Session.AuthorLabel(), req.Text, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrEmptyText), errors.Is(err, reviews.ErrRatingUnset):
			h.Notifications.Push("Please select stars and write a comment.", constants.NotifyKindInfo)
			response.BadRequest(c, "text and rating are required")
		case errors.Is(err, reviews.ErrRatingInvalid):
			response.BadRequest(c, "rating must be between 1 and 5")
		default:
			logger.Errorw("review_save_failed", "product_id", product.ID, "error", err)
			response.Error(c, response.CodeInternal, "review save failed")
		}
		return
	}

	h.Notifications.Push("Review saved permanently! 💾", constants.NotifyKindSuccess)
	response.Success(c, review)
}
