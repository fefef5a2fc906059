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

// ProductView 商品展示视图
// 外层评分字段覆盖远端原始值，体现本地评价聚合
type ProductView struct {
	models.Product
	Rating     float64 `json:"rating"`
	NumReviews int     `json:"num_reviews"`
}

func (h *Handler) productView(product *models.Product) ProductView {
	rating, numReviews := h.Reviews.DisplayRating(product)
	return ProductView{
		Product:    *product,
		Rating:     rating,
		NumReviews: numReviews,
	}
}

// GetProducts 获取商品列表
// 列表只做展示覆盖，不触发种子写入
func (h *Handler) GetProducts(c *gin.Context) {
	products, err := h.Commerce.ListProducts(c.Request.Context())
	if err != nil {
		logger.Errorw("products_fetch_failed", "error", err)
		h.Notifications.Push("Failed to load products.", constants.NotifyKindError)
		response.Error(c, response.CodeUpstream, "products fetch failed")
		return
	}

	views := make([]ProductView, 0, len(products))
	for i := range products {
		views = append(views, h.productView(&products[i]))
	}
	response.Success(c, views)
}

// ProductDetailResponse 商品详情响应
type ProductDetailResponse struct {
	Product ProductView     `json:"product"`
	Reviews []models.Review `json:"reviews"`
}

// GetProductBySlug 获取商品详情
// 详情页保证评价记录已初始化（无记录时写入种子评价）
func (h *Handler) GetProductBySlug(c *gin.Context) {
	slug := c.Param("slug")
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

	productReviews, err := h.Reviews.EnsureSeeded(product.ID)
	if err != nil {
		logger.Errorw("reviews_seed_failed", "product_id", product.ID, "error", err)
		productReviews = nil
	}

	response.Success(c, ProductDetailResponse{
		Product: h.productView(product),
		Reviews: productReviews,
	})
}
