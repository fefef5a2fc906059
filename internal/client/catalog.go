package client

import (
	"context"
	"net/http"

	"github.com/storefront-next/internal/models"
)

// ListProducts 获取商品列表
func (c *CommerceClient) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if _, err := c.do(ctx, http.MethodGet, "products/", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct 按 slug 获取单个商品，不存在时返回 ErrNotFound
func (c *CommerceClient) GetProduct(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	if _, err := c.do(ctx, http.MethodGet, "products/"+slug+"/", nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}
