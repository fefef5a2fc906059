package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/storefront-next/internal/models"
)

// CreateOrderInput 下单输入
type CreateOrderInput struct {
	FullName   string
	Address    string
	City       string
	PostalCode string
	TotalPrice models.Money
	Lines      []models.CartLine
}

// orderLinePayload 下单行项的线上格式
// 远端按 id 字段回查商品并以库内价格入账
type orderLinePayload struct {
	ID       uint         `json:"id"`
	Name     string       `json:"name"`
	Price    models.Money `json:"price"`
	Quantity int          `json:"quantity"`
}

type createOrderPayload struct {
	FullName   string             `json:"full_name"`
	Address    string             `json:"address"`
	City       string             `json:"city"`
	PostalCode string             `json:"postal_code"`
	TotalPrice models.Money       `json:"total_price"`
	Items      []orderLinePayload `json:"items"`
}

// CreateOrder 创建订单
func (c *CommerceClient) CreateOrder(ctx context.Context, input CreateOrderInput) error {
	items := make([]orderLinePayload, 0, len(input.Lines))
	for _, line := range input.Lines {
		items = append(items, orderLinePayload{
			ID:       line.ProductID,
			Name:     line.Name,
			Price:    line.UnitPrice,
			Quantity: line.Quantity,
		})
	}
	payload := createOrderPayload{
		FullName:   input.FullName,
		Address:    input.Address,
		City:       input.City,
		PostalCode: input.PostalCode,
		TotalPrice: input.TotalPrice,
		Items:      items,
	}
	_, err := c.do(ctx, http.MethodPost, "orders/create/", payload, nil)
	return err
}

// MyOrders 获取当前用户订单列表（按创建时间倒序，由远端排序）
func (c *CommerceClient) MyOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if _, err := c.do(ctx, http.MethodGet, "orders/my-orders/", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// PayOrder 将订单标记为已支付
func (c *CommerceClient) PayOrder(ctx context.Context, orderID uint) error {
	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("orders/%d/pay/", orderID), nil, nil)
	return err
}
