package models

import "time"

// OrderItem 订单行项（远端数据，只读）
type OrderItem struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Price       Money  `json:"price"`
}

// Order 订单（远端数据，只读）
type Order struct {
	ID         uint        `json:"id"`
	TotalPrice Money       `json:"total_price"`
	IsPaid     bool        `json:"is_paid"`
	CreatedAt  time.Time   `json:"created_at"`
	Items      []OrderItem `json:"items"`
}
