package models

// CartLine 购物车行项
// 每个商品至多一行，重复加购只累加数量
type CartLine struct {
	ProductID    uint    `json:"product_id"`
	Name         string  `json:"name"`
	UnitPrice    Money   `json:"price"`
	Quantity     int     `json:"quantity"`
	CategoryName string  `json:"category_name"`
	ImageRef     *string `json:"image,omitempty"`
}

// Subtotal 行小计 = 单价 × 数量
func (l CartLine) Subtotal() Money {
	return NewMoneyFromDecimal(l.UnitPrice.Decimal.Mul(decimalFromInt(l.Quantity)))
}
