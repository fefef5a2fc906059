package models

// Category 商品分类（远端数据，只读）
type Category struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Slug  string  `json:"slug"`
	Image *string `json:"image"`
}

// Product 商品（远端数据，只读）
// 评分与评价数可能被本地评价聚合覆盖展示，但原始字段不被修改
type Product struct {
	ID               uint     `json:"id"`
	Name             string   `json:"name"`
	Slug             string   `json:"slug"`
	Description      string   `json:"description"`
	Price            Money    `json:"price"`
	Image            *string  `json:"image"`
	Stock            int      `json:"stock"`
	Category         Category `json:"category"`
	Rating           float64  `json:"rating"`
	NumReviews       int      `json:"num_reviews"`
	IsQualityChecked bool     `json:"is_quality_checked"`
}
