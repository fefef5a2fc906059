package models

// Review 单条商品评价
// JSON 字段与本地存储中的历史记录格式保持一致
type Review struct {
	ID          int64  `json:"id"`
	AuthorLabel string `json:"user"`
	Text        string `json:"text"`
	StarRating  int    `json:"rating"`
}
