package models

import "time"

// Notification 瞬态用户通知
// ID 基于创建时刻并保证严格递增
type Notification struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Kind      string    `json:"type"`
	CreatedAt time.Time `json:"-"`
}
