package store

import (
	"sync"
	"time"

	"github.com/storefront-next/internal/models"
)

// DefaultNotifyTTL 通知默认存活时长
const DefaultNotifyTTL = 3000 * time.Millisecond

// NotificationQueue 通知队列
// 按插入顺序排列；每条通知自创建起 TTL 后自行过期。
// 过期定时器始终只有一个，指向队首，队列变化时取消并重建，
// 保证被手动移除的通知不会被重复移除。
type NotificationQueue struct {
	mu     sync.Mutex
	items  []models.Notification
	ttl    time.Duration
	timer  *time.Timer
	lastID int64
	closed bool
	now    func() time.Time
}

// NewNotificationQueue 创建通知队列
// ttl 不为正时使用默认 3 秒
func NewNotificationQueue(ttl time.Duration) *NotificationQueue {
	if ttl <= 0 {
		ttl = DefaultNotifyTTL
	}
	return &NotificationQueue{
		ttl: ttl,
		now: time.Now,
	}
}

// Push 追加一条通知到队尾，返回其 ID
func (q *NotificationQueue) Push(message, kind string) int64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return 0
	}
	now := q.now()
	id := now.UnixMilli()
	// 同毫秒内多次推送时强制递增
	if id <= q.lastID {
		id = q.lastID + 1
	}
	q.lastID = id

	q.items = append(q.items, models.Notification{
		ID:        id,
		Message:   message,
		Kind:      kind,
		CreatedAt: now,
	})
	q.reschedule()
	return id
}

// Dismiss 移除指定通知（不存在时为空操作）
func (q *NotificationQueue) Dismiss(id int64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	for i := range q.items {
		if q.items[i].ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			break
		}
	}
	q.reschedule()
}

// List 按插入顺序返回当前通知快照
func (q *NotificationQueue) List() []models.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	items := make([]models.Notification, len(q.items))
	copy(items, q.items)
	return items
}

// Close 释放队列，保证定时器被取消
func (q *NotificationQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.items = nil
	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}
}

// reschedule 针对当前队首重建过期定时器，调用方必须持有锁
func (q *NotificationQueue) reschedule() {
	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}
	if q.closed || len(q.items) == 0 {
		return
	}
	head := q.items[0]
	delay := head.CreatedAt.Add(q.ttl).Sub(q.now())
	if delay < 0 {
		delay = 0
	}
	headID := head.ID
	q.timer = time.AfterFunc(delay, func() {
		q.expire(headID)
	})
}

// expire 过期回调：仅当队首仍是调度时的那条通知时移除
func (q *NotificationQueue) expire(id int64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	if len(q.items) > 0 && q.items[0].ID == id {
		q.items = q.items[1:]
	}
	q.reschedule()
}
