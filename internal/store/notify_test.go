package store

import (
	"testing"
	"time"

	"github.com/storefront-next/internal/constants"
)

func waitForCount(t *testing.T, q *NotificationQueue, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(q.List()) == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timeout waiting for %d notifications, have %d", want, len(q.List()))
}

func TestNotificationQueuePushOrder(t *testing.T) {
	q := NewNotificationQueue(time.Minute)
	defer q.Close()

	idA := q.Push("A", constants.NotifyKindSuccess)
	idB := q.Push("B", constants.NotifyKindError)
	idC := q.Push("C", constants.NotifyKindInfo)

	if !(idA < idB && idB < idC) {
		t.Fatalf("ids must be strictly increasing: %d %d %d", idA, idB, idC)
	}

	items := q.List()
	if len(items) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(items))
	}
	if items[0].Message != "A" || items[1].Message != "B" || items[2].Message != "C" {
		t.Fatalf("unexpected order: %+v", items)
	}
	if items[1].Kind != constants.NotifyKindError {
		t.Fatalf("unexpected kind: %s", items[1].Kind)
	}
}

func TestNotificationQueueExpiry(t *testing.T) {
	q := NewNotificationQueue(80 * time.Millisecond)
	defer q.Close()

	q.Push("first", constants.NotifyKindInfo)
	time.Sleep(40 * time.Millisecond)
	q.Push("second", constants.NotifyKindInfo)

	// 先过期的是先创建的一条，后一条按自身创建时间继续存活
	waitForCount(t, q, 1)
	if items := q.List(); items[0].Message != "second" {
		t.Fatalf("expected second to survive, got %+v", items)
	}
	waitForCount(t, q, 0)
}

func TestNotificationQueueDismiss(t *testing.T) {
	q := NewNotificationQueue(time.Minute)
	defer q.Close()

	idA := q.Push("A", constants.NotifyKindInfo)
	idB := q.Push("B", constants.NotifyKindInfo)

	q.Dismiss(idA)
	items := q.List()
	if len(items) != 1 || items[0].ID != idB {
		t.Fatalf("expected only B left, got %+v", items)
	}

	// 重复移除与移除未知 ID 均为空操作
	q.Dismiss(idA)
	q.Dismiss(999999)
	if len(q.List()) != 1 {
		t.Fatalf("dismiss must be idempotent")
	}
}

func TestNotificationQueueDismissHeadReschedules(t *testing.T) {
	q := NewNotificationQueue(100 * time.Millisecond)
	defer q.Close()

	idA := q.Push("A", constants.NotifyKindInfo)
	time.Sleep(30 * time.Millisecond)
	q.Push("B", constants.NotifyKindInfo)

	// 手动移除队首后，原定时器不得再误删新的队首
	q.Dismiss(idA)
	if items := q.List(); len(items) != 1 || items[0].Message != "B" {
		t.Fatalf("expected B at head, got %+v", items)
	}
	time.Sleep(40 * time.Millisecond)
	if items := q.List(); len(items) != 1 {
		t.Fatalf("B expired too early: %+v", items)
	}
	waitForCount(t, q, 0)
}

func TestNotificationQueueClose(t *testing.T) {
	q := NewNotificationQueue(time.Minute)
	q.Push("A", constants.NotifyKindInfo)
	q.Close()

	if id := q.Push("B", constants.NotifyKindInfo); id != 0 {
		t.Fatalf("push after close must be rejected, got id %d", id)
	}
	if len(q.List()) != 0 {
		t.Fatalf("closed queue must be empty")
	}
}
