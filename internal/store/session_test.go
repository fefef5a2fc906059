package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/localstore"
	"github.com/storefront-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupSessionStoreTest(t *testing.T) *localstore.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:session_store_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.LocalEntry{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return localstore.New(db)
}

func TestSessionStoreDefaultState(t *testing.T) {
	storage := setupSessionStoreTest(t)
	session := NewSessionStore(storage)

	if session.IsAuthenticated() {
		t.Fatalf("fresh session must not be authenticated")
	}
	if session.AccessToken() != "" {
		t.Fatalf("fresh session must have no token")
	}
	if got := session.AuthorLabel(); got != constants.DefaultAuthorLabel {
		t.Fatalf("expected %q, got %q", constants.DefaultAuthorLabel, got)
	}
}

func TestSessionStoreLoginPersistsTokens(t *testing.T) {
	storage := setupSessionStoreTest(t)
	session := NewSessionStore(storage)

	session.LoginSuccess(&models.UserInfo{Email: "a@b.com"}, "access-1", "refresh-1")

	if !session.IsAuthenticated() {
		t.Fatalf("expected authenticated after login")
	}
	if got := session.AuthorLabel(); got != "a@b.com" {
		t.Fatalf("unexpected author label: %q", got)
	}

	access, ok, err := storage.Get(constants.StorageKeyAccessToken)
	if err != nil || !ok || access != "access-1" {
		t.Fatalf("access token not persisted: ok=%v err=%v value=%q", ok, err, access)
	}
	refresh, ok, err := storage.Get(constants.StorageKeyRefreshToken)
	if err != nil || !ok || refresh != "refresh-1" {
		t.Fatalf("refresh token not persisted: ok=%v err=%v value=%q", ok, err, refresh)
	}
}

func TestSessionStoreRehydrate(t *testing.T) {
	storage := setupSessionStoreTest(t)
	first := NewSessionStore(storage)
	first.LoginSuccess(&models.UserInfo{Email: "a@b.com"}, "access-1", "refresh-1")

	// 模拟进程重启：仅令牌从本地存储恢复，身份信息滞后为空
	second := NewSessionStore(storage)
	if !second.IsAuthenticated() {
		t.Fatalf("expected rehydrated session to be authenticated")
	}
	snap := second.Snapshot()
	if snap.User != nil {
		t.Fatalf("rehydrated session must not recover user info, got %+v", snap.User)
	}
	if snap.AccessToken != "access-1" || snap.RefreshToken != "refresh-1" {
		t.Fatalf("unexpected tokens: %+v", snap)
	}
	if got := second.AuthorLabel(); got != constants.DefaultAuthorLabel {
		t.Fatalf("expected %q before profile fetch, got %q", constants.DefaultAuthorLabel, got)
	}
}

func TestSessionStoreLogoutRemovesTokens(t *testing.T) {
	storage := setupSessionStoreTest(t)
	session := NewSessionStore(storage)
	session.LoginSuccess(&models.UserInfo{Email: "a@b.com"}, "access-1", "refresh-1")

	session.Logout()

	if session.IsAuthenticated() {
		t.Fatalf("expected unauthenticated after logout")
	}
	if _, ok, _ := storage.Get(constants.StorageKeyAccessToken); ok {
		t.Fatalf("access token must be removed")
	}
	if _, ok, _ := storage.Get(constants.StorageKeyRefreshToken); ok {
		t.Fatalf("refresh token must be removed")
	}

	// 重启后不得再恢复认证态
	if next := NewSessionStore(storage); next.IsAuthenticated() {
		t.Fatalf("logout must survive restart")
	}
}

func TestSessionStoreSnapshotCopiesUser(t *testing.T) {
	storage := setupSessionStoreTest(t)
	session := NewSessionStore(storage)
	session.LoginSuccess(&models.UserInfo{ID: 7, Email: "a@b.com", Name: "A"}, "access-1", "refresh-1")

	snap := session.Snapshot()
	snap.User.Email = "mutated@b.com"
	if got := session.AuthorLabel(); got != "a@b.com" {
		t.Fatalf("snapshot must not alias internal state, got %q", got)
	}
}
