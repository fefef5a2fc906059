package store

import (
	"strings"
	"sync"
	"time"

	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/localstore"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// SessionStore 会话状态容器
// 令牌持久化到本地存储，进程启动时重水合；
// isAuthenticated 以 access token 是否存在为准，身份信息可能滞后为空
type SessionStore struct {
	mu           sync.Mutex
	user         *models.UserInfo
	accessToken  string
	refreshToken string

	storage *localstore.Store
}

// NewSessionStore 创建会话容器并从本地存储重水合
func NewSessionStore(storage *localstore.Store) *SessionStore {
	s := &SessionStore{storage: storage}
	s.rehydrate()
	return s
}

// LoginSuccess 登录成功：写入身份与令牌并持久化
func (s *SessionStore) LoginSuccess(user *models.UserInfo, accessToken, refreshToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.accessToken = accessToken
	s.refreshToken = refreshToken

	if s.storage == nil {
		return
	}
	if err := s.storage.Set(constants.StorageKeyAccessToken, accessToken); err != nil {
		logger.Errorw("session_persist_failed", "key", constants.StorageKeyAccessToken, "error", err)
	}
	if err := s.storage.Set(constants.StorageKeyRefreshToken, refreshToken); err != nil {
		logger.Errorw("session_persist_failed", "key", constants.StorageKeyRefreshToken, "error", err)
	}
}

// Logout 退出登录：清空状态并移除持久化令牌
// 两个令牌键都会尝试删除，即使其中之一已不存在
func (s *SessionStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.accessToken = ""
	s.refreshToken = ""

	if s.storage == nil {
		return
	}
	if err := s.storage.Delete(constants.StorageKeyAccessToken); err != nil {
		logger.Errorw("session_token_remove_failed", "key", constants.StorageKeyAccessToken, "error", err)
	}
	if err := s.storage.Delete(constants.StorageKeyRefreshToken); err != nil {
		logger.Errorw("session_token_remove_failed", "key", constants.StorageKeyRefreshToken, "error", err)
	}
}

// SetUser 补充身份信息（例如登录后另行拉取的资料）
func (s *SessionStore) SetUser(user *models.UserInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

// IsAuthenticated 是否已认证（access token 存在即为真）
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken != ""
}

// AccessToken 返回当前 access token（未登录时为空串）
func (s *SessionStore) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken
}

// Snapshot 返回会话状态快照
func (s *SessionStore) Snapshot() models.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	var user *models.UserInfo
	if s.user != nil {
		copied := *s.user
		user = &copied
	}
	return models.SessionSnapshot{
		User:            user,
		AccessToken:     s.accessToken,
		RefreshToken:    s.refreshToken,
		IsAuthenticated: s.accessToken != "",
	}
}

// AuthorLabel 当前用户的评价署名（未知身份时为 Guest）
func (s *SessionStore) AuthorLabel() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user != nil && strings.TrimSpace(s.user.Email) != "" {
		return s.user.Email
	}
	return constants.DefaultAuthorLabel
}

// rehydrate 启动时读取持久化令牌
// 仅按令牌是否存在恢复认证态；JWT 声明只做诊断解析，不用于判定
func (s *SessionStore) rehydrate() {
	if s.storage == nil {
		return
	}
	access, ok, err := s.storage.Get(constants.StorageKeyAccessToken)
	if err != nil {
		logger.Errorw("session_rehydrate_failed", "error", err)
		return
	}
	if !ok || access == "" {
		return
	}
	s.accessToken = access
	if refresh, ok, err := s.storage.Get(constants.StorageKeyRefreshToken); err == nil && ok {
		s.refreshToken = refresh
	}

	inspectPersistedToken(access)
	logger.Infow("session_rehydrated", "authenticated", true)
}

// inspectPersistedToken 解析持久化令牌的声明用于日志诊断
// 不校验签名：密钥属于远端，客户端只把令牌当作不透明凭据
func inspectPersistedToken(token string) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		logger.Warnw("session_token_unparsable", "error", err)
		return
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return
	}
	if exp.Before(time.Now()) {
		logger.Warnw("session_token_expired", "expired_at", exp.Time)
	}
}
