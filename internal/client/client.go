package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var (
	ErrConfigInvalid   = errors.New("commerce api config invalid")
	ErrRequestFailed   = errors.New("commerce api request failed")
	ErrResponseInvalid = errors.New("commerce api response invalid")
	ErrNotFound        = errors.New("commerce api resource not found")
	ErrUnauthorized    = errors.New("commerce api authentication required")
	ErrEmailTaken      = errors.New("commerce api email already registered")
)

const defaultTimeout = 15 * time.Second

// TokenSource 提供当前 access token，未登录时返回空串
type TokenSource func() string

// Config 远端商城 API 配置
type Config struct {
	BaseURL   string `json:"base_url"`
	TimeoutMS int    `json:"timeout_ms"`
}

// CommerceClient 远端商城 API 客户端
// 无状态请求包装：不重试、不取消在途请求，超时即失败由调用方转为通知
type CommerceClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// New 创建 API 客户端
func New(cfg Config, tokens TokenSource) (*CommerceClient, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		return nil, fmt.Errorf("%w: base_url is required", ErrConfigInvalid)
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	timeout := defaultTimeout
	if cfg.TimeoutMS > 0 {
		timeout = time.Duration(cfg.TimeoutMS) * time.Millisecond
	}
	if tokens == nil {
		tokens = func() string { return "" }
	}
	return &CommerceClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
	}, nil
}

// do 发送请求并解析 JSON 响应，返回 HTTP 状态码
// 2xx 之外的状态码统一映射为哨兵错误，具体操作可按状态码再细化
func (c *CommerceClient) do(ctx context.Context, method, path string, payload, dest interface{}) (int, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, fmt.Errorf("%w: marshal payload failed: %v", ErrRequestFailed, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("%w: %v", ErrResponseInvalid, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return resp.StatusCode, fmt.Errorf("%w: %s", ErrNotFound, path)
		case http.StatusUnauthorized, http.StatusForbidden:
			return resp.StatusCode, fmt.Errorf("%w: %s", ErrUnauthorized, path)
		default:
			return resp.StatusCode, fmt.Errorf("%w: http status %d", ErrRequestFailed, resp.StatusCode)
		}
	}

	if dest == nil || len(respBytes) == 0 {
		return resp.StatusCode, nil
	}
	if err := json.Unmarshal(respBytes, dest); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: %v", ErrResponseInvalid, err)
	}
	return resp.StatusCode, nil
}
