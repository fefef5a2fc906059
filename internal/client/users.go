package client

import (
	"context"
	"errors"
	"net/http"
)

// TokenPair 登录成功返回的令牌对
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login 以邮箱密码换取令牌对，凭据无效时返回 ErrUnauthorized
func (c *CommerceClient) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	var pair TokenPair
	if _, err := c.do(ctx, http.MethodPost, "token/", credentialsPayload{Email: email, Password: password}, &pair); err != nil {
		return nil, err
	}
	if pair.Access == "" {
		return nil, errors.New("commerce api token response missing access token")
	}
	return &pair, nil
}

// Register 注册新账号，邮箱被占用时返回 ErrEmailTaken
func (c *CommerceClient) Register(ctx context.Context, email, password string) error {
	status, err := c.do(ctx, http.MethodPost, "users/register/", credentialsPayload{Email: email, Password: password}, nil)
	if err != nil {
		if status == http.StatusBadRequest || status == http.StatusConflict {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

type changePasswordPayload struct {
	Password string `json:"password"`
}

// ChangePassword 修改当前用户密码
func (c *CommerceClient) ChangePassword(ctx context.Context, password string) error {
	_, err := c.do(ctx, http.MethodPut, "users/password/", changePasswordPayload{Password: password}, nil)
	return err
}
