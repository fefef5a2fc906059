package models

// UserInfo 已登录用户身份（远端数据，字段尽量宽松）
type UserInfo struct {
	ID    uint   `json:"id,omitempty"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// SessionSnapshot 会话状态快照（只读视图）
// 启动重水合后 User 可能为 nil 而 IsAuthenticated 为 true，调用方必须容忍
type SessionSnapshot struct {
	User            *UserInfo `json:"user"`
	AccessToken     string    `json:"-"`
	RefreshToken    string    `json:"-"`
	IsAuthenticated bool      `json:"is_authenticated"`
}
