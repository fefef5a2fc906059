package models

// LocalEntry 本地持久化键值对
// 对应浏览器 localStorage 的一条记录，值为字符串（结构化值 JSON 编码）
type LocalEntry struct {
	Key   string `gorm:"primarykey" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}

// TableName 指定表名
func (LocalEntry) TableName() string {
	return "local_entries"
}
