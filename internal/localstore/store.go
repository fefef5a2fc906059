package localstore

import (
	"encoding/json"
	"errors"

	"github.com/storefront-next/internal/models"

	"gorm.io/gorm"
)

// Store 本地持久化键值存储
// 模拟浏览器按源隔离的 localStorage：值为字符串，写入方唯一，
// 读-改-写不加跨进程锁（单浏览上下文假设）
type Store struct {
	db *gorm.DB
}

// New 创建本地存储
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Get 读取键值，不存在时 ok 为 false
func (s *Store) Get(key string) (string, bool, error) {
	var entry models.LocalEntry
	if err := s.db.Where("key = ?", key).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return entry.Value, true, nil
}

// Set 写入键值（存在则覆盖）
func (s *Store) Set(key, value string) error {
	var entry models.LocalEntry
	err := s.db.Where("key = ?", key).First(&entry).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		entry = models.LocalEntry{Key: key, Value: value}
		return s.db.Create(&entry).Error
	}
	entry.Value = value
	return s.db.Save(&entry).Error
}

// Delete 删除键（不存在时为空操作）
func (s *Store) Delete(key string) error {
	return s.db.Where("key = ?", key).Delete(&models.LocalEntry{}).Error
}

// GetJSON 读取并解析 JSON 编码的值
func (s *Store) GetJSON(key string, dest interface{}) (bool, error) {
	value, ok, err := s.Get(key)
	if err != nil || !ok {
		return ok, err
	}
	if err := json.Unmarshal([]byte(value), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON 以 JSON 编码写入值
func (s *Store) SetJSON(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Set(key, string(data))
}
