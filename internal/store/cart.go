package store

import (
	"sync"

	"github.com/storefront-next/internal/models"

	"github.com/shopspring/decimal"
)

// CartStore 购物车状态容器
// 仅驻留内存，进程重启即清空；下单成功后由调用方清空。
// 加购不校验库存余量，限额由远端下单接口裁决。
type CartStore struct {
	mu    sync.Mutex
	lines []models.CartLine
}

// NewCartStore 创建购物车
func NewCartStore() *CartStore {
	return &CartStore{}
}

// AddItem 加入购物车
// 同一商品已存在时累加数量，否则追加新行；quantity 小于 1 时按 1 处理
func (s *CartStore) AddItem(product *models.Product, quantity int) {
	if product == nil {
		return
	}
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].ProductID == product.ID {
			s.lines[i].Quantity += quantity
			return
		}
	}
	s.lines = append(s.lines, models.CartLine{
		ProductID:    product.ID,
		Name:         product.Name,
		UnitPrice:    product.Price,
		Quantity:     quantity,
		CategoryName: product.Category.Name,
		ImageRef:     product.Image,
	})
}

// RemoveItem 移除商品行（不存在时为空操作）
func (s *CartStore) RemoveItem(productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// Clear 清空购物车
func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// Lines 返回当前行项快照
func (s *CartStore) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([]models.CartLine, len(s.lines))
	copy(lines, s.lines)
	return lines
}

// Len 返回行项数量
func (s *CartStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// Total 返回合计金额 = Σ 单价 × 数量
// 每次调用重新计算，不做缓存
func (s *CartStore) Total() models.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, line := range s.lines {
		total = total.Add(line.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return models.NewMoneyFromDecimal(total)
}
