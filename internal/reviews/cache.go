package reviews

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/localstore"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyText     = errors.New("review text is empty")
	ErrRatingUnset   = errors.New("review rating is unset")
	ErrRatingInvalid = errors.New("review rating out of range")
)

// Cache 商品评价缓存
// 每个商品在本地存储中占一条 reviews_{productId} 记录（JSON 数组，最新在前）。
// 无记录的商品首次访问时写入确定性种子评价，同一存储生命周期内只写一次。
// 跨进程并发写同一商品键不受保护（单浏览上下文假设）；进程内由互斥锁串行化。
type Cache struct {
	mu            sync.Mutex
	storage       *localstore.Store
	localOverride bool
	lastID        int64
	now           func() time.Time
}

// New 创建评价缓存
// localOverride 为 true 时，本地聚合评分覆盖服务端评分展示
func New(storage *localstore.Store, localOverride bool) *Cache {
	return &Cache{
		storage:       storage,
		localOverride: localOverride,
		now:           time.Now,
	}
}

// StorageKey 商品评价的本地存储键
func StorageKey(productID uint) string {
	return fmt.Sprintf("%s%d", constants.StorageKeyReviewsPrefix, productID)
}

// EnsureSeeded 确保商品存在持久化评价记录
// 无记录时生成恰好 2 条种子评价并写入；已有记录（即使为空列表）时直接加载返回
func (c *Cache) EnsureSeeded(productID uint) ([]models.Review, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	existing, ok, err := c.load(productID)
	if err != nil {
		return nil, err
	}
	if ok {
		return existing, nil
	}

	seeded := SeedReviews(productID)
	if err := c.storage.SetJSON(StorageKey(productID), seeded); err != nil {
		return nil, err
	}
	logger.Debugw("reviews_seeded", "product_id", productID, "count", len(seeded))
	return seeded, nil
}

// List 加载商品评价（不触发种子写入）
// ok 表示持久化记录是否存在
func (c *Cache) List(productID uint) ([]models.Review, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(productID)
}

// Add 发表新评价并前插到记录头部
// 文本为空白或评分未选择时拒绝，不产生任何状态变化
func (c *Cache) Add(productID uint, authorLabel, text string, starRating int) (*models.Review, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	if starRating == 0 {
		return nil, ErrRatingUnset
	}
	if starRating < constants.StarRatingMin || starRating > constants.StarRatingMax {
		return nil, ErrRatingInvalid
	}
	if strings.TrimSpace(authorLabel) == "" {
		authorLabel = constants.DefaultAuthorLabel
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	existing, _, err := c.load(productID)
	if err != nil {
		return nil, err
	}

	review := models.Review{
		ID:          c.nextID(),
		AuthorLabel: authorLabel,
		Text:        text,
		StarRating:  starRating,
	}
	updated := append([]models.Review{review}, existing...)
	if err := c.storage.SetJSON(StorageKey(productID), updated); err != nil {
		return nil, err
	}
	return &review, nil
}

// Aggregate 返回商品评价的平均星级（保留 1 位小数）与评价数
// ok 为 false 表示评价集为空，调用方必须回退到外部默认评分
func (c *Cache) Aggregate(productID uint) (rating decimal.Decimal, count int, ok bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	existing, _, err := c.load(productID)
	if err != nil {
		return decimal.Zero, 0, false, err
	}
	return aggregate(existing)
}

// DisplayRating 计算商品的展示评分与评价数
// 本地记录存在且非空、且允许覆盖时使用本地聚合，否则回退服务端值
func (c *Cache) DisplayRating(product *models.Product) (float64, int) {
	if product == nil {
		return 0, 0
	}
	if !c.localOverride {
		return product.Rating, product.NumReviews
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	existing, ok, err := c.load(product.ID)
	if err != nil {
		logger.Warnw("reviews_load_failed", "product_id", product.ID, "error", err)
		return product.Rating, product.NumReviews
	}
	if !ok {
		return product.Rating, product.NumReviews
	}
	mean, count, nonEmpty, _ := aggregate(existing)
	if !nonEmpty {
		return product.Rating, product.NumReviews
	}
	rating, _ := mean.Float64()
	return rating, count
}

// load 读取持久化记录，调用方必须持有锁
func (c *Cache) load(productID uint) ([]models.Review, bool, error) {
	var existing []models.Review
	ok, err := c.storage.GetJSON(StorageKey(productID), &existing)
	if err != nil || !ok {
		return nil, ok, err
	}
	return existing, true, nil
}

// nextID 生成毫秒时间戳 ID，同毫秒内强制递增
func (c *Cache) nextID() int64 {
	id := c.now().UnixMilli()
	if id <= c.lastID {
		id = c.lastID + 1
	}
	c.lastID = id
	return id
}

func aggregate(reviews []models.Review) (decimal.Decimal, int, bool, error) {
	if len(reviews) == 0 {
		return decimal.Zero, 0, false, nil
	}
	sum := int64(0)
	for _, review := range reviews {
		sum += int64(review.StarRating)
	}
	mean := decimal.NewFromInt(sum).
		Div(decimal.NewFromInt(int64(len(reviews)))).
		Round(1)
	return mean, len(reviews), true, nil
}
