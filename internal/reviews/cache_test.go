package reviews

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/storefront-next/internal/localstore"
	"github.com/storefront-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupReviewCacheTest(t *testing.T, localOverride bool) (*Cache, *localstore.Store) {
	t.Helper()
	dsn := fmt.Sprintf("file:review_cache_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.LocalEntry{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	storage := localstore.New(db)
	return New(storage, localOverride), storage
}

func TestSeedReviewsDeterministic(t *testing.T) {
	seeded := SeedReviews(1)
	if len(seeded) != 2 {
		t.Fatalf("expected 2 seed reviews, got %d", len(seeded))
	}
	if seeded[0].AuthorLabel != "Suresh M." || seeded[1].AuthorLabel != "Deepika P." {
		t.Fatalf("unexpected authors: %q %q", seeded[0].AuthorLabel, seeded[1].AuthorLabel)
	}
	if seeded[0].Text != "Value for money." || seeded[1].Text != "Good product." {
		t.Fatalf("unexpected texts: %q %q", seeded[0].Text, seeded[1].Text)
	}
	if seeded[0].StarRating != 4 || seeded[1].StarRating != 5 {
		t.Fatalf("unexpected ratings: %d %d", seeded[0].StarRating, seeded[1].StarRating)
	}
	if seeded[0].ID != 0 || seeded[1].ID != 1 {
		t.Fatalf("unexpected ids: %d %d", seeded[0].ID, seeded[1].ID)
	}

	// 素材下标回绕：productId 超过池长度时取模
	wrapped := SeedReviews(6)
	if wrapped[0].AuthorLabel != seeded[0].AuthorLabel {
		t.Fatalf("expected pool wrap-around, got %q", wrapped[0].AuthorLabel)
	}
}

func TestEnsureSeededWritesOnce(t *testing.T) {
	cache, storage := setupReviewCacheTest(t, true)

	first, err := cache.EnsureSeeded(1)
	if err != nil {
		t.Fatalf("ensure seeded failed: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("expected 2 seed reviews, got %d", len(first))
	}

	// 再次访问直接加载已有记录，不得重新生成
	review, err := cache.Add(1, "a@b.com", "great", 5)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	again, err := cache.EnsureSeeded(1)
	if err != nil {
		t.Fatalf("ensure seeded failed: %v", err)
	}
	if len(again) != 3 || again[0].ID != review.ID {
		t.Fatalf("seeding must not overwrite existing record: %+v", again)
	}

	if _, ok, _ := storage.Get(StorageKey(1)); !ok {
		t.Fatalf("record not persisted under %s", StorageKey(1))
	}
}

func TestEnsureSeededKeepsEmptyRecord(t *testing.T) {
	cache, storage := setupReviewCacheTest(t, true)

	// 已存在的空列表也算有记录，不再播种
	if err := storage.SetJSON(StorageKey(2), []models.Review{}); err != nil {
		t.Fatalf("prepare record failed: %v", err)
	}
	reviews, err := cache.EnsureSeeded(2)
	if err != nil {
		t.Fatalf("ensure seeded failed: %v", err)
	}
	if len(reviews) != 0 {
		t.Fatalf("expected empty record preserved, got %+v", reviews)
	}
}

func TestAddValidation(t *testing.T) {
	cache, _ := setupReviewCacheTest(t, true)

	if _, err := cache.Add(1, "a@b.com", "   ", 5); !errors.Is(err, ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
	if _, err := cache.Add(1, "a@b.com", "fine", 0); !errors.Is(err, ErrRatingUnset) {
		t.Fatalf("expected ErrRatingUnset, got %v", err)
	}
	if _, err := cache.Add(1, "a@b.com", "fine", 6); !errors.Is(err, ErrRatingInvalid) {
		t.Fatalf("expected ErrRatingInvalid, got %v", err)
	}

	// 校验失败不得产生任何状态变化
	if _, ok, err := cache.List(1); err != nil || ok {
		t.Fatalf("rejected add must not create a record: ok=%v err=%v", ok, err)
	}
}

func TestAddPrependsAndPersists(t *testing.T) {
	cache, _ := setupReviewCacheTest(t, true)

	if _, err := cache.EnsureSeeded(1); err != nil {
		t.Fatalf("ensure seeded failed: %v", err)
	}
	first, err := cache.Add(1, "a@b.com", "first", 5)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	second, err := cache.Add(1, "", "second", 3)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if second.ID <= first.ID {
		t.Fatalf("ids must be strictly increasing: %d then %d", first.ID, second.ID)
	}
	if second.AuthorLabel != "Guest" {
		t.Fatalf("blank author must fall back to Guest, got %q", second.AuthorLabel)
	}

	reviews, ok, err := cache.List(1)
	if err != nil || !ok {
		t.Fatalf("list failed: ok=%v err=%v", ok, err)
	}
	if len(reviews) != 4 {
		t.Fatalf("expected 4 reviews, got %d", len(reviews))
	}
	if reviews[0].Text != "second" || reviews[1].Text != "first" {
		t.Fatalf("new reviews must be prepended: %+v", reviews[:2])
	}
}

func TestAggregate(t *testing.T) {
	cache, _ := setupReviewCacheTest(t, true)

	if _, _, ok, err := cache.Aggregate(1); err != nil || ok {
		t.Fatalf("empty record must report ok=false: ok=%v err=%v", ok, err)
	}

	// 种子评分 4 与 5，均值 4.5
	if _, err := cache.EnsureSeeded(1); err != nil {
		t.Fatalf("ensure seeded failed: %v", err)
	}
	mean, count, ok, err := cache.Aggregate(1)
	if err != nil || !ok {
		t.Fatalf("aggregate failed: ok=%v err=%v", ok, err)
	}
	if count != 2 || mean.String() != "4.5" {
		t.Fatalf("expected mean 4.5 over 2 reviews, got %s over %d", mean, count)
	}

	// 非整除均值保留 1 位小数
	if _, err := cache.Add(1, "a@b.com", "ok", 4); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	mean, count, _, _ = cache.Aggregate(1)
	if count != 3 || mean.String() != "4.3" {
		t.Fatalf("expected mean 4.3 over 3 reviews, got %s over %d", mean, count)
	}
}

func TestDisplayRatingOverride(t *testing.T) {
	cache, _ := setupReviewCacheTest(t, true)
	product := &models.Product{ID: 1, Rating: 3.2, NumReviews: 99}

	// 无本地记录时回退服务端评分
	rating, count := cache.DisplayRating(product)
	if rating != 3.2 || count != 99 {
		t.Fatalf("expected server rating fallback, got %v/%d", rating, count)
	}

	if _, err := cache.EnsureSeeded(1); err != nil {
		t.Fatalf("ensure seeded failed: %v", err)
	}
	rating, count = cache.DisplayRating(product)
	if rating != 4.5 || count != 2 {
		t.Fatalf("expected local aggregate 4.5/2, got %v/%d", rating, count)
	}
}

func TestDisplayRatingOverrideDisabled(t *testing.T) {
	cache, _ := setupReviewCacheTest(t, false)
	product := &models.Product{ID: 1, Rating: 3.2, NumReviews: 99}

	if _, err := cache.EnsureSeeded(1); err != nil {
		t.Fatalf("ensure seeded failed: %v", err)
	}
	rating, count := cache.DisplayRating(product)
	if rating != 3.2 || count != 99 {
		t.Fatalf("override disabled must keep server rating, got %v/%d", rating, count)
	}
}
