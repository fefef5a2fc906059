package reviews

import "github.com/storefront-next/internal/models"

// 种子评价素材池，与商品分类无关
var (
	seedAuthorPool = []string{"Ankit R.", "Suresh M.", "Deepika P.", "Vikram T.", "Sneha J."}
	seedTextPool   = []string{"Excellent quality!", "Value for money.", "Good product.", "Highly recommend.", "Perfect fit."}
)

// seedReviewCount 每个商品的种子评价条数
const seedReviewCount = 2

// SeedReviews 由商品标识确定性生成种子评价
// 素材下标 = (productId + i) mod 池长度，星级按下标在 4/5 间交替
func SeedReviews(productID uint) []models.Review {
	seeded := make([]models.Review, 0, seedReviewCount)
	for i := 0; i < seedReviewCount; i++ {
		index := (int(productID) + i) % len(seedAuthorPool)
		seeded = append(seeded, models.Review{
			ID:          int64(i),
			AuthorLabel: seedAuthorPool[index],
			Text:        seedTextPool[(int(productID)+i)%len(seedTextPool)],
			StarRating:  4 + (i % 2),
		})
	}
	return seeded
}
