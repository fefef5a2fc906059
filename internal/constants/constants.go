package constants

// 通知类型常量
const (
	NotifyKindSuccess = "success"
	NotifyKindError   = "error"
	NotifyKindInfo    = "info"
)

// 本地持久化存储键
const (
	StorageKeyAccessToken    = "access_token"
	StorageKeyRefreshToken   = "refresh_token"
	StorageKeyDefaultAddress = "default_address"

	// StorageKeyReviewsPrefix 评价记录键前缀，完整键为 reviews_{productId}
	StorageKeyReviewsPrefix = "reviews_"
)

// 评分取值范围
const (
	StarRatingMin = 1
	StarRatingMax = 5
)

// DefaultAuthorLabel 未登录用户发表评价时的署名
const DefaultAuthorLabel = "Guest"
