package constants

// Product kinds
const (
	ProductKindSofa = "sofa"
	ProductKindBed  = "bed"
)

// Catalog category filters
const (
	CatalogCategoryAll = "all"
)

// Catalog sort modes
const (
	CatalogSortPopularity = "popularity"
	CatalogSortPriceAsc   = "price-asc"
	CatalogSortPriceDesc  = "price-desc"
	CatalogSortNameAsc    = "name-asc"
	CatalogSortNameDesc   = "name-desc"
)

// Favorites sort modes
const (
	FavoritesSortDateNewest = "date-newest"
	FavoritesSortDateOldest = "date-oldest"
	FavoritesSortPriceLow   = "price-low"
	FavoritesSortPriceHigh  = "price-high"
	FavoritesSortNameAsc    = "name-asc"
	FavoritesSortNameDesc   = "name-desc"
)

// Delivery method identifiers
const (
	DeliveryMethodCourier = "courier"
	DeliveryMethodPickup  = "pickup"
	DeliveryMethodExpress = "express"
)

// Payment method identifiers
const (
	PaymentMethodCash        = "cash"
	PaymentMethodCard        = "card"
	PaymentMethodOnline      = "online"
	PaymentMethodInstallment = "installment"
	PaymentMethodCredit      = "credit"
)

// Social channel identifiers
const (
	SocialChannelTelegram = "telegram"
	SocialChannelViber    = "viber"
	SocialChannelWhatsapp = "whatsapp"
	SocialChannelVK       = "vk"
)

// Queue names
const (
	QueueDefault = "default"
)

// Queue task types
const (
	TaskOrderConfirm = "order:confirm"
)

// Session token header exchanged with the storefront
const (
	SessionTokenHeader = "X-Session-Token"
)
