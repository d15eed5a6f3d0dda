package repository

// ProductListFilter narrows catalog queries.
type ProductListFilter struct {
	Page       int
	PageSize   int
	Kind       string // sofa / bed / empty or "all" for everything
	PriceMin   *int64
	PriceMax   *int64
	Search     string
	Sort       string
	OnlyActive bool
	WithSizes  bool
}

// FavoriteListFilter narrows favorites queries.
type FavoriteListFilter struct {
	SessionID string
	Sort      string
}
