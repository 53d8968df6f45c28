package storefront

import (
	"github.com/hithesh05/chroma-shop-essence/cache"
	"github.com/hithesh05/chroma-shop-essence/store"
)

// Controller serves the public catalog endpoints. It reads from the
// store and never mutates it.
type Controller struct {
	Store *store.Store
	Cache *cache.CatalogCache
}

func NewController(st *store.Store, c *cache.CatalogCache) *Controller {
	return &Controller{Store: st, Cache: c}
}
