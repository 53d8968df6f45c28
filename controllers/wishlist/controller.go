package wishlist

import (
	"github.com/hithesh05/chroma-shop-essence/store"
)

type Controller struct {
	Store *store.Store
}

func NewController(st *store.Store) *Controller {
	return &Controller{Store: st}
}
