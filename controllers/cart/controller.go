package cart

import (
	"github.com/gin-gonic/gin"

	"github.com/hithesh05/chroma-shop-essence/models"
	"github.com/hithesh05/chroma-shop-essence/store"
)

// Controller exposes the cart mutations over HTTP. Every response
// carries the full cart plus its derived total and count so clients
// never compute money themselves.
type Controller struct {
	Store *store.Store
}

func NewController(st *store.Store) *Controller {
	return &Controller{Store: st}
}

func (ctl *Controller) cartResponse() models.CartResponse {
	return models.CartResponse{
		Items: ctl.Store.Cart(),
		Total: ctl.Store.CartTotal(),
		Count: ctl.Store.CartCount(),
	}
}

func (ctl *Controller) respond(c *gin.Context, status int, message string) {
	c.JSON(status, models.SuccessResponse(c, message, ctl.cartResponse()))
}
