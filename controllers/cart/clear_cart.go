package cart

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ClearCart godoc
// @Summary Empty the cart
// @Tags cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Router /cart [delete]
func (ctl *Controller) ClearCart(c *gin.Context) {
	ctl.Store.ClearCart()
	ctl.respond(c, http.StatusOK, "Cart cleared")
}
