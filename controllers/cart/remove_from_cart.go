package cart

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hithesh05/chroma-shop-essence/models"
)

// RemoveFromCart godoc
// @Summary Remove a product from the cart
// @Description No-op when the product is not in the cart
// @Tags cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Router /cart/{id} [delete]
func (ctl *Controller) RemoveFromCart(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctl.Store.RemoveFromCart(id)
	ctl.respond(c, http.StatusOK, "Removed from cart")
}
