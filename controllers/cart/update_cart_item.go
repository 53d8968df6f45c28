package cart

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hithesh05/chroma-shop-essence/models"
)

// UpdateCartItem godoc
// @Summary Set a cart item's quantity
// @Description Absolute set, not an increment; zero or less removes the item
// @Tags cart
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Router /cart/{id} [patch]
func (ctl *Controller) UpdateCartItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctl.Store.UpdateCartItemQuantity(id, req.Quantity)
	ctl.respond(c, http.StatusOK, "Cart updated")
}
