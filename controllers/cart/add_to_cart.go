package cart

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hithesh05/chroma-shop-essence/models"
)

// AddToCart godoc
// @Summary Add a product to the cart
// @Description Merges into an existing line for the same product; quantity defaults to 1
// @Tags cart
// @Accept json
// @Produce json
// @Param request body models.AddToCartRequest true "Product and quantity"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 404 {object} models.ApiResponse
// @Router /cart [post]
func (ctl *Controller) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	product, ok := ctl.Store.ProductByID(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	ctl.Store.AddToCart(product, req.Quantity)
	ctl.respond(c, http.StatusOK, "Added to cart")
}
