package wishlist

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hithesh05/chroma-shop-essence/models"
)

// ToggleWishlist godoc
// @Summary Toggle wishlist membership
// @Description Adds the product if absent, removes it if present
// @Tags wishlist
// @Accept json
// @Produce json
// @Param request body models.ToggleWishlistRequest true "Product to toggle"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /wishlist/toggle [post]
func (ctl *Controller) ToggleWishlist(c *gin.Context) {
	var req models.ToggleWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	product, ok := ctl.Store.ProductByID(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	ctl.Store.ToggleWishlist(product)

	data := gin.H{
		"wishlist":    ctl.Store.Wishlist(),
		"in_wishlist": ctl.Store.InWishlist(req.ProductID),
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist updated", data))
}
