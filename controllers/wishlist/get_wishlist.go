package wishlist

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hithesh05/chroma-shop-essence/models"
)

// GetWishlist godoc
// @Summary Get the wishlist
// @Tags wishlist
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /wishlist [get]
func (ctl *Controller) GetWishlist(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist retrieved", ctl.Store.Wishlist()))
}
