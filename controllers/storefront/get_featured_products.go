package storefront

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hithesh05/chroma-shop-essence/models"
)

// GetFeaturedProducts godoc
// @Summary List featured products
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/products/featured [get]
func (ctl *Controller) GetFeaturedProducts(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Featured products retrieved", ctl.Store.FeaturedProducts()))
}
