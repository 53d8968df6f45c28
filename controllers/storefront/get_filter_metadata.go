package storefront

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hithesh05/chroma-shop-essence/cache"
	"github.com/hithesh05/chroma-shop-essence/models"
)

// GetFilterMetadata godoc
// @Summary Get filter metadata
// @Description Categories and price bounds for the storefront filter sidebar
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/products/filters [get]
func (ctl *Controller) GetFilterMetadata(c *gin.Context) {
	if meta, ok := ctl.Cache.Get(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata retrieved", meta))
		return
	}

	minPrice, maxPrice := ctl.Store.PriceBounds()
	meta := cache.Metadata{
		Categories: ctl.Store.Categories(),
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
	}
	ctl.Cache.Set(meta)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata retrieved", meta))
}
