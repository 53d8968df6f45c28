package storefront

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hithesh05/chroma-shop-essence/models"
)

// GetProductByID godoc
// @Summary Get a single product
// @Tags store
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/products/{id} [get]
func (ctl *Controller) GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	product, ok := ctl.Store.ProductByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product retrieved", product))
}
