package storefront

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hithesh05/chroma-shop-essence/models"
	"github.com/hithesh05/chroma-shop-essence/store"
)

// GetProducts godoc
// @Summary List storefront products
// @Description Paginated product list with optional filtering and sorting
// @Tags store
// @Produce json
// @Param category query string false "Category tag"
// @Param inStock query bool false "Only in-stock products"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param sort query string false "Sort order" Enums(featured, price-low, price-high, rating) default(featured)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} models.ApiResponse
// @Router /store/products [get]
func (ctl *Controller) GetProducts(c *gin.Context) {
	filter := store.Filter{
		Category:    c.Query("category"),
		InStockOnly: c.Query("inStock") == "true",
		Sort:        c.DefaultQuery("sort", store.SortFeatured),
	}
	if v, err := strconv.ParseFloat(c.Query("minPrice"), 64); err == nil {
		filter.MinPrice = v
	}
	if v, err := strconv.ParseFloat(c.Query("maxPrice"), 64); err == nil {
		filter.MaxPrice = v
	}

	products := ctl.Store.FilterProducts(filter)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	total := len(products)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products retrieved", products[start:end], meta))
}
