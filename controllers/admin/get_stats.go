// Package admin serves the read-only dashboard numbers. The catalog
// itself is immutable at runtime, so everything here derives from the
// seed.
package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hithesh05/chroma-shop-essence/models"
	"github.com/hithesh05/chroma-shop-essence/store"
)

type Controller struct {
	Store *store.Store
}

func NewController(st *store.Store) *Controller {
	return &Controller{Store: st}
}

// GetStats godoc
// @Summary Get catalog stats
// @Description Aggregate catalog numbers for the admin dashboard
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CatalogStatsResponse}
// @Failure 403 {object} models.ApiResponse
// @Router /admin/stats [get]
func (ctl *Controller) GetStats(c *gin.Context) {
	products := ctl.Store.Products()

	stats := models.CatalogStatsResponse{
		TotalProducts: len(products),
	}

	type bucket struct {
		count    int
		inStock  int
		priceSum float64
	}
	byCategory := make(map[string]*bucket)
	var order []string

	var priceSum, ratingSum float64
	for _, p := range products {
		priceSum += p.Price
		ratingSum += p.Rating
		if p.InStock {
			stats.InStockProducts++
		}
		if p.Featured {
			stats.FeaturedProducts++
		}

		b, ok := byCategory[p.Category]
		if !ok {
			b = &bucket{}
			byCategory[p.Category] = b
			order = append(order, p.Category)
		}
		b.count++
		b.priceSum += p.Price
		if p.InStock {
			b.inStock++
		}
	}

	if len(products) > 0 {
		stats.AveragePrice = priceSum / float64(len(products))
		stats.AverageRating = ratingSum / float64(len(products))
	}

	for _, name := range order {
		b := byCategory[name]
		stats.Categories = append(stats.Categories, models.CategoryStat{
			Name:         name,
			Products:     b.count,
			InStock:      b.inStock,
			AveragePrice: b.priceSum / float64(b.count),
		})
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Catalog stats retrieved", stats))
}
