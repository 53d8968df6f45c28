// Package ui exposes the two panel visibility flags. They are session
// UI state, never persisted; both reset to closed on restart.
package ui

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

func (ctl *Controller) state() models.UIStateResponse {
	return models.UIStateResponse{
		IsCartOpen: ctl.Store.IsCartOpen(),
		IsMenuOpen: ctl.Store.IsMenuOpen(),
	}
}

// GetState godoc
// @Summary Get panel visibility flags
// @Tags ui
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.UIStateResponse}
// @Router /ui [get]
func (ctl *Controller) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "UI state retrieved", ctl.state()))
}

// ToggleCart godoc
// @Summary Toggle the cart panel
// @Description Opening the cart closes the menu
// @Tags ui
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.UIStateResponse}
// @Router /ui/cart/toggle [post]
func (ctl *Controller) ToggleCart(c *gin.Context) {
	ctl.Store.ToggleCart()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart panel toggled", ctl.state()))
}

// ToggleMenu godoc
// @Summary Toggle the menu
// @Description Opening the menu closes the cart panel
// @Tags ui
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.UIStateResponse}
// @Router /ui/menu/toggle [post]
func (ctl *Controller) ToggleMenu(c *gin.Context) {
	ctl.Store.ToggleMenu()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Menu toggled", ctl.state()))
}
