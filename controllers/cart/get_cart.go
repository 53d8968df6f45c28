package cart

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetCart godoc
// @Summary Get the cart
// @Description Cart items with derived total and count
// @Tags cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Router /cart [get]
func (ctl *Controller) GetCart(c *gin.Context) {
	ctl.respond(c, http.StatusOK, "Cart retrieved")
}
