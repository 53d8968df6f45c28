package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hithesh05/chroma-shop-essence/models"
)

// GetMe godoc
// @Summary Get the current session user
// @Description Returns the store's session user; 401 when the token
// @Description outlives the session (e.g. after a logout elsewhere)
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /auth/me [get]
func (ctl *Controller) GetMe(c *gin.Context) {
	user := ctl.Store.User()
	if user == nil || !ctl.Store.IsLoggedIn() {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not logged in"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Authenticated", user))
}
