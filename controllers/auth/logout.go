package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hithesh05/chroma-shop-essence/models"
)

// Logout godoc
// @Summary Log out
// @Description Clears the session user and the auth cookie together
// @Tags auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /auth/logout [post]
func (ctl *Controller) Logout(c *gin.Context) {
	ctl.Store.Logout()
	clearAuthCookie(c)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", nil))
}
