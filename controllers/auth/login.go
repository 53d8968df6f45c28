package auth

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hithesh05/chroma-shop-essence/models"
)

// Login godoc
// @Summary Log in with the demo credentials
// @Description Exact match against the two fixed demo credential pairs
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 401 {object} models.ApiResponse
// @Router /auth/login [post]
func (ctl *Controller) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	if !ctl.Store.Login(req.Email, req.Password) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	user := ctl.Store.User()
	token, err := ctl.JWT.Generate(*user)
	if err != nil {
		log.Printf("❌ Failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate token"))
		return
	}
	setAuthCookie(c, token)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged in", models.AuthResponse{
		User:  *user,
		Token: token,
	}))
}
