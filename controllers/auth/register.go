package auth

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hithesh05/chroma-shop-essence/models"
)

// Register godoc
// @Summary Register a demo account
// @Description Always succeeds; creates a non-admin session user. No
// @Description uniqueness check is performed against existing emails.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Name, email, password"
// @Success 201 {object} models.ApiResponse{data=models.AuthResponse}
// @Router /auth/register [post]
func (ctl *Controller) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	user := ctl.Store.Register(req.Name, req.Email, req.Password)

	token, err := ctl.JWT.Generate(user)
	if err != nil {
		log.Printf("❌ Failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate token"))
		return
	}
	setAuthCookie(c, token)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Registered", models.AuthResponse{
		User:  user,
		Token: token,
	}))
}
