package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hithesh05/chroma-shop-essence/models"
	"github.com/hithesh05/chroma-shop-essence/services"
)

// AuthMiddleware validates the session JWT from cookie or
// Authorization header and stores the claims on the context.
func AuthMiddleware(jwtService *services.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		// Try the cookie first
		cookieToken, err := c.Cookie("auth_token")
		if err == nil && cookieToken != "" {
			token = cookieToken
		} else {
			// Fall back to the Authorization header
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authorization header required"))
				c.Abort()
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid authorization header format"))
				c.Abort()
				return
			}
			token = parts[1]
		}

		claims, err := jwtService.Validate(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid or expired token"))
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Set("userName", claims.Name)
		c.Set("isAdmin", claims.IsAdmin)

		c.Next()
	}
}

// AdminOnly rejects requests whose session is not an admin. Must run
// after AuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("isAdmin") {
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Admin access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}
