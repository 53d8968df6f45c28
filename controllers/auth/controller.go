package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/hithesh05/chroma-shop-essence/services"
	"github.com/hithesh05/chroma-shop-essence/store"
)

const cookieMaxAge = 7 * 24 * 3600 // matches token expiry

// Controller handles the mock authentication flow. The store holds
// the session itself; the JWT only lets the browser prove which
// session it belongs to across requests.
type Controller struct {
	Store *store.Store
	JWT   *services.JWTService
}

func NewController(st *store.Store, jwt *services.JWTService) *Controller {
	return &Controller{Store: st, JWT: jwt}
}

func setAuthCookie(c *gin.Context, token string) {
	c.SetCookie("auth_token", token, cookieMaxAge, "/", "", false, true)
}

func clearAuthCookie(c *gin.Context) {
	c.SetCookie("auth_token", "", -1, "/", "", false, true)
}
